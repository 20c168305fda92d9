package registry

import (
	"fmt"

	"github.com/mcoot/uniquepick/internal/model"
)

// Registry owns the ordered set of players in a game and their scores
type Registry struct {
	players []*model.Player
	index   map[string]model.Seat
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		index: make(map[string]model.Seat),
	}
}

// Register adds a human player with a score of 0
func (r *Registry) Register(name string) (model.Player, error) {
	return r.add(&model.Player{Name: name})
}

// RegisterBot adds a computer player that picks using the given strategy
func (r *Registry) RegisterBot(name, strategy string) (model.Player, error) {
	return r.add(&model.Player{Name: name, IsBot: true, BotStrategy: strategy})
}

func (r *Registry) add(player *model.Player) (model.Player, error) {
	if _, ok := r.index[player.Name]; ok {
		return model.Player{}, fmt.Errorf("%w: %q", model.ErrDuplicateName, player.Name)
	}

	player.Seat = model.Seat(len(r.players))
	r.players = append(r.players, player)
	r.index[player.Name] = player.Seat
	return *player, nil
}

// Players returns a copy of all players in registration order
func (r *Registry) Players() []model.Player {
	result := make([]model.Player, len(r.players))
	for i, p := range r.players {
		result[i] = *p
	}
	return result
}

// Len returns the number of registered players
func (r *Registry) Len() int {
	return len(r.players)
}

// Lookup returns a copy of the named player
func (r *Registry) Lookup(name string) (model.Player, error) {
	seat, ok := r.index[name]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %q", model.ErrUnknownPlayer, name)
	}
	return *r.players[seat], nil
}

// ApplyDelta adds delta (which may be negative) to the named player's score
func (r *Registry) ApplyDelta(name string, delta int) error {
	seat, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownPlayer, name)
	}
	r.players[seat].Score += delta
	return nil
}
