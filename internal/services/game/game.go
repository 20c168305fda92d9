package game

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/mcoot/uniquepick/internal/dependencies/clock"
	"github.com/mcoot/uniquepick/internal/model"
	"github.com/mcoot/uniquepick/internal/services/registry"
	"github.com/mcoot/uniquepick/internal/services/scoring"
)

// Game is a single play-through. It owns the player registry and drives the
// state machine Setup -> (RoundInProgress -> RoundScored)* -> Finished.
type Game struct {
	id             model.GameID
	state          model.GameState
	registry       *registry.Registry
	scoringService *scoring.Service
	clock          clock.Clock
	logger         *slog.Logger

	totalRounds int
	round       int // 1-indexed number of the current or last scored round

	// Secret picks collected so far for the current round
	pending model.PickSet
	history []model.RoundRecord
}

// New creates a game in the setup state
func New(id model.GameID, scoringService *scoring.Service, clock clock.Clock, logger *slog.Logger) *Game {
	g := &Game{
		id:             id,
		state:          model.GameStateSetup,
		registry:       registry.New(),
		scoringService: scoringService,
		clock:          clock,
		logger:         logger.With(slog.String("game_id", string(id))),
		pending:        make(model.PickSet),
	}

	g.logger.Debug("game created")
	return g
}

// ID returns the game's identifier
func (g *Game) ID() model.GameID {
	return g.id
}

// State returns the current phase of the game
func (g *Game) State() model.GameState {
	return g.state
}

// Round returns the number of the round in progress, or of the last scored round
func (g *Game) Round() int {
	return g.round
}

// TotalRounds returns the number of rounds the game was started with
func (g *Game) TotalRounds() int {
	return g.totalRounds
}

// MaxPick returns the highest number a player may pick (the player count)
func (g *Game) MaxPick() int {
	return g.registry.Len()
}

// RecommendedRounds returns the suggested round count for the registered players
func (g *Game) RecommendedRounds() int {
	return model.RecommendedRounds(g.registry.Len())
}

// Register adds a human player. Only allowed during setup.
func (g *Game) Register(name string) (model.Player, error) {
	if g.state != model.GameStateSetup {
		return model.Player{}, model.ErrGameInProgress
	}
	return g.registry.Register(name)
}

// AddBot adds a computer player using the named strategy. Only allowed during setup.
func (g *Game) AddBot(name, strategy string) (model.Player, error) {
	if g.state != model.GameStateSetup {
		return model.Player{}, model.ErrGameInProgress
	}
	if !slices.Contains(model.ValidBotStrategies(), strategy) {
		return model.Player{}, fmt.Errorf("%w: %s", model.ErrUnknownBotStrategy, strategy)
	}
	return g.registry.RegisterBot(name, strategy)
}

// Players returns all players with their current scores, in registration order
func (g *Game) Players() []model.Player {
	return g.registry.Players()
}

// Start ends setup and opens round 1
func (g *Game) Start(rounds int) error {
	if g.state != model.GameStateSetup {
		return model.ErrGameInProgress
	}
	if rounds < 1 {
		return fmt.Errorf("%w: got %d", model.ErrInvalidRoundCount, rounds)
	}
	if g.registry.Len() < model.MinPlayers {
		return fmt.Errorf("%w: need at least %d, have %d",
			model.ErrInsufficientPlayers, model.MinPlayers, g.registry.Len())
	}

	g.totalRounds = rounds
	g.round = 1
	g.state = model.GameStateRoundInProgress

	g.logger.Info("game started",
		slog.Int("player_count", g.registry.Len()),
		slog.Int("rounds", rounds),
	)
	return nil
}

// SubmitPick records one player's secret pick for the current round. When the
// last outstanding pick arrives the round is scored and its record returned;
// otherwise the record is nil.
func (g *Game) SubmitPick(name string, value int) (*model.RoundRecord, error) {
	if err := g.openRound(); err != nil {
		return nil, err
	}

	if _, err := g.registry.Lookup(name); err != nil {
		return nil, err
	}
	if _, ok := g.pending[name]; ok {
		return nil, fmt.Errorf("%w: %q", model.ErrAlreadyPicked, name)
	}
	if value < model.MinPick || value > g.MaxPick() {
		return nil, fmt.Errorf("%w: %q picked %d, must be between %d and %d",
			model.ErrPickOutOfRange, name, value, model.MinPick, g.MaxPick())
	}

	g.pending[name] = value
	g.logger.Debug("pick received",
		slog.String("player", name),
		slog.Int("round", g.round),
		slog.Int("awaiting", len(g.Awaiting())),
	)

	if len(g.pending) < g.registry.Len() {
		return nil, nil
	}
	return g.score(g.pending)
}

// PlayRound scores a complete pick set for the current round in one call
func (g *Game) PlayRound(picks model.PickSet) (*model.RoundRecord, error) {
	if err := g.openRound(); err != nil {
		return nil, err
	}
	if len(g.pending) > 0 {
		return nil, fmt.Errorf("%w: round %d already has individual picks",
			model.ErrAlreadyPicked, g.round)
	}
	return g.score(maps.Clone(picks))
}

// Awaiting returns the names of players who have not yet picked this round,
// in registration order. It is empty outside a round in progress.
func (g *Game) Awaiting() []string {
	if g.state != model.GameStateRoundInProgress {
		return nil
	}

	var names []string
	for _, p := range g.registry.Players() {
		if _, ok := g.pending[p.Name]; !ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// History returns the records of all scored rounds, oldest first
func (g *Game) History() []model.RoundRecord {
	return slices.Clone(g.history)
}

// Result returns the current scoreboard and leaders. It can be called at any
// time; once the game is finished it is the final result.
func (g *Game) Result() model.GameResult {
	return g.scoringService.ComputeResult(g.registry)
}

// openRound makes sure a round is accepting picks, moving on from a scored round
func (g *Game) openRound() error {
	switch g.state {
	case model.GameStateSetup:
		return model.ErrGameNotStarted
	case model.GameStateFinished:
		return model.ErrGameComplete
	case model.GameStateRoundScored:
		g.round++
		g.state = model.GameStateRoundInProgress
		g.pending = make(model.PickSet)
	}
	return nil
}

// score runs the round engine over a full pick set and advances the state machine
func (g *Game) score(picks model.PickSet) (*model.RoundRecord, error) {
	deltas, err := g.scoringService.ScoreRound(g.registry, picks)
	if err != nil {
		return nil, err
	}

	record := model.RoundRecord{
		Number:    g.round,
		Picks:     picks,
		Deltas:    deltas,
		Standings: model.Standings(g.registry.Players()),
		ScoredAt:  g.clock.Now(),
	}
	g.history = append(g.history, record)
	g.pending = make(model.PickSet)

	g.logger.Info("round scored",
		slog.Int("round", g.round),
		slog.Int("total_rounds", g.totalRounds),
	)

	if g.round >= g.totalRounds {
		g.state = model.GameStateFinished
		result := g.Result()
		g.logger.Info("game finished",
			slog.Int("max_score", result.MaxScore),
			slog.Any("winners", result.Winners),
		)
	} else {
		g.state = model.GameStateRoundScored
	}

	return &record, nil
}
