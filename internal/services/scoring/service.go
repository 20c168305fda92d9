package scoring

import (
	"fmt"

	"github.com/mcoot/uniquepick/internal/model"
)

// Registry is the view of the player registry the round engine needs
type Registry interface {
	Players() []model.Player
	ApplyDelta(name string, delta int) error
}

// Service scores rounds by pick uniqueness and computes game results
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ValidatePicks checks that picks holds exactly one pick per player and that
// every pick lies in [1, N] where N is the number of players
func (s *Service) ValidatePicks(players []model.Player, picks model.PickSet) error {
	registered := make(map[string]bool, len(players))
	for _, p := range players {
		registered[p.Name] = true
		if _, ok := picks[p.Name]; !ok {
			return fmt.Errorf("%w: missing pick for %q", model.ErrIncompletePickSet, p.Name)
		}
	}

	// Sorted so the reported name is deterministic
	for _, name := range picks.Names() {
		if !registered[name] {
			return fmt.Errorf("%w: unregistered player %q", model.ErrIncompletePickSet, name)
		}
	}

	maxPick := len(players)
	for _, p := range players {
		if value := picks[p.Name]; value < model.MinPick || value > maxPick {
			return fmt.Errorf("%w: %q picked %d, must be between %d and %d",
				model.ErrPickOutOfRange, p.Name, value, model.MinPick, maxPick)
		}
	}

	return nil
}

// ComputeDeltas returns each player's score change for a validated pick set.
// A value is unique when exactly one pick in the whole set has it; unique
// picks score +value and every holder of a shared value scores -value.
func (s *Service) ComputeDeltas(picks model.PickSet) model.Deltas {
	counts := make(map[int]int, len(picks))
	for _, value := range picks {
		counts[value]++
	}

	deltas := make(model.Deltas, len(picks))
	for name, value := range picks {
		if counts[value] == 1 {
			deltas[name] = value
		} else {
			deltas[name] = -value
		}
	}
	return deltas
}

// ScoreRound validates picks, applies the resulting deltas to the registry and
// returns them. Nothing is applied if validation fails.
func (s *Service) ScoreRound(registry Registry, picks model.PickSet) (model.Deltas, error) {
	players := registry.Players()
	if err := s.ValidatePicks(players, picks); err != nil {
		return nil, err
	}

	deltas := s.ComputeDeltas(picks)
	for _, p := range players {
		if err := registry.ApplyDelta(p.Name, deltas[p.Name]); err != nil {
			return nil, err
		}
	}

	return deltas, nil
}

// ComputeResult snapshots the current scores and the players sharing the top score
func (s *Service) ComputeResult(registry Registry) model.GameResult {
	standings := model.Standings(registry.Players())

	topScore, _ := maxScore(standings)
	return model.GameResult{
		FinalScores: standings,
		MaxScore:    topScore,
		Winners:     s.DetermineWinners(standings),
	}
}

// DetermineWinners returns the names of everyone on the top score, in the
// order given. More than one name means a tie.
func (s *Service) DetermineWinners(standings []model.Standing) []string {
	topScore, ok := maxScore(standings)
	if !ok {
		return nil
	}

	var winners []string
	for _, st := range standings {
		if st.Score == topScore {
			winners = append(winners, st.Name)
		}
	}
	return winners
}

// maxScore returns the highest score in standings, or false if there are none
func maxScore(standings []model.Standing) (int, bool) {
	if len(standings) == 0 {
		return 0, false
	}
	top := standings[0].Score
	for _, st := range standings[1:] {
		top = max(top, st.Score)
	}
	return top, true
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidatePicks(players []model.Player, picks model.PickSet) error
	ComputeDeltas(picks model.PickSet) model.Deltas
	ScoreRound(registry Registry, picks model.PickSet) (model.Deltas, error)
	ComputeResult(registry Registry) model.GameResult
	DetermineWinners(standings []model.Standing) []string
}

var _ ServiceInterface = (*Service)(nil)
