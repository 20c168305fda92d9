package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/uniquepick/internal/dependencies/random"
	"github.com/mcoot/uniquepick/internal/model"
	"github.com/mcoot/uniquepick/internal/services/game"
)

// Service submits picks on behalf of bot players
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyRandom:     NewRandomStrategy(rnd),
		model.BotStrategyContrarian: NewContrarianStrategy(rnd),
	}
}

// SubmitBotPicks submits a pick for every bot that still owes one this round.
// If that completes the round, the scored record is returned.
func (s *Service) SubmitBotPicks(g *game.Game) (*model.RoundRecord, error) {
	view := RoundView{
		PlayerCount: g.MaxPick(),
		Round:       g.Round(),
		History:     g.History(),
	}

	var owing map[string]bool
	switch g.State() {
	case model.GameStateRoundInProgress:
		owing = make(map[string]bool)
		for _, name := range g.Awaiting() {
			owing[name] = true
		}
	case model.GameStateRoundScored:
		// Next round has not opened yet, so every bot owes a pick
		view.Round++
	case model.GameStateFinished:
		return nil, model.ErrGameComplete
	default:
		return nil, model.ErrGameNotStarted
	}

	var record *model.RoundRecord
	for _, p := range g.Players() {
		if !p.IsBot || (owing != nil && !owing[p.Name]) {
			continue
		}

		strategy, ok := s.strategies[p.BotStrategy]
		if !ok {
			return nil, fmt.Errorf("%w: %s", model.ErrUnknownBotStrategy, p.BotStrategy)
		}

		rec, err := g.SubmitPick(p.Name, strategy.ChoosePick(view))
		if err != nil {
			s.logger.Error("bot pick rejected",
				slog.String("player", p.Name),
				slog.String("strategy", p.BotStrategy),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		if rec != nil {
			record = rec
		}

		s.logger.Debug("bot picked",
			slog.String("player", p.Name),
			slog.String("strategy", p.BotStrategy),
			slog.Int("round", view.Round),
		)
	}

	return record, nil
}
