package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/uniquepick/internal/dependencies/clock"
	"github.com/mcoot/uniquepick/internal/dependencies/random"
	"github.com/mcoot/uniquepick/internal/model"
	"github.com/mcoot/uniquepick/internal/services/bot"
	"github.com/mcoot/uniquepick/internal/services/game"
	"github.com/mcoot/uniquepick/internal/services/scoring"
)

const (
	// GameIDLength is the length of generated game IDs
	GameIDLength = 8
	// GameIDAlphabet is the characters used in game IDs (avoid confusing chars)
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	ScoringService *scoring.Service
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		ScoringService: scoring.New(),
		BotService:     bot.NewService(bot.DefaultStrategies(rnd), logger),
	}
}

// NewGame creates a fresh game in setup with a generated ID. Each game owns
// its own player registry.
func (a *App) NewGame() *game.Game {
	id := model.GameID(a.Random.String(GameIDLength, GameIDAlphabet))
	return game.New(id, a.ScoringService, a.Clock, a.Logger)
}
