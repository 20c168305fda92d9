package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/uniquepick/internal/factory"
	"github.com/mcoot/uniquepick/internal/model"
	"github.com/mcoot/uniquepick/internal/services/game"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game at this terminal",
		Long: `Play a game of uniquepick with everyone sharing this terminal.

Anything not given as a flag is asked for interactively. Bots count towards
the number of players and pick automatically.`,
		Example: `  uniquepick play
  uniquepick play --players 3 --name alice --name bob --bot robo:contrarian --rounds 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)
			app := factory.New(factory.Config{Logger: logger})
			return runPlay(cmd.Context(), cfg, app, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntVarP(&cfg.Players, "players", "p", cfg.Players, "Total number of players including bots (0 to ask)")
	cmd.Flags().StringArrayVarP(&cfg.Names, "name", "n", cfg.Names, "Name of a human player (repeatable)")
	cmd.Flags().StringArrayVar(&cfg.Bots, "bot", cfg.Bots, "Add a bot as name[:strategy] (repeatable; strategies: "+strings.Join(model.ValidBotStrategies(), ", ")+")")
	cmd.Flags().IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "Number of rounds (0 to ask)")
	cmd.Flags().BoolVar(&cfg.Reveal, "reveal", cfg.Reveal, "Show picks as they are typed")

	return cmd
}

// runPlay sets up and plays one game, reading answers from in. Results go to
// out; prompts and logs go to errOut.
func runPlay(ctx context.Context, cfg *Config, app *factory.App, in io.Reader, out, errOut io.Writer) error {
	output := NewOutput(cfg.Output, out, errOut)
	prompter := NewPrompter(in, errOut, cfg.Reveal)
	g := app.NewGame()

	prompter.Say("WELCOME to uniquepick, enjoy!")

	if err := setupPlayers(ctx, cfg, g, prompter); err != nil {
		return err
	}

	rounds := cfg.Rounds
	if rounds == 0 {
		var err error
		if rounds, err = prompter.Rounds(ctx, g.RecommendedRounds()); err != nil {
			return err
		}
	}
	if err := g.Start(rounds); err != nil {
		return err
	}

	for g.State() != model.GameStateFinished {
		record, err := playRound(ctx, app, g, prompter, output)
		if err != nil {
			return err
		}
		output.Print(*record)
	}

	output.Print(g.Result())
	app.Logger.Debug("play finished", slog.String("game_id", string(g.ID())))
	return nil
}

// setupPlayers registers humans first, then bots, asking for whatever the
// flags leave out
func setupPlayers(ctx context.Context, cfg *Config, g *game.Game, prompter *Prompter) error {
	bots, err := parseBots(cfg.Bots)
	if err != nil {
		return err
	}

	botNames := make(map[string]bool, len(bots))
	for _, b := range bots {
		if botNames[b.name] || slices.Contains(cfg.Names, b.name) {
			return fmt.Errorf("--bot %q: %w", b.name, model.ErrDuplicateName)
		}
		botNames[b.name] = true
	}

	least := max(model.MinPlayers, len(cfg.Names)+len(bots))
	total := cfg.Players
	if total == 0 {
		if total, err = prompter.PlayerCount(ctx, least); err != nil {
			return err
		}
	} else if total < least {
		return fmt.Errorf("%w: --players %d is fewer than the %d needed",
			model.ErrInsufficientPlayers, total, least)
	}

	for _, name := range cfg.Names {
		if err := ValidateName(name); err != nil {
			return fmt.Errorf("--name %q: %w", name, err)
		}
		if _, err := g.Register(name); err != nil {
			return err
		}
	}

	humans := total - len(bots)
	for seat := len(cfg.Names) + 1; seat <= humans; seat++ {
		_, err := prompter.PlayerName(ctx, seat, func(name string) error {
			if botNames[name] {
				return fmt.Errorf("%w: %q is taken by a bot", model.ErrDuplicateName, name)
			}
			_, err := g.Register(name)
			return err
		})
		if err != nil {
			return err
		}
	}

	for _, b := range bots {
		if _, err := g.AddBot(b.name, b.strategy); err != nil {
			return err
		}
		prompter.Say("%s joins as a %s bot", b.name, model.BotStrategyDisplayName(b.strategy))
	}
	return nil
}

// playRound lets the bots pick, then asks each human who still owes a pick
func playRound(ctx context.Context, app *factory.App, g *game.Game, prompter *Prompter, output *Output) (*model.RoundRecord, error) {
	number := g.Round()
	if g.State() == model.GameStateRoundScored {
		number++
	}
	output.PrintHeading(fmt.Sprintf("ROUND %d:", number))

	record, err := app.BotService.SubmitBotPicks(g)
	if err != nil {
		return nil, err
	}

	owing := make(map[string]bool)
	for _, name := range g.Awaiting() {
		owing[name] = true
	}
	openRound := g.State() == model.GameStateRoundInProgress

	for seat, p := range g.Players() {
		if record != nil {
			break
		}
		if p.IsBot || (openRound && !owing[p.Name]) {
			continue
		}

		value, err := prompter.Pick(ctx, seat+1, p.Name, g.MaxPick())
		if err != nil {
			return nil, err
		}
		if record, err = g.SubmitPick(p.Name, value); err != nil {
			return nil, err
		}
	}

	if record == nil {
		return nil, errors.New("round ended with picks outstanding")
	}
	return record, nil
}

type botSpec struct {
	name     string
	strategy string
}

// parseBots reads name[:strategy] values, defaulting to the random strategy.
// Names and strategies are checked before anyone is prompted.
func parseBots(values []string) ([]botSpec, error) {
	bots := make([]botSpec, 0, len(values))
	for _, v := range values {
		name, strategy, found := strings.Cut(v, ":")
		if !found {
			strategy = model.BotStrategyRandom
		}
		name = strings.TrimSpace(name)
		if err := ValidateName(name); err != nil {
			return nil, fmt.Errorf("--bot %q: %w", v, err)
		}
		strategy = strings.TrimSpace(strategy)
		if !slices.Contains(model.ValidBotStrategies(), strategy) {
			return nil, fmt.Errorf("--bot %q: %w: %s", v, model.ErrUnknownBotStrategy, strategy)
		}
		bots = append(bots, botSpec{name: name, strategy: strategy})
	}
	return bots, nil
}
