package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "uniquepick",
		Short: "Scorekeeper for the unique-pick number game",
		Long: `uniquepick runs the unique-pick parlour game at a shared terminal.

Each round every player secretly picks a number from 1 to the player count.
Unique picks score their value, shared picks lose it. Every flag can also be
set through an UNIQUEPICK_<FLAG> environment variable or a .env file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindEnv(v, cmd.Flags())
			return cfg.validate()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: UNIQUEPICK_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging (env: UNIQUEPICK_VERBOSE)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env: UNIQUEPICK_LOG_FORMAT)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(cfg))
	rootCmd.AddCommand(newRulesCmd(cfg))

	return rootCmd
}

// Execute runs the root command, cancelling it on interrupt
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		format, _ := rootCmd.PersistentFlags().GetString("output")
		NewOutput(format, os.Stdout, os.Stderr).PrintError(err)
		stop()
		os.Exit(1)
	}
}
