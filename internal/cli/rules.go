package cli

import (
	"github.com/spf13/cobra"
)

const rulesText = `How to play uniquepick

  1. Every round, each player secretly picks a whole number from 1 to N,
     where N is the number of players.
  2. If nobody else picked your number, you gain that many points.
  3. If anyone else picked the same number, everyone who picked it loses
     that many points.
  4. After the last round the player with the most points wins. Players
     level on the top score share the win.

A good number of rounds is twice the number of players.`

func newRulesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Explain how the game is scored",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()).PrintMessage(rulesText)
		},
	}
}
