package cmd

import (
	"fmt"

	"github.com/arcanaland/grimoire/internal/card"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Tool for inspecting Magic the Gathering cards and decks",
	Long: `Grimoire is a command-line tool for inspecting, validating, and managing
Magic the Gathering card records and decks.

Run without a subcommand it prints the built-in example card.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		c := card.MoldgrafMonstrosity()
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", c)
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
