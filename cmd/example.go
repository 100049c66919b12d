package cmd

import (
	"fmt"

	"github.com/arcanaland/grimoire/internal/card"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the built-in example card",
	Long: `Example prints Moldgraf Monstrosity (Commander 2018) as a debug dump.
With --toml it prints the card as a card file instead, which is a good
starting point for writing your own:

  grimoire example --toml > moldgraf.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := card.MoldgrafMonstrosity()

		asToml, _ := cmd.Flags().GetBool("toml")
		if asToml {
			return card.Encode(cmd.OutOrStdout(), c)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().Bool("toml", false, "Print the card as a TOML card file")
}
