package cmd

import (
	"fmt"

	"github.com/arcanaland/grimoire/internal/card"
	"github.com/arcanaland/grimoire/internal/config"
	"github.com/arcanaland/grimoire/internal/render"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_file]",
	Short: "Display a card with optional ANSI art",
	Long: `Show displays a card file with its derived values: converted mana cost,
collector number and whether the printing appears in boosters.
Without a card file the built-in example card is shown.

Pass --art with an illustration image (PNG, JPEG or GIF) to render it as
ANSI art beside the card. Generated art is cached in XDG_CACHE_HOME.

Examples:
  grimoire show
  grimoire show ./moldgraf.toml
  grimoire show --art ./moldgraf.jpg ./moldgraf.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artFlag, _ := cmd.Flags().GetString("art")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			defer func(prev bool) { colorize.NoColor = prev }(colorize.NoColor)
			colorize.NoColor = true
		}

		var c *card.Card
		if len(args) == 0 {
			example := card.MoldgrafMonstrosity()
			c = &example
		} else {
			var err error
			c, err = card.LoadFile(args[0])
			if err != nil {
				return err
			}
		}

		var art string
		if artFlag != "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %v", err)
			}

			width, _ := cmd.Flags().GetInt("width")
			if width <= 0 {
				width = cfg.ArtWidth
			}

			art, err = render.Art(artFlag, config.GetCacheDir(), width)
			if err != nil {
				return fmt.Errorf("error loading ANSI art: %v", err)
			}
		}

		render.Card(cmd.OutOrStdout(), c, art, render.TerminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("art", "a", "", "Illustration image to render as ANSI art")
	showCmd.Flags().IntP("width", "w", 0, "Width of the ANSI art in cells (default from config)")
	showCmd.Flags().Bool("no-color", false, "Disable colored output")
}
