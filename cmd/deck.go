package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/grimoire/internal/config"
	"github.com/arcanaland/grimoire/internal/deck"
	"github.com/arcanaland/grimoire/internal/render"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing deck files in your deck library (XDG_DATA_HOME/grimoire/decks).`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'grimoire deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %v", err)
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %v", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %v", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			d, err := deck.LoadDeck(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			main, side := d.Count()
			if name == defaultDeck {
				fmt.Fprintf(out, "* %s (%s, %d+%d cards) [DEFAULT]\n", name, d.DisplayName(), main, side)
			} else {
				fmt.Fprintf(out, "  %s (%s, %d+%d cards)\n", name, d.DisplayName(), main, side)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add deck files by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Summarize a deck",
	Long: `Show prints a summary of a deck: card counts, mana curve, colors and
the value of the cards with a fetched price. Without a name the default deck
is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := ""
		if len(args) == 1 {
			deckName = args[0]
		} else {
			defaultDeck, err := config.GetDefaultDeck()
			if err != nil {
				return fmt.Errorf("error getting default deck: %v", err)
			}
			if defaultDeck == "" {
				return fmt.Errorf("no deck given and no default deck set")
			}
			deckName = defaultDeck
		}

		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %v", err)
		}

		printDeckSummary(cmd, d)
		return nil
	},
}

func printDeckSummary(cmd *cobra.Command, d *deck.Deck) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Deck: %s\n", d.DisplayName())
	if d.Format != nil {
		fmt.Fprintf(out, "Format: %s\n", d.Format)
	}

	main, side := d.Count()
	fmt.Fprintf(out, "Cards: %d maindeck, %d sideboard\n", main, side)

	var colors []string
	for _, c := range d.Colors() {
		colors = append(colors, c.Symbol())
	}
	if len(colors) == 0 {
		colors = append(colors, "-")
	}
	fmt.Fprintf(out, "Colors: %s\n", strings.Join(colors, ""))
	fmt.Fprintf(out, "Average CMC: %.2f\n", d.AverageCMC())

	curve := d.ManaCurve()
	if len(curve) > 0 {
		fmt.Fprintln(out, "Mana curve:")
		for _, cmc := range deck.CurveSteps(curve) {
			fmt.Fprintf(out, "  %2d | %s %d\n", cmc, strings.Repeat("■", curve[cmc]), curve[cmc])
		}
	}

	usd, unpriced := d.Value()
	fmt.Fprintf(out, "Value: $%.2f", usd)
	if unpriced > 0 {
		fmt.Fprintf(out, " (%d cards without a price)", unpriced)
	}
	fmt.Fprintln(out)

	verbose, _ := cmd.Flags().GetBool("cards")
	if verbose {
		width := render.TerminalWidth()
		for i := range d.Maindeck {
			render.Card(out, &d.Maindeck[i], "", width)
		}
	}
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]

		// Check if the deck exists
		deckPath, err := config.GetDeckPath(deckName)
		if err != nil {
			return err
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck - %v", err)
		}

		if err := config.SetDefaultDeck(deckName); err != nil {
			return fmt.Errorf("error setting default deck: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %v", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add deck files by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckShowCmd.Flags().Bool("cards", false, "Also display every maindeck card")
}
