package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/grimoire/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [card_file...]",
	Short: "Validate card files",
	Long: `Validate checks that card files decode and that each card keeps the model's
invariants: a set number of at least 1, no negative mana amounts and no color
repeated in the mana cost. Softer problems are reported as warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0

		for _, cardPath := range args {
			if _, err := os.Stat(cardPath); os.IsNotExist(err) {
				return fmt.Errorf("card file not found: %s", cardPath)
			}

			v := validator.NewValidator(cardPath)
			results, err := v.Validate()
			if err != nil {
				return fmt.Errorf("validation error: %v", err)
			}

			if len(results.Errors) == 0 {
				fmt.Fprintf(out, "✅ Card '%s' is valid.\n", cardPath)
			} else {
				failed++
				fmt.Fprintf(out, "❌ Card '%s' has %d validation errors:\n", cardPath, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, err)
				}
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}
			fmt.Fprintln(out)
		}

		if failed > 0 {
			return fmt.Errorf("validation failed for %d of %d cards", failed, len(args))
		}

		return nil
	},
}
