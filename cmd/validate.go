package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [table_file]",
	Short: "Validate a table file",
	Long: `Validate checks that a table file can be scored: every hand is named
once, every card label is a real card, and no card is dealt more often than
the shoe holds (see the decks setting, or --decks).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath := args[0]

		if _, err := os.Stat(tablePath); os.IsNotExist(err) {
			return fmt.Errorf("table file not found: %s", tablePath)
		}

		decks := cfg.Decks
		if n, _ := cmd.Flags().GetInt("decks"); n > 0 {
			decks = n
		}

		v := validator.NewValidator(tablePath, decks)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		logger.Debug("validated table", "path", tablePath, "decks", v.Decks,
			"errors", len(results.Errors), "warnings", len(results.Warnings))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Table '%s' is valid.\n", tablePath)
		} else {
			fmt.Fprintf(out, "❌ Table '%s' has %d validation errors:\n", tablePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Int("decks", 0, "Number of decks in the shoe (default from config)")
}
