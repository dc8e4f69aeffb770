package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/hand"
)

var handCmd = &cobra.Command{
	Use:   "hand [card...]",
	Short: "Score a single hand",
	Long: `Hand builds a hand from the given cards, in deal order, and prints the
cards, the hand's value and whether it is soft, a blackjack or bust.

Cards can be written in long form ("Ace of Spades", quoted) or short form
("As", "10h", "Q♦").

Examples:
  blackjack hand As Kh
  blackjack hand "Ace of Spades" "Seven of Hearts" 9c
  blackjack hand --style short ace-of-spades`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := cardStyle(cmd)
		if err != nil {
			return err
		}

		cards, err := card.ParseCards(splitCardArgs(args))
		if err != nil {
			return err
		}

		h := hand.New(cards...)
		logger.Debug("scored hand", "cards", h.Len(), "value", h.Value(), "soft", h.IsSoft())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.CyanString("Cards: ")+h.Render(cardNamer(style)))
		fmt.Fprintln(out, color.CyanString("Value: ")+formatValue(h))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(handCmd)

	handCmd.Flags().StringP("style", "s", "", "Card style: long or short (default from config)")
}

// cardStyle returns the --style flag, falling back to the configured style
func cardStyle(cmd *cobra.Command) (string, error) {
	style, _ := cmd.Flags().GetString("style")
	if style == "" {
		return cfg.CardStyle, nil
	}
	style = strings.ToLower(style)
	if style != config.StyleLong && style != config.StyleShort {
		return "", fmt.Errorf("invalid card style %q (expected %s or %s)", style, config.StyleLong, config.StyleShort)
	}
	return style, nil
}

// splitCardArgs accepts hyphenated long forms such as "ace-of-spades"
func splitCardArgs(args []string) []string {
	labels := make([]string, len(args))
	for i, arg := range args {
		labels[i] = strings.ReplaceAll(arg, "-", " ")
	}
	return labels
}

// formatValue renders a hand's value with its status
func formatValue(h *hand.Hand) string {
	value := h.Value()
	switch {
	case h.IsBlackjack():
		return color.HiGreenString("%d (blackjack)", value)
	case h.IsBust():
		return color.HiRedString("%d (bust)", value)
	case h.IsSoft():
		return color.HiYellowString("soft %d", value)
	default:
		return color.HiWhiteString("%d", value)
	}
}
