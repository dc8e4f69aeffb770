package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Padding(0, 1).
			Bold(true)

	seatStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2E7D32")).
			Padding(0, 1)
)

var evalCmd = &cobra.Command{
	Use:   "eval [table_file]",
	Short: "Score every hand in a table file",
	Long: `Eval loads a table file describing one round and prints each seat's
cards and hand value.

A table file lists the hands at the table in TOML:

  name = "Round 1"

  [[hands]]
  name  = "Player"
  cards = ["Ace of Spades", "King of Hearts"]

  [[hands]]
  name  = "Dealer"
  cards = ["10c", "7d"]

With --discard the round is ended after scoring: every hand is emptied and
its cards are moved to the discard pile.

Examples:
  blackjack eval round.toml
  blackjack eval --seat dealer round.toml
  blackjack eval --discard round.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := cardStyle(cmd)
		if err != nil {
			return err
		}
		seatName, _ := cmd.Flags().GetString("seat")
		discard, _ := cmd.Flags().GetBool("discard")

		t, err := table.LoadTable(args[0])
		if err != nil {
			return fmt.Errorf("error loading table: %w", err)
		}
		logger.Debug("loaded table", "path", t.Path, "seats", len(t.Seats))

		seats := t.Seats
		if seatName != "" {
			seat, err := t.GetSeat(seatName)
			if err != nil {
				return err
			}
			seats = []*table.Seat{seat}
		}

		out := cmd.OutOrStdout()
		width := terminalWidth(out)

		if t.Name != "" {
			fmt.Fprintln(out, titleStyle.Render("♠ ♥ "+t.Name+" ♦ ♣"))
		}
		for _, seat := range seats {
			displaySeat(out, seat, cardNamer(style), width)
		}

		if discard {
			var pile deck.DiscardPile
			moved := t.Discard(&pile)
			logger.Info("round discarded", "table", t.Name, "cards", moved)
			fmt.Fprintf(out, "%d cards moved to the discard pile.\n", pile.Len())
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringP("style", "s", "", "Card style: long or short (default from config)")
	evalCmd.Flags().String("seat", "", "Only show the named seat")
	evalCmd.Flags().Bool("discard", false, "End the round and move all cards to the discard pile")
}

// displaySeat prints one seat's cards and value inside a bordered block
func displaySeat(out io.Writer, seat *table.Seat, name func(card.Card) string, width int) {
	// Border and padding take four columns
	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	var lines []string
	lines = append(lines, color.CyanString("Seat:  ")+color.HiWhiteString("%s", seat.Name))

	listing := seat.Hand.Render(name)
	if listing == "" {
		listing = "(no cards)"
	}
	for i, line := range wrapText(listing, textWidth-7) {
		if i == 0 {
			lines = append(lines, color.CyanString("Cards: ")+line)
		} else {
			lines = append(lines, "       "+line)
		}
	}

	lines = append(lines, color.CyanString("Value: ")+formatValue(seat.Hand))

	fmt.Fprintln(out, seatStyle.Render(strings.Join(lines, "\n")))
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if lipgloss.Width(currentLine)+1+lipgloss.Width(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
