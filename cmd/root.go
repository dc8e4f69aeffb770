package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/logging"
)

var (
	cfg    = config.Default()
	logger = log.New(io.Discard)
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Score and inspect blackjack hands",
	Long: `Blackjack is a command-line tool for scoring blackjack hands.
It values each hand with soft and hard aces, lists its cards, and checks
table files describing a round before they are scored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		setup(cmd, loaded)
		return nil
	},
}

// setup installs the loaded config and builds the logger and color settings from it
func setup(cmd *cobra.Command, loaded *config.Config) {
	cfg = loaded

	debug, _ := cmd.Flags().GetBool("debug")
	logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, debug)
	color.NoColor = !cfg.Color || !isTerminal(cmd.OutOrStdout())

	logger.Debug("loaded config", "path", config.GetConfigFilePath(),
		"card_style", cfg.CardStyle, "decks", cfg.Decks, "color", !color.NoColor)
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or 80 when it is not a terminal
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// cardNamer returns how cards are written for a card style
func cardNamer(style string) func(card.Card) string {
	if style == config.StyleShort {
		return card.Card.Short
	}
	return card.Card.String
}
