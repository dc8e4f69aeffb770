package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
)

const roundOne = `
name = "Round 1"

[[hands]]
name = "Player"
cards = ["Ace of Spades", "King of Hearts"]

[[hands]]
name = "Dealer"
cards = ["10c", "7d"]
`

const doubleAce = `
name = "Round 2"

[[hands]]
name = "Player"
cards = ["As", "Kh"]

[[hands]]
name = "Dealer"
cards = ["Ace of Spades", "2c"]
`

// withConfigHome points the config file at a fresh directory
func withConfigHome(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// executeCommand runs the root command and returns stdout and stderr
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)

	err := Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores flag defaults left over from earlier runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHandCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "blackjack",
			args: []string{"hand", "As", "Kh"},
			want: []string{"Cards: Ace of Spades and King of Hearts", "Value: 21 (blackjack)"},
		},
		{
			name: "soft total",
			args: []string{"hand", "As", "6d"},
			want: []string{"Value: soft 17"},
		},
		{
			name: "hard total after rebasing",
			args: []string{"hand", "As", "Kh", "Kc"},
			want: []string{"Cards: Ace of Spades, King of Hearts and King of Clubs", "Value: 21\n"},
		},
		{
			name: "bust",
			args: []string{"hand", "Kh", "Qs", "5c"},
			want: []string{"Value: 25 (bust)"},
		},
		{
			name: "short style",
			args: []string{"hand", "--style", "short", "ace-of-spades", "10h", "9c"},
			want: []string{"Cards: A♠, 10♥ and 9♣", "Value: 20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfigHome(t)
			out, _, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestHandCommandErrors(t *testing.T) {
	withConfigHome(t)

	_, _, err := executeCommand(t, "hand", "Xs")
	assert.ErrorIs(t, err, card.ErrUnknownRank)

	_, _, err = executeCommand(t, "hand", "--style", "tiny", "As")
	assert.ErrorContains(t, err, "invalid card style")

	_, _, err = executeCommand(t, "hand")
	assert.Error(t, err)
}

func TestHandCommandUsesConfiguredStyle(t *testing.T) {
	withConfigHome(t)

	_, _, err := executeCommand(t, "config", "set", "card_style", "short")
	require.NoError(t, err)

	out, _, err := executeCommand(t, "hand", "Qd", "Jc")
	require.NoError(t, err)
	assert.Contains(t, out, "Cards: Q♦ and J♣")
}

func TestEvalCommand(t *testing.T) {
	withConfigHome(t)
	path := writeTable(t, roundOne)

	out, _, err := executeCommand(t, "eval", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "Seat:  Player")
	assert.Contains(t, out, "Cards: Ace of Spades and King of Hearts")
	assert.Contains(t, out, "Value: 21 (blackjack)")
	assert.Contains(t, out, "Seat:  Dealer")
	assert.Contains(t, out, "Cards: Ten of Clubs and Seven of Diamonds")
	assert.Contains(t, out, "Value: 17")
	assert.NotContains(t, out, "discard pile")
}

func TestEvalCommandSeat(t *testing.T) {
	withConfigHome(t)
	path := writeTable(t, roundOne)

	out, _, err := executeCommand(t, "eval", "--seat", "dealer", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Seat:  Dealer")
	assert.NotContains(t, out, "Player")

	_, _, err = executeCommand(t, "eval", "--seat", "banker", path)
	assert.ErrorContains(t, err, "seat not found: banker")
}

func TestEvalCommandDiscard(t *testing.T) {
	withConfigHome(t)
	path := writeTable(t, roundOne)

	out, _, err := executeCommand(t, "eval", "--discard", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 cards moved to the discard pile.")
}

func TestEvalCommandErrors(t *testing.T) {
	withConfigHome(t)

	_, _, err := executeCommand(t, "eval", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "table file not found")

	bad := writeTable(t, "[[hands]]\nname = \"Player\"\ncards = [\"Ace of Cups\"]\n")
	_, _, err = executeCommand(t, "eval", bad)
	assert.ErrorIs(t, err, card.ErrUnknownSuit)
}

func TestValidateCommand(t *testing.T) {
	withConfigHome(t)

	out, _, err := executeCommand(t, "validate", writeTable(t, roundOne))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	path := writeTable(t, doubleAce)
	out, _, err = executeCommand(t, "validate", path)
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "1. card dealt more times than 1 deck(s) allow: Ace of Spades (2)")

	out, _, err = executeCommand(t, "validate", "--decks", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidateCommandUsesConfiguredDecks(t *testing.T) {
	withConfigHome(t)

	_, _, err := executeCommand(t, "config", "set", "decks", "6")
	require.NoError(t, err)

	out, _, err := executeCommand(t, "validate", writeTable(t, doubleAce))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestConfigCommands(t *testing.T) {
	withConfigHome(t)

	out, _, err := executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, config.GetConfigFilePath())
	assert.FileExists(t, config.GetConfigFilePath())

	out, _, err = executeCommand(t, "config", "set", "decks", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "decks set to: 3")

	out, _, err = executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "decks = 3")
	assert.Contains(t, out, `card_style = "long"`)

	_, _, err = executeCommand(t, "config", "set", "dealer", "stand")
	assert.ErrorIs(t, err, config.ErrUnknownKey)

	_, _, err = executeCommand(t, "config", "set", "decks", "0")
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestConfigCommandsRepairInvalidFile(t *testing.T) {
	withConfigHome(t)
	path := config.GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("card_style = \"huge\"\n"), 0644))

	// Commands outside the config group refuse the bad file
	_, _, err := executeCommand(t, "hand", "As")
	require.ErrorIs(t, err, config.ErrInvalidValue)

	_, errOut, err := executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, errOut, "config file has invalid settings")

	out, _, err := executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `card_style = "huge"`)

	out, _, err = executeCommand(t, "config", "set", "card_style", "long")
	require.NoError(t, err)
	assert.Contains(t, out, "card_style set to: long")

	out, _, err = executeCommand(t, "hand", "As")
	require.NoError(t, err)
	assert.Contains(t, out, "Cards: Ace of Spades")
}

func TestDebugLogging(t *testing.T) {
	withConfigHome(t)

	_, errOut, err := executeCommand(t, "--debug", "hand", "As")
	require.NoError(t, err)
	assert.Contains(t, errOut, "loaded config")
	assert.Contains(t, errOut, "scored hand")

	_, errOut, err = executeCommand(t, "hand", "As")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "scored hand")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 20))
	assert.Equal(t, []string{"Ace of Spades"}, wrapText("Ace of Spades", 20))
	assert.Equal(t,
		[]string{"Ace of Spades, King", "of Hearts and Two of", "Clubs"},
		wrapText("Ace of Spades, King of Hearts and Two of Clubs", 20))
}
