package table

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// Table is a round of blackjack: one named seat per party, each holding a hand
type Table struct {
	Name  string
	Path  string
	Seats []*Seat
}

// Seat is one party at the table (a player or the dealer)
type Seat struct {
	Name string
	Hand *hand.Hand
}

// LoadTable loads a table file and deals the listed cards into each seat's hand
func LoadTable(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table file not found: %s", path)
	}

	var config TableConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	t := &Table{
		Name: config.Name,
		Path: path,
	}

	for _, hc := range config.Hands {
		seat := &Seat{Name: hc.Name, Hand: hand.New()}
		for i, label := range hc.Cards {
			c, err := card.ParseCard(label)
			if err != nil {
				return nil, fmt.Errorf("hand %q card %d: %w", hc.Name, i+1, err)
			}
			seat.Hand.AddCard(c)
		}
		t.Seats = append(t.Seats, seat)
	}

	return t, nil
}

// GetSeat finds a seat by name, ignoring case
func (t *Table) GetSeat(name string) (*Seat, error) {
	for _, s := range t.Seats {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("seat not found: %s", name)
}

// Discard ends the round, moving every hand's cards to the pile in seat order.
// It returns the number of cards moved.
func (t *Table) Discard(pile *deck.DiscardPile) int {
	moved := 0
	for _, s := range t.Seats {
		cards := s.Hand.Discard()
		pile.Add(cards...)
		moved += len(cards)
	}
	return moved
}

// Table file structures
type TableConfig struct {
	Name  string       `toml:"name"`
	Hands []HandConfig `toml:"hands"`
}

type HandConfig struct {
	Name  string   `toml:"name"`
	Cards []string `toml:"cards"`
}
