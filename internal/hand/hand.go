// Package hand holds the cards dealt to one player or the dealer and works out
// what they are worth.
package hand

import (
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
)

// Target is the best total a hand can reach without busting.
const Target = 21

// Hand is the ordered set of cards held by one party during a round.
// The zero value is an empty hand ready for use.
type Hand struct {
	cards []card.Card
}

// New returns a hand holding the given cards, in order
func New(cards ...card.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.AddCard(c)
	}
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the highest total not above 21 that the hand can make, with
// each Ace worth 11 or 1. A hand that busts even with every Ace at 1 returns
// its full total.
func (h *Hand) Value() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether an Ace is still counted as 11
func (h *Hand) IsSoft() bool {
	_, softAces := h.evaluate()
	return softAces > 0
}

// IsBust reports whether the hand is over 21
func (h *Hand) IsBust() bool {
	return h.Value() > Target
}

// IsBlackjack reports whether the hand is a natural: two cards worth 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == Target
}

// evaluate returns the total and how many Aces remain valued at 11
func (h *Hand) evaluate() (int, int) {
	total := 0
	numAces := 0
	for _, c := range h.cards {
		total += deck.Points(c.Rank)
		if c.Rank.IsAce() {
			numAces++
		}
	}

	for numAces > 0 && total > Target {
		numAces--
		total -= 10
	}
	return total, numAces
}

// Discard empties the hand and returns the cards it held, in deal order.
// The returned slice does not share storage with the hand.
func (h *Hand) Discard() []card.Card {
	discards := h.Cards()
	clear(h.cards)
	h.cards = h.cards[:0]
	return discards
}

// String lists the cards as "A, B and C"
func (h *Hand) String() string {
	return h.Render(card.Card.String)
}

// Render lists the cards like String, naming each card with name
func (h *Hand) Render(name func(card.Card) string) string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = name(c)
	}

	if len(names) <= 2 {
		return strings.Join(names, " and ")
	}
	last := len(names) - 1
	return strings.Join(names[:last], ", ") + " and " + names[last]
}
