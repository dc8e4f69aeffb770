package deck

import (
	"github.com/arcanaland/blackjack/internal/card"
)

// Ranks maps each rank to its blackjack points. Aces count 11 here and are
// rebased to 1 by the hand when it would otherwise bust.
var Ranks = map[card.Rank]int{
	card.Two:   2,
	card.Three: 3,
	card.Four:  4,
	card.Five:  5,
	card.Six:   6,
	card.Seven: 7,
	card.Eight: 8,
	card.Nine:  9,
	card.Ten:   10,
	card.Jack:  10,
	card.Queen: 10,
	card.King:  10,
	card.Ace:   11,
}

// Points returns the points for a rank
func Points(r card.Rank) int {
	return Ranks[r]
}

// Standard returns the 52 cards of a single deck, suit by suit
func Standard() []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// DiscardPile collects the cards removed from play at the end of each round
type DiscardPile struct {
	cards []card.Card
}

// Add puts cards on the pile, keeping their order
func (p *DiscardPile) Add(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

// Len returns the number of cards on the pile
func (p *DiscardPile) Len() int {
	return len(p.cards)
}

// Cards returns a copy of the pile, oldest card first
func (p *DiscardPile) Cards() []card.Card {
	out := make([]card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}
