package card

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnknownRank = errors.New("unknown rank")
	ErrUnknownSuit = errors.New("unknown suit")
	ErrInvalidCard = errors.New("invalid card")
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = map[Suit]string{
	Clubs:    "Clubs",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Spades:   "Spades",
}

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// String returns the suit name (e.g., "Spades")
func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Symbol returns the suit symbol (e.g., "♠")
func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// String returns the rank label (e.g., "Ace", "Seven")
func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Short returns the index printed in a card's corner ("2".."10", "J", "Q", "K", "A")
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// IsAce returns true if the rank is an Ace
func (r Rank) IsAce() bool {
	return r == Ace
}

// IsFace returns true for Jack, Queen and King
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the long form of the card (e.g., "Ace of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact form of the card (e.g., "A♠")
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Ranks returns all thirteen ranks from Two to Ace
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits returns the four suits
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// ParseRank parses a rank given as a word, a number or a corner index
func ParseRank(s string) (Rank, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "a", "ace":
		return Ace, nil
	case "k", "king":
		return King, nil
	case "q", "queen":
		return Queen, nil
	case "j", "jack":
		return Jack, nil
	case "t", "10", "ten":
		return Ten, nil
	}
	for r := Two; r <= Nine; r++ {
		if key == strings.ToLower(rankNames[r]) || key == r.Short() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

// ParseSuit parses a suit given as a word, a single letter or a symbol
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "club", "clubs", "♣", "♧":
		return Clubs, nil
	case "d", "diamond", "diamonds", "♦", "♢":
		return Diamonds, nil
	case "h", "heart", "hearts", "♥", "♡":
		return Hearts, nil
	case "s", "spade", "spades", "♠", "♤":
		return Spades, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// ParseCard parses a card in long form ("Ace of Spades") or short form ("As", "10h", "Q♦")
func ParseCard(s string) (Card, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	// Long form
	fields := strings.Fields(trimmed)
	if len(fields) == 3 && strings.EqualFold(fields[1], "of") {
		rank, err := ParseRank(fields[0])
		if err != nil {
			return Card{}, err
		}
		suit, err := ParseSuit(fields[2])
		if err != nil {
			return Card{}, err
		}
		return Card{Rank: rank, Suit: suit}, nil
	}
	if len(fields) != 1 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	// Short form: the suit is the last rune
	last, size := utf8.DecodeLastRuneInString(trimmed)
	if last == utf8.RuneError || size == len(trimmed) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := ParseRank(trimmed[:len(trimmed)-size])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(last))
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses each label in order, stopping at the first error
func ParseCards(labels []string) ([]Card, error) {
	cards := make([]Card, 0, len(labels))
	for _, label := range labels {
		c, err := ParseCard(label)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
