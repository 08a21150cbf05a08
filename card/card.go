// Package card contains the card and deck primitives for the solitaire
// engine. Cards are plain value types; "flipping" a card returns a new
// value and never mutates in place, which is what makes game snapshots
// cheap to retain.
package card

import "fmt"

// Suit is one of the four French suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

const NumSuits = 4

// Suits lists all suits in deck order.
var Suits = [NumSuits]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Name returns the all-caps suit name used in pile naming
// ("foundation_HEARTS" etc).
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "HEARTS"
	case Diamonds:
		return "DIAMONDS"
	case Clubs:
		return "CLUBS"
	case Spades:
		return "SPADES"
	}
	return "UNKNOWN"
}

// SuitFromName is the inverse of Name. It returns false if the name does
// not match a suit.
func SuitFromName(name string) (Suit, bool) {
	for _, s := range Suits {
		if s.Name() == name {
			return s, true
		}
	}
	return 0, false
}

// Color is the card color, derived from the suit.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank runs from Ace (1) to King (13).
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

const NumRanks = 13

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return fmt.Sprintf("%d", uint8(r))
}

// Valid reports whether the rank is within Ace..King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is an immutable card value. The zero value is a face-down Ace of
// Hearts.
type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"faceUp"`
}

// New creates a face-down card.
func New(s Suit, r Rank) Card {
	return Card{Suit: s, Rank: r}
}

// Color derives the card color from its suit.
func (c Card) Color() Color {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}
	return Black
}

// Flip returns the card with the opposite orientation.
func (c Card) Flip() Card {
	c.FaceUp = !c.FaceUp
	return c
}

// FaceUpCard returns the card turned face-up.
func (c Card) FaceUpCard() Card {
	c.FaceUp = true
	return c
}

// FaceDownCard returns the card turned face-down.
func (c Card) FaceDownCard() Card {
	c.FaceUp = false
	return c
}

// Is reports whether this card has the given suit and rank, regardless of
// orientation.
func (c Card) Is(s Suit, r Rank) bool {
	return c.Suit == s && c.Rank == r
}

func (c Card) String() string {
	if !c.FaceUp {
		return "[??]"
	}
	return fmt.Sprintf("%v%v", c.Rank, c.Suit)
}
