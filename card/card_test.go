package card

import (
	"testing"

	"github.com/matryer/is"
)

func TestColor(t *testing.T) {
	is := is.New(t)
	is.Equal(New(Hearts, Ace).Color(), Red)
	is.Equal(New(Diamonds, 7).Color(), Red)
	is.Equal(New(Clubs, Queen).Color(), Black)
	is.Equal(New(Spades, King).Color(), Black)
}

func TestFlipDoesNotMutate(t *testing.T) {
	is := is.New(t)
	c := New(Spades, 5)
	up := c.Flip()
	is.True(up.FaceUp)
	is.True(!c.FaceUp) // original value untouched
	is.Equal(up.FaceDownCard(), c)
}

func TestSuitNames(t *testing.T) {
	is := is.New(t)
	for _, s := range Suits {
		back, ok := SuitFromName(s.Name())
		is.True(ok)
		is.Equal(back, s)
	}
	_, ok := SuitFromName("CUPS")
	is.True(!ok)
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(New(Hearts, Ace).FaceUpCard().String(), "A♥")
	is.Equal(New(Clubs, 10).FaceUpCard().String(), "10♣")
	is.Equal(New(Clubs, 10).String(), "[??]")
}

func TestNewDeck(t *testing.T) {
	is := is.New(t)
	deck := NewDeck()
	is.Equal(len(deck), DeckSize)

	seen := map[Card]bool{}
	for _, c := range deck {
		is.True(!c.FaceUp)
		seen[c] = true
	}
	is.Equal(len(seen), DeckSize)
}

func TestShuffledDeckDeterministic(t *testing.T) {
	is := is.New(t)
	a := ShuffledDeck(42)
	b := ShuffledDeck(42)
	c := ShuffledDeck(43)

	is.Equal(a, b)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	is.True(!same)
}
