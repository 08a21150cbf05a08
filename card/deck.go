package card

import (
	"math/rand"

	"lukechampine.com/frand"
)

// DeckSize is the size of a standard deck.
const DeckSize = NumSuits * NumRanks

// NewDeck returns an ordered 52-card deck, all cards face-down.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, New(s, r))
		}
	}
	return deck
}

// ShuffledDeck returns a full deck shuffled deterministically from the
// given seed: the same seed always produces the same ordering.
func ShuffledDeck(seed int64) []Card {
	deck := NewDeck()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// RandomSeed draws a fresh shuffle seed. Used when the caller does not
// care about reproducibility.
func RandomSeed() int64 {
	return int64(frand.Uint64n(1 << 62))
}
