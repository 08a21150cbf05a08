// Package pile implements the ordered, named card container the solitaire
// engine is built on. The top of a pile is the end of the underlying
// slice. A pile never exposes raw mutable indexed access; callers go
// through the semantic operations so the engine's invariants hold.
package pile

import (
	"fmt"
	"strings"

	"github.com/kosynka/patience/card"
)

// Pile is an ordered stack of cards with a name. Identity is by name; a
// game state owns exactly one pile per name.
type Pile struct {
	name  string
	cards []card.Card
}

// New creates a pile holding the given cards, bottom first.
func New(name string, cards ...card.Card) *Pile {
	p := &Pile{name: name}
	p.cards = append(p.cards, cards...)
	return p
}

// Name returns the pile's name.
func (p *Pile) Name() string {
	return p.name
}

// Size returns the number of cards in the pile.
func (p *Pile) Size() int {
	return len(p.cards)
}

// IsEmpty reports whether the pile has no cards.
func (p *Pile) IsEmpty() bool {
	return len(p.cards) == 0
}

// Top returns the top card. The second value is false if the pile is
// empty.
func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Bottom returns the bottom card. The second value is false if the pile
// is empty.
func (p *Pile) Bottom() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[0], true
}

// At returns the card at index i counted from the bottom. Read-only; used
// for rendering and serialization.
func (p *Pile) At(i int) (card.Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return card.Card{}, false
	}
	return p.cards[i], true
}

// Peek returns the top n cards without removing them, in pile order
// (deepest first). If n exceeds the pile size the whole pile is
// returned; n <= 0 returns nil.
func (p *Pile) Peek(n int) []card.Card {
	if n <= 0 {
		return nil
	}
	if n > len(p.cards) {
		n = len(p.cards)
	}
	out := make([]card.Card, n)
	copy(out, p.cards[len(p.cards)-n:])
	return out
}

// Take removes and returns the top n cards in their original order.
// Returns nil without modifying the pile if n <= 0 or n exceeds the
// pile size.
func (p *Pile) Take(n int) []card.Card {
	if n <= 0 || n > len(p.cards) {
		return nil
	}
	cut := len(p.cards) - n
	out := make([]card.Card, n)
	copy(out, p.cards[cut:])
	p.cards = p.cards[:cut]
	return out
}

// TakeFrom removes and returns all cards from index i (counted from the
// bottom) to the top. Returns nil if i is out of range.
func (p *Pile) TakeFrom(i int) []card.Card {
	if i < 0 || i >= len(p.cards) {
		return nil
	}
	return p.Take(len(p.cards) - i)
}

// Add appends cards to the top of the pile, preserving their order.
func (p *Pile) Add(cards []card.Card) {
	p.cards = append(p.cards, cards...)
}

// Put places a single card on top.
func (p *Pile) Put(c card.Card) {
	p.cards = append(p.cards, c)
}

// FaceUpCount returns the number of consecutive face-up cards at the top
// of the pile. Only such a contiguous run is ever liftable.
func (p *Pile) FaceUpCount() int {
	n := 0
	for i := len(p.cards) - 1; i >= 0; i-- {
		if !p.cards[i].FaceUp {
			break
		}
		n++
	}
	return n
}

// AllFaceUp reports whether every card in the pile is face-up.
func (p *Pile) AllFaceUp() bool {
	for _, c := range p.cards {
		if !c.FaceUp {
			return false
		}
	}
	return true
}

// AllFaceDown reports whether every card in the pile is face-down.
func (p *Pile) AllFaceDown() bool {
	for _, c := range p.cards {
		if c.FaceUp {
			return false
		}
	}
	return true
}

// FlipTop turns the top card face-up if it is face-down. It reports
// whether a flip happened.
func (p *Pile) FlipTop() bool {
	if len(p.cards) == 0 {
		return false
	}
	top := p.cards[len(p.cards)-1]
	if top.FaceUp {
		return false
	}
	p.cards[len(p.cards)-1] = top.FaceUpCard()
	return true
}

// FlipAt flips the orientation of the card at index i. Used when undoing
// flip side effects.
func (p *Pile) FlipAt(i int) bool {
	if i < 0 || i >= len(p.cards) {
		return false
	}
	p.cards[i] = p.cards[i].Flip()
	return true
}

// FlipAll turns every card in the pile to the given orientation.
func (p *Pile) FlipAll(faceUp bool) {
	for i, c := range p.cards {
		if c.FaceUp != faceUp {
			c.FaceUp = faceUp
			p.cards[i] = c
		}
	}
}

// FaceUpCards returns the contiguous face-up run at the top, in pile
// order (deepest first).
func (p *Pile) FaceUpCards() []card.Card {
	return p.Peek(p.FaceUpCount())
}

// FaceDownCards returns the face-down cards from the bottom up, stopping
// at the first face-up card.
func (p *Pile) FaceDownCards() []card.Card {
	var out []card.Card
	for _, c := range p.cards {
		if c.FaceUp {
			break
		}
		out = append(out, c)
	}
	return out
}

// Cards returns a copy of the pile's contents, bottom first.
func (p *Pile) Cards() []card.Card {
	out := make([]card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Copy returns a deep copy of the pile. Cards are value types, so
// copying the slice is enough to make the copy fully independent.
func (p *Pile) Copy() *Pile {
	cp := &Pile{name: p.name, cards: make([]card.Card, len(p.cards))}
	copy(cp.cards, p.cards)
	return cp
}

func (p *Pile) String() string {
	if len(p.cards) == 0 {
		return fmt.Sprintf("[%s: empty]", p.name)
	}
	strs := make([]string, len(p.cards))
	for i, c := range p.cards {
		strs[i] = c.String()
	}
	return fmt.Sprintf("[%s: %s]", p.name, strings.Join(strs, " "))
}
