// Package game encapsulates the solitaire engine: the game state
// snapshot, the rule-set contract, the move validation/commit loop and
// the bounded undo/redo history.
package game

import (
	"fmt"
	"sort"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/pile"
)

// Reserved pile names. Every other pile lives in the named pile map.
const (
	StockPile = "stock"
	WastePile = "waste"
)

// TableauName returns the conventional name of tableau column i.
func TableauName(i int) string {
	return fmt.Sprintf("tableau_%d", i)
}

// FoundationName returns the conventional name of the foundation for a
// suit.
func FoundationName(s card.Suit) string {
	return fmt.Sprintf("foundation_%s", s.Name())
}

// State is a full snapshot of a game at one moment: every pile, the
// score and the move counter. It is logically immutable: the engine
// never mutates its current State in place, it copies, mutates the copy
// and swaps the reference. That is what makes history snapshots safe to
// retain.
type State struct {
	piles map[string]*pile.Pile
	stock *pile.Pile
	waste *pile.Pile

	score       int
	moves       int
	timeElapsed int

	// selectedPile is a UI hint carried along with the state. The core
	// logic never reads it.
	selectedPile string
}

// NewState assembles a state from dealt piles, a stock and an empty
// waste.
func NewState(piles map[string]*pile.Pile, stock, waste *pile.Pile) *State {
	if piles == nil {
		piles = map[string]*pile.Pile{}
	}
	if stock == nil {
		stock = pile.New(StockPile)
	}
	if waste == nil {
		waste = pile.New(WastePile)
	}
	return &State{piles: piles, stock: stock, waste: waste}
}

// Pile looks up a pile by name. Stock and waste resolve through their
// reserved names. An unknown name returns nil; callers treat that as
// "no such pile" rather than an error.
func (s *State) Pile(name string) *pile.Pile {
	switch name {
	case StockPile:
		return s.stock
	case WastePile:
		return s.waste
	}
	return s.piles[name]
}

// Stock returns the stock pile.
func (s *State) Stock() *pile.Pile {
	return s.stock
}

// Waste returns the waste pile.
func (s *State) Waste() *pile.Pile {
	return s.waste
}

// PileNames returns the names of every pile including stock and waste,
// sorted for deterministic iteration.
func (s *State) PileNames() []string {
	names := make([]string, 0, len(s.piles)+2)
	names = append(names, StockPile, WastePile)
	for name := range s.piles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamedPiles returns the names of the dealt piles (everything except
// stock and waste), sorted.
func (s *State) NamedPiles() []string {
	names := make([]string, 0, len(s.piles))
	for name := range s.piles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// AddScore adjusts the score by delta.
func (s *State) AddScore(delta int) {
	s.score += delta
}

// Moves returns the move counter.
func (s *State) Moves() int {
	return s.moves
}

// IncrementMoves bumps the move counter by one.
func (s *State) IncrementMoves() {
	s.moves++
}

// TimeElapsed returns the elapsed play time in seconds.
func (s *State) TimeElapsed() int {
	return s.timeElapsed
}

// SetTimeElapsed records the elapsed play time in seconds.
func (s *State) SetTimeElapsed(seconds int) {
	s.timeElapsed = seconds
}

// SelectedPile returns the UI selection hint, if any.
func (s *State) SelectedPile() string {
	return s.selectedPile
}

// SetSelectedPile stores a UI selection hint. It never affects rules.
func (s *State) SetSelectedPile(name string) {
	s.selectedPile = name
}

// CardCount returns the total number of cards across every pile. In any
// reachable state this is exactly card.DeckSize.
func (s *State) CardCount() int {
	n := s.stock.Size() + s.waste.Size()
	for _, p := range s.piles {
		n += p.Size()
	}
	return n
}

// Copy produces a deep copy. The copy owns independent piles, so
// mutating it never disturbs the original or any retained snapshot.
func (s *State) Copy() *State {
	cp := &State{
		piles:        make(map[string]*pile.Pile, len(s.piles)),
		stock:        s.stock.Copy(),
		waste:        s.waste.Copy(),
		score:        s.score,
		moves:        s.moves,
		timeElapsed:  s.timeElapsed,
		selectedPile: s.selectedPile,
	}
	for name, p := range s.piles {
		cp.piles[name] = p.Copy()
	}
	return cp
}

func (s *State) String() string {
	return fmt.Sprintf("<state piles=%d stock=%d waste=%d score=%d moves=%d>",
		len(s.piles), s.stock.Size(), s.waste.Size(), s.score, s.moves)
}
