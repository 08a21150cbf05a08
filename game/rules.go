package game

import (
	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/move"
	"github.com/kosynka/patience/pile"
)

// PileType classifies a pile by the role it plays in a variant. Build
// and take rules dispatch on this everywhere.
type PileType uint8

const (
	Unknown PileType = iota
	Stock
	Waste
	Tableau
	Foundation
	FreeCell
	Reserve
)

func (pt PileType) String() string {
	switch pt {
	case Stock:
		return "stock"
	case Waste:
		return "waste"
	case Tableau:
		return "tableau"
	case Foundation:
		return "foundation"
	case FreeCell:
		return "freecell"
	case Reserve:
		return "reserve"
	}
	return "unknown"
}

// RuleSet is the capability contract a solitaire variant must satisfy.
// The engine drives every state transition through it and never encodes
// variant knowledge itself.
type RuleSet interface {
	// Name returns the variant identifier, e.g. "klondike".
	Name() string

	// Deal distributes a shuffled deck into the variant's named piles.
	// Undealt cards are left for the caller to place into the stock.
	Deal(deck []card.Card) map[string]*pile.Pile

	// PileType classifies a pile name. Pure; unknown names classify as
	// Unknown.
	PileType(name string) PileType

	// CanDraw reports whether a draw (or a recycle followed by a draw)
	// is currently possible.
	CanDraw(s *State) bool

	// DrawCount is how many cards a single draw moves from stock to
	// waste.
	DrawCount() int

	// CanTake reports whether count cards may be lifted off the named
	// pile.
	CanTake(s *State, pileName string, count int) bool

	// CanDrop reports whether the given run may land on the target
	// pile.
	CanDrop(target *pile.Pile, cards []card.Card, s *State) bool

	// CanMove is the composite legality check for a candidate move.
	CanMove(s *State, m *move.Move) bool

	// CheckWin reports whether the state is a won game.
	CheckWin(s *State) bool

	// ScoreMove returns the score delta for a finalized move. prev is
	// the state the move was made from, which is what reveals
	// flipped-card bonuses.
	ScoreMove(s *State, m *move.Move, prev *State) int

	// ScoreDraw returns the score delta for drawing the given cards.
	ScoreDraw(s *State, drawn []card.Card) int

	// ScoreRecycle returns the (usually negative) delta for recycling
	// waste back into stock.
	ScoreRecycle(s *State) int

	// FlippedCards lists the cards that become face-up as a result of
	// the move, given the pre-move state.
	FlippedCards(prev *State, m *move.Move) []move.FlippedCard

	// AvailableMoves enumerates every legal move in the state.
	AvailableMoves(s *State) []*move.Move

	// Hint returns the best available move, or nil if there is none.
	Hint(s *State) *move.Move
}
