// Package rules contains concrete solitaire variants and the registry
// used to construct them by identifier.
package rules

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/game"
	"github.com/kosynka/patience/move"
	"github.com/kosynka/patience/pile"
)

const (
	foundationSize = 13
	tableauColumns = 7
)

// Klondike implements the classic Klondike (patience) rules: seven
// tableau columns built downward in alternating colors, four
// foundations built upward by suit, stock and waste with a draw count
// of one or three.
type Klondike struct {
	name      string
	drawThree bool
}

// NewKlondike builds a Klondike rule set. drawThree selects the
// three-card draw variant.
func NewKlondike(drawThree bool) *Klondike {
	name := "klondike"
	if drawThree {
		name = "klondike-3"
	}
	return &Klondike{name: name, drawThree: drawThree}
}

// Name returns the variant identifier.
func (k *Klondike) Name() string {
	return k.name
}

// Deal lays out seven tableau columns of 1..7 cards, only the last card
// of each face-up, plus four empty foundations. Undealt cards are left
// in the deck for the caller's stock.
func (k *Klondike) Deal(deck []card.Card) map[string]*pile.Pile {
	piles := make(map[string]*pile.Pile, tableauColumns+card.NumSuits)

	idx := 0
	for col := 0; col < tableauColumns; col++ {
		p := pile.New(game.TableauName(col))
		for row := 0; row <= col; row++ {
			c := deck[idx].FaceDownCard()
			if row == col {
				c = c.FaceUpCard()
			}
			p.Put(c)
			idx++
		}
		piles[p.Name()] = p
	}

	for _, s := range card.Suits {
		name := game.FoundationName(s)
		piles[name] = pile.New(name)
	}
	return piles
}

// PileType classifies a pile name by the Klondike naming convention.
func (k *Klondike) PileType(name string) game.PileType {
	switch {
	case name == game.StockPile:
		return game.Stock
	case name == game.WastePile:
		return game.Waste
	case strings.HasPrefix(name, "tableau_"):
		return game.Tableau
	case strings.HasPrefix(name, "foundation_"):
		return game.Foundation
	}
	return game.Unknown
}

// CanDraw reports whether a draw or a recycle-then-draw is possible.
func (k *Klondike) CanDraw(s *game.State) bool {
	return !s.Stock().IsEmpty() || !s.Waste().IsEmpty()
}

// DrawCount returns 3 for the three-card variant, otherwise 1.
func (k *Klondike) DrawCount() int {
	if k.drawThree {
		return 3
	}
	return 1
}

// CanTake reports whether count cards may be lifted off the named pile.
// Foundations and the stock are never lift sources through this path;
// stock cards leave only via the draw/recycle protocol.
func (k *Klondike) CanTake(s *game.State, pileName string, count int) bool {
	p := s.Pile(pileName)
	if p == nil || count <= 0 {
		return false
	}
	switch k.PileType(pileName) {
	case game.Foundation, game.Stock:
		return false
	case game.Waste:
		return count == 1 && !p.IsEmpty()
	case game.Tableau:
		return count <= p.FaceUpCount()
	}
	return false
}

// CanDrop dispatches to the per-pile-type build rule.
func (k *Klondike) CanDrop(target *pile.Pile, cards []card.Card, s *game.State) bool {
	if target == nil || len(cards) == 0 {
		return false
	}
	switch k.PileType(target.Name()) {
	case game.Tableau:
		return k.canBuildTableau(target, cards)
	case game.Foundation:
		return k.canBuildFoundation(target, cards)
	}
	return false
}

// canBuildTableau: an empty column takes only a King-led run; otherwise
// the run's first card must be the opposite color of, and one rank
// below, the column's top.
func (k *Klondike) canBuildTableau(target *pile.Pile, cards []card.Card) bool {
	first := cards[0]
	top, ok := target.Top()
	if !ok {
		return first.Rank == card.King
	}
	return top.Color() != first.Color() && top.Rank == first.Rank+1
}

// canBuildFoundation: a single card only; an empty foundation takes an
// Ace, a non-full one takes the next rank of its suit.
func (k *Klondike) canBuildFoundation(target *pile.Pile, cards []card.Card) bool {
	if len(cards) != 1 {
		return false
	}
	if target.Size() >= foundationSize {
		return false
	}
	c := cards[0]
	top, ok := target.Top()
	if !ok {
		return c.Rank == card.Ace
	}
	return top.Suit == c.Suit && c.Rank == top.Rank+1
}

// CanMove is the composite legality check: structural validity, then
// CanTake, then CanDrop on the actual lifted run, then the run itself
// must be a legal alternating-color descending sequence.
func (k *Klondike) CanMove(s *game.State, m *move.Move) bool {
	source := s.Pile(m.From())
	target := s.Pile(m.To())
	count := m.CardCount()

	if source == nil || target == nil {
		return false
	}
	if source.IsEmpty() || count > source.Size() {
		return false
	}
	if m.From() == m.To() {
		return false
	}
	if !k.CanTake(s, m.From(), count) {
		return false
	}

	cards := source.Peek(count)
	if !k.CanDrop(target, cards, s) {
		return false
	}
	return k.validSequence(cards)
}

// validSequence checks that a multi-card lift is itself a legal
// descending, alternating-color run.
func (k *Klondike) validSequence(cards []card.Card) bool {
	for i := 0; i < len(cards)-1; i++ {
		cur, next := cards[i], cards[i+1]
		if cur.Color() == next.Color() {
			return false
		}
		if cur.Rank != next.Rank+1 {
			return false
		}
	}
	return true
}

// CheckWin reports whether all four foundations are complete.
func (k *Klondike) CheckWin(s *game.State) bool {
	for _, suit := range card.Suits {
		p := s.Pile(game.FoundationName(suit))
		if p == nil || p.Size() != foundationSize {
			return false
		}
	}
	return true
}

// ScoreMove applies the Klondike scoring table: +10 for landing on a
// foundation, a flat -15 when the source is a foundation (including the
// degenerate foundation-to-foundation move), and +5 per card revealed
// face-up as a side effect.
func (k *Klondike) ScoreMove(s *game.State, m *move.Move, prev *game.State) int {
	score := 0
	switch {
	case k.PileType(m.From()) == game.Foundation:
		score = -15
	case k.PileType(m.To()) == game.Foundation:
		score = 10
	}
	score += 5 * len(k.FlippedCards(prev, m))
	return score
}

// ScoreDraw: drawing is free.
func (k *Klondike) ScoreDraw(s *game.State, drawn []card.Card) int {
	return 0
}

// ScoreRecycle is the penalty for turning the waste back into the
// stock.
func (k *Klondike) ScoreRecycle(s *game.State) int {
	if k.drawThree {
		return -20
	}
	return -10
}

// FlippedCards returns the card newly exposed at the top of a tableau
// source, if lifting the move's run uncovers a face-down card.
func (k *Klondike) FlippedCards(prev *game.State, m *move.Move) []move.FlippedCard {
	if k.PileType(m.From()) != game.Tableau {
		return nil
	}
	source := prev.Pile(m.From())
	if source == nil {
		return nil
	}
	exposed := source.Size() - m.CardCount() - 1
	if exposed < 0 {
		return nil
	}
	if c, ok := source.At(exposed); ok && !c.FaceUp {
		return []move.FlippedCard{{Pile: m.From(), Index: exposed}}
	}
	return nil
}

// AvailableMoves enumerates every legal move: every liftable run length
// from every tableau column, the waste top, and each foundation top,
// against every tableau and foundation destination. Results are
// deduplicated by (from, to, count).
func (k *Klondike) AvailableMoves(s *game.State) []*move.Move {
	var targets []string
	for col := 0; col < tableauColumns; col++ {
		targets = append(targets, game.TableauName(col))
	}
	for _, suit := range card.Suits {
		targets = append(targets, game.FoundationName(suit))
	}

	type lift struct {
		from  string
		count int
	}
	var lifts []lift
	for col := 0; col < tableauColumns; col++ {
		name := game.TableauName(col)
		p := s.Pile(name)
		if p == nil {
			continue
		}
		for n := 1; n <= p.FaceUpCount(); n++ {
			lifts = append(lifts, lift{from: name, count: n})
		}
	}
	if !s.Waste().IsEmpty() {
		lifts = append(lifts, lift{from: game.WastePile, count: 1})
	}
	for _, suit := range card.Suits {
		name := game.FoundationName(suit)
		if p := s.Pile(name); p != nil && !p.IsEmpty() {
			lifts = append(lifts, lift{from: name, count: 1})
		}
	}

	var moves []*move.Move
	for _, l := range lifts {
		for _, to := range targets {
			if to == l.from {
				continue
			}
			if !k.CanMove(s, move.NewCandidate(l.from, to, l.count)) {
				continue
			}
			source := s.Pile(l.from)
			cards := source.Peek(l.count)
			moves = append(moves, move.New(
				l.from, to, cards, source.Size()-l.count, nil, 0))
		}
	}

	return lo.UniqBy(moves, func(m *move.Move) lift {
		return lift{from: m.From() + "→" + m.To(), count: m.CardCount()}
	})
}

// Hint returns the best available move: foundation-bound moves first,
// then moves from the waste, then the remaining tableau moves.
func (k *Klondike) Hint(s *game.State) *move.Move {
	moves := k.AvailableMoves(s)
	if len(moves) == 0 {
		return nil
	}
	if m, ok := lo.Find(moves, func(m *move.Move) bool {
		return k.PileType(m.To()) == game.Foundation
	}); ok {
		return m
	}
	if m, ok := lo.Find(moves, func(m *move.Move) bool {
		return m.From() == game.WastePile
	}); ok {
		return m
	}
	return moves[0]
}
