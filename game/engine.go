package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/move"
	"github.com/kosynka/patience/pile"
)

// Engine orchestrates a single solitaire game: it asks the rule set
// whether an intent is legal, computes the resulting state on a copy,
// commits it, records it in history and notifies listeners. Every
// mutating operation is validate-then-copy-then-commit, so a rejected
// operation leaves the prior state and every retained snapshot
// untouched.
//
// An Engine is single-goroutine; a hosting service that needs
// multi-session play gives each session its own Engine.
type Engine struct {
	rules   RuleSet
	state   *State
	history *History

	seed    int64
	started time.Time

	listeners []subscriber
	nextSubID int
}

// NewEngine creates an engine for the given variant rules. The game is
// uninitialized until NewGame is called.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{
		rules:   rules,
		history: NewHistory(DefaultHistoryLimit),
	}
}

// SetHistoryLimit bounds the number of retained snapshots. It takes
// effect on the next NewGame.
func (e *Engine) SetHistoryLimit(limit int) {
	e.history = NewHistory(limit)
}

// Rules returns the active rule set.
func (e *Engine) Rules() RuleSet {
	return e.rules
}

// State returns the current state, or nil before the first NewGame.
// Callers must treat it as read-only; Snapshot returns an owned copy.
func (e *Engine) State() *State {
	return e.state
}

// Snapshot returns an independent copy of the current state, or nil
// before the first NewGame.
func (e *Engine) Snapshot() *State {
	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}

// Active reports whether a game is in progress.
func (e *Engine) Active() bool {
	return e.state != nil
}

// Seed returns the shuffle seed of the current game.
func (e *Engine) Seed() int64 {
	return e.seed
}

// History returns the engine's history manager.
func (e *Engine) History() *History {
	return e.history
}

// NewGame deals a fresh game from a deterministically shuffled deck:
// the same seed always produces the same layout. Pass seed 0 to draw a
// random one.
func (e *Engine) NewGame(seed int64) {
	if seed == 0 {
		seed = card.RandomSeed()
	}
	e.seed = seed
	e.started = time.Now()

	deck := card.ShuffledDeck(seed)
	dealt := e.rules.Deal(deck)

	dealtCount := 0
	for _, p := range dealt {
		dealtCount += p.Size()
	}
	stock := pile.New(StockPile, deck[dealtCount:]...)
	stock.FlipAll(false)

	e.state = NewState(dealt, stock, pile.New(WastePile))
	e.history.Clear()
	e.history.Push(e.state, nil)

	log.Debug().Int64("seed", seed).Str("variant", e.rules.Name()).
		Int("stock", stock.Size()).Msg("new game dealt")
	e.notify(EventGameStarted, map[string]any{"seed": seed})
}

// Restore replaces the current game with a reconstructed snapshot, e.g.
// one a collaborator loaded from a save. History restarts at the
// restored state.
func (e *Engine) Restore(s *State) {
	e.state = s.Copy()
	e.started = time.Now().Add(-time.Duration(s.TimeElapsed()) * time.Second)
	e.history.Clear()
	e.history.Push(e.state, nil)
}

// CanMove reports whether moving count cards between the named piles is
// legal right now. Move succeeds if and only if this returns true at
// the time of the call.
func (e *Engine) CanMove(from, to string, count int) bool {
	if e.state == nil {
		return false
	}
	return e.rules.CanMove(e.state, move.NewCandidate(from, to, count))
}

// Move lifts count cards off the source pile onto the destination. On
// rejection it returns false with no state change. On success the new
// state is committed, pushed to history, and move_made (plus game_won
// if the move finished the game) is emitted.
func (e *Engine) Move(from, to string, count int) bool {
	if e.state == nil {
		return false
	}
	if !e.rules.CanMove(e.state, move.NewCandidate(from, to, count)) {
		return false
	}

	prev := e.state
	next := prev.Copy()

	source := next.Pile(from)
	target := next.Pile(to)
	fromIndex := source.Size() - count
	cards := source.Take(count)
	if cards == nil {
		// CanMove approved a lift the pile cannot satisfy; the
		// validation and execution layers have drifted apart.
		panic(fmt.Sprintf("take of %d from %q failed after validation", count, from))
	}
	target.Add(cards)

	executed := move.New(from, to, cards, fromIndex, nil, 0)
	flipped := e.rules.FlippedCards(prev, executed)
	for _, f := range flipped {
		next.Pile(f.Pile).FlipAt(f.Index)
	}

	delta := e.rules.ScoreMove(next, executed, prev)
	next.AddScore(delta)
	next.IncrementMoves()
	e.touchClock(next)

	final := move.New(from, to, cards, fromIndex, flipped, delta)
	e.commit(next, final)

	log.Debug().Str("from", from).Str("to", to).Int("count", count).
		Int("delta", delta).Msg("move committed")
	e.notify(EventMoveMade, map[string]any{
		"from":  from,
		"to":    to,
		"count": count,
		"score": next.Score(),
	})
	if e.rules.CheckWin(e.state) {
		e.notify(EventGameWon, map[string]any{"score": e.state.Score()})
	}
	return true
}

// Draw moves the variant's draw count from stock to waste, face-up. If
// the stock is exhausted the waste is first recycled back into it
// (face-down, with the recycle penalty applied); drawing then proceeds
// from the recycled stock. Returns false if neither is possible.
func (e *Engine) Draw() bool {
	if e.state == nil || !e.rules.CanDraw(e.state) {
		return false
	}

	if e.state.Stock().IsEmpty() {
		if !e.recycle() {
			return false
		}
	}

	next := e.state.Copy()
	stock := next.Stock()

	count := e.rules.DrawCount()
	if count > stock.Size() {
		count = stock.Size()
	}
	fromIndex := stock.Size() - count
	cards := stock.Take(count)
	if cards == nil {
		panic(fmt.Sprintf("draw of %d failed with %d in stock", count, stock.Size()))
	}
	for i := range cards {
		cards[i] = cards[i].FaceUpCard()
	}
	next.Waste().Add(cards)

	delta := e.rules.ScoreDraw(e.state, cards)
	next.AddScore(delta)
	next.IncrementMoves()
	e.touchClock(next)

	m := move.New(StockPile, WastePile, cards, fromIndex, nil, delta)
	e.commit(next, m)

	log.Debug().Int("count", count).Msg("drew from stock")
	e.notify(EventDraw, map[string]any{"count": count})
	return true
}

// recycle folds the waste back into the stock face-down. It commits and
// records its own snapshot, but does not touch the move counter; the
// enclosing Draw is the single user-visible action.
func (e *Engine) recycle() bool {
	if e.state.Waste().IsEmpty() {
		return false
	}

	next := e.state.Copy()
	waste := next.Waste()

	count := waste.Size()
	cards := waste.Take(count)
	flipped := make([]move.FlippedCard, 0, len(cards))
	for i := range cards {
		if cards[i].FaceUp {
			flipped = append(flipped, move.FlippedCard{Pile: StockPile, Index: i})
		}
		cards[i] = cards[i].FaceDownCard()
	}
	next.Stock().Add(cards)

	delta := e.rules.ScoreRecycle(e.state)
	next.AddScore(delta)
	e.touchClock(next)

	m := move.New(WastePile, StockPile, cards, 0, flipped, delta)
	e.commit(next, m)

	log.Debug().Int("count", count).Int("penalty", delta).Msg("recycled waste into stock")
	e.notify(EventRecycle, map[string]any{"count": count})
	return true
}

// Undo rolls the game back one snapshot. It returns false, emitting
// nothing, if there is nothing to undo.
func (e *Engine) Undo() bool {
	if e.state == nil {
		return false
	}
	prev := e.history.Undo()
	if prev == nil {
		return false
	}
	e.state = prev
	e.notify(EventUndo, map[string]any{
		"canUndo": e.history.CanUndo(),
		"canRedo": e.history.CanRedo(),
	})
	return true
}

// Redo reapplies the next snapshot if an undo left one ahead of the
// cursor. It returns false, emitting nothing, otherwise.
func (e *Engine) Redo() bool {
	if e.state == nil {
		return false
	}
	next := e.history.Redo()
	if next == nil {
		return false
	}
	e.state = next
	e.notify(EventRedo, map[string]any{
		"canUndo": e.history.CanUndo(),
		"canRedo": e.history.CanRedo(),
	})
	return true
}

// CheckWin reports whether the current state is a won game.
func (e *Engine) CheckWin() bool {
	if e.state == nil {
		return false
	}
	return e.rules.CheckWin(e.state)
}

// Hint returns the rule set's best available move, or nil.
func (e *Engine) Hint() *move.Move {
	if e.state == nil {
		return nil
	}
	return e.rules.Hint(e.state)
}

// AvailableMoves enumerates every legal move in the current state.
func (e *Engine) AvailableMoves() []*move.Move {
	if e.state == nil {
		return nil
	}
	return e.rules.AvailableMoves(e.state)
}

func (e *Engine) commit(next *State, m *move.Move) {
	e.state = next
	e.history.Push(next, m)
}

func (e *Engine) touchClock(s *State) {
	s.SetTimeElapsed(int(time.Since(e.started).Seconds()))
}
