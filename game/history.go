package game

import (
	"github.com/rs/zerolog/log"

	"github.com/kosynka/patience/move"
)

// DefaultHistoryLimit bounds how many snapshots a history retains.
const DefaultHistoryLimit = 5000

// historyEntry pairs a snapshot with the move that produced it. The
// initial deal has a nil move.
type historyEntry struct {
	state *State
	move  *move.Move
}

// History is a bounded, append-only log of game snapshots with a cursor,
// supporting undo/redo. Entry 0 is the initial deal and is never
// undoable past. Every state handed in or out is deep-copied so the
// log's internal storage is never aliased by a caller.
type History struct {
	entries []historyEntry
	current int
	limit   int
}

// NewHistory creates a history bounded to limit snapshots. A limit of
// zero or less falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{current: -1, limit: limit}
}

// Push records a snapshot reached via m (nil for the initial deal). Any
// redo branch past the cursor is discarded; if the log exceeds its
// limit the oldest entry is evicted and the cursor adjusted.
func (h *History) Push(s *State, m *move.Move) {
	h.entries = h.entries[:h.current+1]
	h.entries = append(h.entries, historyEntry{state: s.Copy(), move: m})
	h.current++

	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
		h.current--
		log.Debug().Int("limit", h.limit).Msg("history evicted oldest snapshot")
	}
}

// CanUndo reports whether the cursor can move back.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo reports whether the cursor can move forward.
func (h *History) CanRedo() bool {
	return h.current < len(h.entries)-1
}

// Undo steps the cursor back and returns a copy of that snapshot, or
// nil if the cursor is already at the initial deal.
func (h *History) Undo() *State {
	if !h.CanUndo() {
		return nil
	}
	h.current--
	return h.entries[h.current].state.Copy()
}

// Redo steps the cursor forward and returns a copy of that snapshot, or
// nil if the cursor is already at the newest entry.
func (h *History) Redo() *State {
	if !h.CanRedo() {
		return nil
	}
	h.current++
	return h.entries[h.current].state.Copy()
}

// Current returns a copy of the snapshot under the cursor, or nil for
// an empty history.
func (h *History) Current() *State {
	if h.current < 0 {
		return nil
	}
	return h.entries[h.current].state.Copy()
}

// CurrentIndex is the cursor position.
func (h *History) CurrentIndex() int {
	return h.current
}

// Len is the number of retained snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Moves returns the moves behind every snapshot up to and including the
// cursor, oldest first. The initial deal contributes nothing.
func (h *History) Moves() []*move.Move {
	var out []*move.Move
	for i := 0; i <= h.current && i < len(h.entries); i++ {
		if h.entries[i].move != nil {
			out = append(out, h.entries[i].move)
		}
	}
	return out
}

// Clear drops every entry and resets the cursor.
func (h *History) Clear() {
	h.entries = nil
	h.current = -1
}
