// Package move defines the immutable record describing a single card
// transition. Moves are pure data; they are created per attempted
// transition and only the ones behind successful commits are retained by
// the history manager.
package move

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kosynka/patience/card"
)

// FlippedCard identifies a card that changed orientation as a side
// effect of a move: the pile it sits in and its index from the bottom.
type FlippedCard struct {
	Pile  string `json:"pile"`
	Index int    `json:"index"`
}

// Move describes a completed or attempted transition between two piles.
// It is never mutated after creation.
type Move struct {
	from       string
	to         string
	cards      []card.Card
	fromIndex  int
	flipped    []FlippedCard
	scoreDelta int
	timestamp  time.Time
}

// New creates a finalized move record.
func New(from, to string, cards []card.Card, fromIndex int,
	flipped []FlippedCard, scoreDelta int) *Move {

	return &Move{
		from:       from,
		to:         to,
		cards:      append([]card.Card(nil), cards...),
		fromIndex:  fromIndex,
		flipped:    append([]FlippedCard(nil), flipped...),
		scoreDelta: scoreDelta,
		timestamp:  time.Now(),
	}
}

// NewCandidate creates a move with only the pile names and intended card
// count filled in. It is what the engine hands to the rule set for
// validation before any cards have been lifted.
func NewCandidate(from, to string, count int) *Move {
	return &Move{
		from:      from,
		to:        to,
		cards:     make([]card.Card, count),
		fromIndex: -1,
		timestamp: time.Now(),
	}
}

func (m *Move) From() string { return m.from }
func (m *Move) To() string   { return m.to }

// Cards returns the moved cards in order (deepest first).
func (m *Move) Cards() []card.Card {
	return append([]card.Card(nil), m.cards...)
}

// CardCount returns the number of cards this move lifts.
func (m *Move) CardCount() int {
	return len(m.cards)
}

// IsSingleCard reports whether exactly one card moves.
func (m *Move) IsSingleCard() bool {
	return len(m.cards) == 1
}

// FromIndex is the index (from the bottom of the source pile) the cards
// were taken at, or -1 if not yet resolved.
func (m *Move) FromIndex() int {
	return m.fromIndex
}

// Flipped lists cards whose orientation changed as a side effect.
func (m *Move) Flipped() []FlippedCard {
	return append([]FlippedCard(nil), m.flipped...)
}

// ScoreDelta is the score change this move caused.
func (m *Move) ScoreDelta() int {
	return m.scoreDelta
}

// Timestamp is the move's creation time.
func (m *Move) Timestamp() time.Time {
	return m.timestamp
}

// ShortDescription is a compact rendering for logs and the hint display.
func (m *Move) ShortDescription() string {
	if len(m.cards) == 1 {
		return fmt.Sprintf("%v: %s → %s", m.cards[0], m.from, m.to)
	}
	return fmt.Sprintf("%d cards: %s → %s", len(m.cards), m.from, m.to)
}

func (m *Move) String() string {
	strs := make([]string, len(m.cards))
	for i, c := range m.cards {
		strs[i] = c.String()
	}
	return fmt.Sprintf("<move %s → %s [%s] Δ%d>",
		m.from, m.to, strings.Join(strs, " "), m.scoreDelta)
}

// moveJSON is the wire form of a Move.
type moveJSON struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	Cards      []card.Card   `json:"cards"`
	FromIndex  int           `json:"fromIndex"`
	Flipped    []FlippedCard `json:"flipped,omitempty"`
	ScoreDelta int           `json:"scoreDelta"`
	Timestamp  time.Time     `json:"timestamp"`
}

// MarshalJSON implements json.Marshaler.
func (m *Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(moveJSON{
		From:       m.from,
		To:         m.to,
		Cards:      m.cards,
		FromIndex:  m.fromIndex,
		Flipped:    m.flipped,
		ScoreDelta: m.scoreDelta,
		Timestamp:  m.timestamp,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Move) UnmarshalJSON(data []byte) error {
	var mj moveJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return err
	}
	m.from = mj.From
	m.to = mj.To
	m.cards = mj.Cards
	m.fromIndex = mj.FromIndex
	m.flipped = mj.Flipped
	m.scoreDelta = mj.ScoreDelta
	m.timestamp = mj.Timestamp
	return nil
}
