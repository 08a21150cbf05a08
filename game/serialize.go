package game

import (
	"encoding/json"
	"fmt"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/move"
	"github.com/kosynka/patience/pile"
)

// The wire forms below give State and History a lossless structured
// export, so a collaborator can save a game to a file or send it over a
// connection and reconstruct identical domain objects.

type pileJSON struct {
	Name  string      `json:"name"`
	Cards []card.Card `json:"cards"`
}

type stateJSON struct {
	Piles        []pileJSON `json:"piles"`
	Stock        pileJSON   `json:"stock"`
	Waste        pileJSON   `json:"waste"`
	Score        int        `json:"score"`
	Moves        int        `json:"moves"`
	TimeElapsed  int        `json:"timeElapsed"`
	SelectedPile string     `json:"selectedPile,omitempty"`
}

func pileToJSON(p *pile.Pile) pileJSON {
	return pileJSON{Name: p.Name(), Cards: p.Cards()}
}

func pileFromJSON(pj pileJSON) *pile.Pile {
	return pile.New(pj.Name, pj.Cards...)
}

// MarshalJSON implements json.Marshaler.
func (s *State) MarshalJSON() ([]byte, error) {
	sj := stateJSON{
		Stock:        pileToJSON(s.stock),
		Waste:        pileToJSON(s.waste),
		Score:        s.score,
		Moves:        s.moves,
		TimeElapsed:  s.timeElapsed,
		SelectedPile: s.selectedPile,
	}
	for _, name := range s.NamedPiles() {
		sj.Piles = append(sj.Piles, pileToJSON(s.piles[name]))
	}
	return json.Marshal(sj)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *State) UnmarshalJSON(data []byte) error {
	var sj stateJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	s.piles = make(map[string]*pile.Pile, len(sj.Piles))
	for _, pj := range sj.Piles {
		if pj.Name == StockPile || pj.Name == WastePile {
			return fmt.Errorf("reserved pile name %q in pile list", pj.Name)
		}
		s.piles[pj.Name] = pileFromJSON(pj)
	}
	s.stock = pileFromJSON(sj.Stock)
	s.waste = pileFromJSON(sj.Waste)
	s.score = sj.Score
	s.moves = sj.Moves
	s.timeElapsed = sj.TimeElapsed
	s.selectedPile = sj.SelectedPile
	return nil
}

type historyEntryJSON struct {
	State *State     `json:"state"`
	Move  *move.Move `json:"move,omitempty"`
}

type historyJSON struct {
	Entries []historyEntryJSON `json:"entries"`
	Current int                `json:"current"`
	Limit   int                `json:"limit"`
}

// MarshalJSON implements json.Marshaler.
func (h *History) MarshalJSON() ([]byte, error) {
	hj := historyJSON{Current: h.current, Limit: h.limit}
	for _, e := range h.entries {
		hj.Entries = append(hj.Entries, historyEntryJSON{State: e.state, Move: e.move})
	}
	return json.Marshal(hj)
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *History) UnmarshalJSON(data []byte) error {
	var hj historyJSON
	if err := json.Unmarshal(data, &hj); err != nil {
		return err
	}
	if hj.Current < -1 || hj.Current >= len(hj.Entries) {
		return fmt.Errorf("history cursor %d out of range for %d entries",
			hj.Current, len(hj.Entries))
	}
	h.entries = nil
	for _, ej := range hj.Entries {
		h.entries = append(h.entries, historyEntry{state: ej.State, move: ej.Move})
	}
	h.current = hj.Current
	h.limit = hj.Limit
	if h.limit <= 0 {
		h.limit = DefaultHistoryLimit
	}
	return nil
}
