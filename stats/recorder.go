package stats

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kosynka/patience/game"
)

// Recorder subscribes to an engine and records a result row whenever a
// game is won. Close unsubscribes it.
type Recorder struct {
	store  *Store
	player string
	sub    *game.Subscription
}

// NewRecorder attaches a recorder for the given player to the engine.
func NewRecorder(store *Store, engine *game.Engine, player string) *Recorder {
	r := &Recorder{store: store, player: player}
	r.sub = engine.Subscribe(func(event string, data map[string]any) {
		if event != game.EventGameWon {
			return
		}
		s := engine.State()
		rec := GameRecord{
			Player:   player,
			Variant:  engine.Rules().Name(),
			Won:      true,
			Score:    s.Score(),
			Moves:    s.Moves(),
			Duration: time.Duration(s.TimeElapsed()) * time.Second,
		}
		if err := store.RecordGame(context.Background(), rec); err != nil {
			log.Error().Err(err).Str("player", player).Msg("failed to record win")
		}
	})
	return r
}

// Close detaches the recorder from the engine.
func (r *Recorder) Close() {
	r.sub.Unsubscribe()
}
