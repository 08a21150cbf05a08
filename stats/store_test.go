package stats_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosynka/patience/card"
	"github.com/kosynka/patience/game"
	"github.com/kosynka/patience/pile"
	"github.com/kosynka/patience/rules"
	"github.com/kosynka/patience/stats"
)

func openStore(t *testing.T) *stats.Store {
	t.Helper()
	s, err := stats.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := stats.Open("")
	assert.Error(t, err)
}

func TestRecordAndAggregate(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	games := []stats.GameRecord{
		{Player: "ana", Variant: "klondike", Won: true, Score: 120, Moves: 90, Duration: 4 * time.Minute},
		{Player: "ana", Variant: "klondike", Won: false, Score: 35, Moves: 40, Duration: 2 * time.Minute},
		{Player: "ana", Variant: "klondike-3", Won: true, Score: 80, Moves: 100, Duration: 6 * time.Minute},
		{Player: "bo", Variant: "klondike", Won: true, Score: 150, Moves: 85, Duration: 3 * time.Minute},
	}
	for _, g := range games {
		require.NoError(t, s.RecordGame(ctx, g))
	}

	ps, err := s.PlayerStats(ctx, "ana", "klondike")
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Played)
	assert.Equal(t, 1, ps.Won)
	assert.Equal(t, 155, ps.TotalScore)
	assert.Equal(t, 120, ps.BestScore)
	assert.Equal(t, 360, ps.TotalSeconds)
	assert.InDelta(t, 0.5, ps.WinRate(), 1e-9)

	// a variant never played aggregates to zero
	empty, err := s.PlayerStats(ctx, "bo", "klondike-3")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Played)
	assert.Equal(t, 0.0, empty.WinRate())
}

func TestRecordGameValidation(t *testing.T) {
	s := openStore(t)
	err := s.RecordGame(context.Background(), stats.GameRecord{Variant: "klondike"})
	assert.Error(t, err)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.RecordGame(ctx, stats.GameRecord{Player: "ana", Variant: "klondike", Won: true, Score: 120}))
	require.NoError(t, s.RecordGame(ctx, stats.GameRecord{Player: "bo", Variant: "klondike", Won: true, Score: 150}))
	require.NoError(t, s.RecordGame(ctx, stats.GameRecord{Player: "cy", Variant: "klondike-3", Won: true, Score: 999}))

	top, err := s.Leaderboard(ctx, "klondike", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bo", top[0].Player)
	assert.Equal(t, 150, top[0].BestScore)
	assert.Equal(t, "ana", top[1].Player)
}

func TestRecorderRecordsWins(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	engine := game.NewEngine(rules.NewKlondike(false))
	rec := stats.NewRecorder(s, engine, "ana")
	defer rec.Close()

	engine.Restore(nearWinState())
	require.True(t, engine.Move("tableau_0", "foundation_HEARTS", 1))

	ps, err := s.PlayerStats(ctx, "ana", "klondike")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.Played)
	assert.Equal(t, 1, ps.Won)
	assert.Equal(t, engine.State().Score(), ps.BestScore)
}

// nearWinState is one legal move away from a won game: every foundation
// full except hearts, whose king waits on tableau_0.
func nearWinState() *game.State {
	piles := map[string]*pile.Pile{}
	for col := 0; col < 7; col++ {
		name := game.TableauName(col)
		piles[name] = pile.New(name)
	}
	for _, suit := range card.Suits {
		name := game.FoundationName(suit)
		p := pile.New(name)
		topRank := card.King
		if suit == card.Hearts {
			topRank = card.Queen
		}
		for r := card.Ace; r <= topRank; r++ {
			p.Put(card.New(suit, r).FaceUpCard())
		}
		piles[name] = p
	}
	piles["tableau_0"].Put(card.New(card.Hearts, card.King).FaceUpCard())
	return game.NewState(piles, nil, nil)
}
