// Package stats persists per-player, per-variant play statistics in
// SQLite. It is a collaborator of the engine: it consumes events and
// snapshots, and the core never depends on it.
package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player TEXT NOT NULL,
	variant TEXT NOT NULL,
	won INTEGER NOT NULL,
	score INTEGER NOT NULL,
	moves INTEGER NOT NULL,
	duration_seconds INTEGER NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS games_player_variant ON games (player, variant);
`

// GameRecord is one finished (or abandoned) game.
type GameRecord struct {
	Player   string
	Variant  string
	Won      bool
	Score    int
	Moves    int
	Duration time.Duration
}

// PlayerStats aggregates a player's results for one variant.
type PlayerStats struct {
	Player       string
	Variant      string
	Played       int
	Won          int
	TotalScore   int
	BestScore    int
	TotalSeconds int
}

// WinRate is the fraction of played games won, 0..1.
func (ps PlayerStats) WinRate() float64 {
	if ps.Played == 0 {
		return 0
	}
	return float64(ps.Won) / float64(ps.Played)
}

// Store is a SQLite-backed statistics store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the stats database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("stats db path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping stats db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply stats schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordGame inserts one game result.
func (s *Store) RecordGame(ctx context.Context, rec GameRecord) error {
	if rec.Player == "" || rec.Variant == "" {
		return fmt.Errorf("player and variant are required")
	}
	won := 0
	if rec.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (player, variant, won, score, moves, duration_seconds, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Player, rec.Variant, won, rec.Score, rec.Moves,
		int(rec.Duration.Seconds()), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}
	return nil
}

// PlayerStats aggregates one player's results for a variant. A player
// with no recorded games returns zeroed stats, not an error.
func (s *Store) PlayerStats(ctx context.Context, player, variant string) (PlayerStats, error) {
	ps := PlayerStats{Player: player, Variant: variant}
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(score), 0), COALESCE(SUM(duration_seconds), 0)
		 FROM games WHERE player = ? AND variant = ?`,
		player, variant)
	if err := row.Scan(&ps.Played, &ps.Won, &ps.TotalScore,
		&ps.BestScore, &ps.TotalSeconds); err != nil {
		return ps, fmt.Errorf("player stats: %w", err)
	}
	return ps, nil
}

// Leaderboard returns the top players for a variant by best score.
func (s *Store) Leaderboard(ctx context.Context, variant string, limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, COUNT(*), COALESCE(SUM(won), 0), COALESCE(SUM(score), 0),
		        COALESCE(MAX(score), 0), COALESCE(SUM(duration_seconds), 0)
		 FROM games WHERE variant = ?
		 GROUP BY player ORDER BY MAX(score) DESC, player ASC LIMIT ?`,
		variant, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var out []PlayerStats
	for rows.Next() {
		ps := PlayerStats{Variant: variant}
		if err := rows.Scan(&ps.Player, &ps.Played, &ps.Won, &ps.TotalScore,
			&ps.BestScore, &ps.TotalSeconds); err != nil {
			return nil, fmt.Errorf("leaderboard scan: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}
