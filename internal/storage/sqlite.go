// internal/storage/sqlite.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"go-till-dawn/internal/app"
	"go-till-dawn/internal/defs"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id TEXT PRIMARY KEY,
	hero TEXT NOT NULL,
	weapon TEXT NOT NULL,
	kills INTEGER NOT NULL DEFAULT 0,
	survived_seconds INTEGER NOT NULL DEFAULT 0,
	level INTEGER NOT NULL DEFAULT 1,
	score INTEGER NOT NULL DEFAULT 0,
	won INTEGER NOT NULL DEFAULT 0,
	ended_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS matches_score ON matches (score DESC);
`

// MatchStore keeps the score table in SQLite. It implements app.Recorder.
type MatchStore struct {
	db *sql.DB
}

// Open opens (or creates) the scoreboard at path. Use ":memory:" for a
// throwaway store.
func Open(path string) (*MatchStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// single writer, sqlite does not like concurrent connections
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &MatchStore{db: db}, nil
}

func (s *MatchStore) Close() error {
	return s.db.Close()
}

// SaveMatch inserts the summary, replacing a row with the same ID.
func (s *MatchStore) SaveMatch(ctx context.Context, m app.MatchSummary) error {
	const query = `
	INSERT INTO matches (id, hero, weapon, kills, survived_seconds, level, score, won, ended_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		kills = excluded.kills,
		survived_seconds = excluded.survived_seconds,
		level = excluded.level,
		score = excluded.score,
		won = excluded.won,
		ended_at = excluded.ended_at;
	`
	_, err := s.db.ExecContext(ctx, query,
		m.ID.String(), string(m.Hero), string(m.Weapon),
		m.Kills, m.SurvivedSeconds, m.Level, m.Score, m.Won, m.EndedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save match %s: %w", m.ID, err)
	}
	return nil
}

// TopScores returns up to limit matches, best score first. Ties go to the
// earlier match.
func (s *MatchStore) TopScores(ctx context.Context, limit int) ([]app.MatchSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, hero, weapon, kills, survived_seconds, level, score, won, ended_at
	FROM matches
	ORDER BY score DESC, ended_at ASC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var out []app.MatchSummary
	for rows.Next() {
		var (
			m            app.MatchSummary
			id           string
			hero, weapon string
			endedAt      time.Time
		)
		if err := rows.Scan(&id, &hero, &weapon, &m.Kills, &m.SurvivedSeconds, &m.Level, &m.Score, &m.Won, &endedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if m.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad match id %q: %w", id, err)
		}
		m.Hero = defs.HeroID(hero)
		m.Weapon = defs.WeaponID(weapon)
		m.EndedAt = endedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the number of stored matches.
func (s *MatchStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}
