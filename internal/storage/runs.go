package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RunRecord is one finished game of Snake & Monsters.
type RunRecord struct {
	ID          int64
	RunID       string
	GameID      string
	Outcome     string // "won", "lost" or "abandoned"
	Score       int
	Contacts    int
	ElapsedSecs int
	Length      int
	Seed        int64
	CreatedAt   time.Time
}

// RunStats aggregates the run history of a game.
type RunStats struct {
	GameID        string
	Runs          int
	Wins          int
	Losses        int
	BestScore     int
	TotalContacts int
	AvgElapsed    float64
	LastPlayed    time.Time
}

// SaveRun records a finished run. RunID must be unique.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, outcome, score, contacts, elapsed_secs, length, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Outcome, r.Score, r.Contacts, r.ElapsedSecs, r.Length, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, run_id, game_id, outcome, score, contacts, elapsed_secs, length, seed, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(
		&r.ID, &r.RunID, &r.GameID, &r.Outcome, &r.Score,
		&r.Contacts, &r.ElapsedSecs, &r.Length, &r.Seed, &createdAt,
	)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// RunByID returns the run with the given run ID, or nil if there is none.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns returns the latest runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunStats aggregates every recorded run of a game.
func (s *Store) RunStats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(contacts), 0),
		        COALESCE(AVG(elapsed_secs), 0),
		        MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Wins, &stats.Losses, &stats.BestScore,
		&stats.TotalContacts, &stats.AvgElapsed, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
