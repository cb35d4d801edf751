// Package storage provides SQLite-based persistence for finished runs,
// high scores and stage progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID       int64
	Mode     string // registry ID of the mode
	Score    int
	Stage    int     // last stage reached
	Stages   int     // stages entered during the run
	Duration float64 // simulated seconds
	Won      bool
	// CreatedAt is set by the database on insert.
	CreatedAt time.Time
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Score     int
	Stage     int
	CreatedAt time.Time
}

// StageRecord is the best clear of a stage.
type StageRecord struct {
	Stage     int
	BestScore int
	BestTime  float64 // seconds
	Clears    int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			stage INTEGER NOT NULL DEFAULT 1,
			stages INTEGER NOT NULL DEFAULT 1,
			duration_secs REAL NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);

		CREATE TABLE IF NOT EXISTS stage_records (
			stage INTEGER PRIMARY KEY,
			best_score INTEGER NOT NULL,
			best_time REAL NOT NULL,
			clears INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (mode, score, stage, stages, duration_secs, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Mode, run.Score, run.Stage, run.Stages, run.Duration, run.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveScore records a bare score for the given mode.
func (s *Store) SaveScore(mode string, score int) (int64, error) {
	return s.SaveRun(Run{Mode: mode, Score: score, Stage: 1, Stages: 1})
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, stage, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &e.Stage, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRuns retrieves the most recent runs of a mode, or of every mode when
// mode is empty.
func (s *Store) RecentRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, stage, stages, duration_secs, won, created_at
		 FROM runs
		 WHERE ? = '' OR mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.Stage, &r.Stages, &r.Duration, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no runs exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all runs of the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordClear stores a stage clear, keeping the best score and the best
// time independently.
func (s *Store) RecordClear(stage, score int, clearTime float64) error {
	_, err := s.db.Exec(
		`INSERT INTO stage_records (stage, best_score, best_time)
		 VALUES (?, ?, ?)
		 ON CONFLICT(stage) DO UPDATE SET
			best_score = MAX(best_score, excluded.best_score),
			best_time = MIN(best_time, excluded.best_time),
			clears = clears + 1,
			updated_at = CURRENT_TIMESTAMP`,
		stage, score, clearTime,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record clear of stage %d: %w", stage, err)
	}
	return nil
}

// StageRecord returns the record of one stage. ok is false when the stage
// was never cleared.
func (s *Store) StageRecord(stage int) (rec StageRecord, ok bool, err error) {
	var updatedAt any
	err = s.db.QueryRow(
		`SELECT stage, best_score, best_time, clears, updated_at
		 FROM stage_records WHERE stage = ?`,
		stage,
	).Scan(&rec.Stage, &rec.BestScore, &rec.BestTime, &rec.Clears, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StageRecord{}, false, nil
	}
	if err != nil {
		return StageRecord{}, false, fmt.Errorf("storage: cannot query stage %d: %w", stage, err)
	}
	rec.UpdatedAt = parseTime(updatedAt)
	return rec, true, nil
}

// StageRecords returns every cleared stage in stage order.
func (s *Store) StageRecords() ([]StageRecord, error) {
	rows, err := s.db.Query(
		`SELECT stage, best_score, best_time, clears, updated_at
		 FROM stage_records ORDER BY stage`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stage records: %w", err)
	}
	defer rows.Close()

	var recs []StageRecord
	for rows.Next() {
		var r StageRecord
		var updatedAt any
		if err := rows.Scan(&r.Stage, &r.BestScore, &r.BestTime, &r.Clears, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stage record: %w", err)
		}
		r.UpdatedAt = parseTime(updatedAt)
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// UnlockedStage returns the highest stage a player may start from: one past
// the highest stage cleared so far, or 1.
func (s *Store) UnlockedStage() (int, error) {
	var stage sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(stage) FROM stage_records").Scan(&stage); err != nil {
		return 1, fmt.Errorf("storage: cannot query unlocked stage: %w", err)
	}
	if !stage.Valid {
		return 1, nil
	}
	return int(stage.Int64) + 1, nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	BestStage  int
	Wins       int
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(stage), 0), COALESCE(SUM(won), 0), MAX(created_at)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.BestStage, &stats.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllModesStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModesStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), MAX(stage), SUM(won), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all modes stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var ms ModeStats
		var lastPlayed any
		if err := rows.Scan(&ms.Mode, &ms.RunsCount, &ms.HighScore, &ms.AvgScore, &ms.BestStage, &ms.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastPlayed = parseTime(lastPlayed)
		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
