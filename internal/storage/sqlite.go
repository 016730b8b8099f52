// Package storage keeps the history of finished runs for the scoreboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Progression itself is never persisted; only completed runs are.
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

// DefaultPath is where the CLI keeps the database unless --db says otherwise.
const DefaultPath = "~/.ultrabros/runs.db"

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID             int64
	Outcome        string // "game_over" or "victory"
	Coins          int
	LevelsCleared  int
	BossesDefeated int
	Deaths         int
	World          int // Furthest world reached, 1-based
	Ticks          uint64
	Player         string // "local" or the SSH user name
	CreatedAt      time.Time
}

// Duration converts the run's tick count to wall time at the given rate.
func (r Run) Duration(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(tickRate)
}

// Stats aggregates every stored run.
type Stats struct {
	Runs      int
	Victories int
	BestCoins int
	Bosses    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
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
			outcome TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			levels_cleared INTEGER NOT NULL DEFAULT 0,
			bosses_defeated INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			world INTEGER NOT NULL DEFAULT 1,
			ticks INTEGER NOT NULL DEFAULT 0,
			player TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_coins ON runs(coins DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Outcome == "" {
		return 0, errors.New("storage: cannot save run without an outcome")
	}
	if r.Player == "" {
		r.Player = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (outcome, coins, levels_cleared, bosses_defeated, deaths, world, ticks, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Outcome, r.Coins, r.LevelsCleared, r.BossesDefeated, r.Deaths, r.World,
		int64(r.Ticks), r.Player, //#nosec G115 -- tick counts stay far below 2^63
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

// TopRuns returns the best runs by coins, victories first among equals.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, outcome, coins, levels_cleared, bosses_defeated, deaths, world, ticks, player, created_at
		 FROM runs
		 ORDER BY coins DESC, outcome = 'victory' DESC, ticks ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns returns the most recently saved runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, outcome, coins, levels_cleared, bosses_defeated, deaths, world, ticks, player, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Outcome,
			&r.Coins,
			&r.LevelsCleared,
			&r.BossesDefeated,
			&r.Deaths,
			&r.World,
			&ticks,
			&r.Player,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestCoins returns the highest coin count of any run, or 0 with no runs.
func (s *Store) BestCoins() (int, error) {
	var coins sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(coins) FROM runs").Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot query best coins: %w", err)
	}
	if !coins.Valid {
		return 0, nil
	}
	return int(coins.Int64), nil
}

// Stats aggregates every stored run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'victory'), 0),
		        COALESCE(MAX(coins), 0),
		        COALESCE(SUM(bosses_defeated), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.Victories, &st.BestCoins, &st.Bosses)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
