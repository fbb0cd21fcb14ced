// Package persistence provides the SQLite run recorder: a write-only
// reporting sink that keeps the roster and round statistics of each run.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/felixniemeyer/repeer-simulation-B/internal/agents"
	"github.com/felixniemeyer/repeer-simulation-B/internal/game"
	"github.com/felixniemeyer/repeer-simulation-B/internal/report"
)

// Recorder persists one run's reporting stream. It implements
// report.Reporter; there is no load path — recorded runs are output
// artifacts, not resumable state.
type Recorder struct {
	conn  *sqlx.DB
	runID string
}

// Open opens or creates the run database at path and registers a new run
// with the given seed, round count and payoffs.
func Open(path string, seed int64, rounds int, params game.Params) (*Recorder, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	r := &Recorder{conn: conn, runID: uuid.NewString()}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := r.registerRun(seed, rounds, params); err != nil {
		conn.Close()
		return nil, fmt.Errorf("register run: %w", err)
	}
	return r, nil
}

// Close closes the database connection.
func (r *Recorder) Close() error {
	return r.conn.Close()
}

// RunID returns the uuid assigned to this run.
func (r *Recorder) RunID() string {
	return r.runID
}

func (r *Recorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		rounds INTEGER NOT NULL,
		params_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS roster (
		run_id TEXT NOT NULL,
		agent_id INTEGER NOT NULL,
		energy REAL NOT NULL,
		label TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS round_stats (
		run_id TEXT NOT NULL,
		round INTEGER NOT NULL,
		label TEXT NOT NULL,
		count INTEGER NOT NULL,
		mean_energy REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_roster_run ON roster(run_id);
	CREATE INDEX IF NOT EXISTS idx_round_stats_run ON round_stats(run_id, round);
	`
	_, err := r.conn.Exec(schema)
	return err
}

func (r *Recorder) registerRun(seed int64, rounds int, params game.Params) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return err
	}
	_, err = r.conn.Exec(
		`INSERT INTO runs (id, started_at, seed, rounds, params_json) VALUES (?, ?, ?, ?, ?)`,
		r.runID, time.Now().UTC().Format(time.RFC3339), seed, rounds, string(paramsJSON),
	)
	return err
}

// Roster writes the initial agent listing.
func (r *Recorder) Roster(population []*agents.Agent) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(
		`INSERT INTO roster (run_id, agent_id, energy, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range population {
		if _, err := stmt.Exec(r.runID, a.ID, a.Energy, a.Strategy.Label()); err != nil {
			return fmt.Errorf("insert roster agent %d: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// RoundStats appends one round's per-label statistics.
func (r *Recorder) RoundStats(round int, stats []report.StrategyStats) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, st := range stats {
		_, err := tx.Exec(
			`INSERT INTO round_stats (run_id, round, label, count, mean_energy) VALUES (?, ?, ?, ?, ?)`,
			r.runID, round, st.Label, st.Count, st.MeanEnergy,
		)
		if err != nil {
			return fmt.Errorf("insert round %d stats for %q: %w", round, st.Label, err)
		}
	}
	return tx.Commit()
}
