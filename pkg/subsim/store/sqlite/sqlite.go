package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/subsim/pkg/subsim/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	destination TEXT NOT NULL,
	params TEXT,
	created_at TEXT
);

CREATE TABLE IF NOT EXISTS results (
	destination TEXT NOT NULL,
	subreddit TEXT NOT NULL,
	run_id TEXT NOT NULL,
	top_words TEXT,
	top_similar TEXT,
	PRIMARY KEY (destination, subreddit)
);

CREATE INDEX IF NOT EXISTS idx_results_destination ON results(destination);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts the run record and replaces all results for its
// destination in one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run, results []store.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, destination, params, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Destination, run.Params, run.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE destination = ?`, run.Destination); err != nil {
		return err
	}

	if len(results) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO results (destination, subreddit, run_id, top_words, top_similar)
VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range results {
			words, err := json.Marshal(r.TopWords)
			if err != nil {
				return err
			}
			similar, err := json.Marshal(r.TopSimilar)
			if err != nil {
				return err
			}
			if _, err := stmt.ExecContext(ctx, run.Destination, r.Subreddit, run.ID, string(words), string(similar)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetRun returns a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, destination, params, created_at FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return run, true, nil
}

// ListRuns returns all runs ordered by ID (ULIDs sort chronologically).
func (s *sqliteStore) ListRuns(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, destination, params, created_at FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetResult returns one subreddit's result for a destination.
func (s *sqliteStore) GetResult(ctx context.Context, destination, subreddit string) (store.Result, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT subreddit, top_words, top_similar FROM results
WHERE destination = ? AND subreddit = ?`, destination, subreddit)

	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return store.Result{}, false, nil
	}
	if err != nil {
		return store.Result{}, false, err
	}
	return result, true, nil
}

// ListResults returns all results for a destination ordered by subreddit.
func (s *sqliteStore) ListResults(ctx context.Context, destination string) ([]store.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT subreddit, top_words, top_similar FROM results
WHERE destination = ? ORDER BY subreddit`, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (store.Run, error) {
	var run store.Run
	var createdAt string
	if err := row.Scan(&run.ID, &run.Destination, &run.Params, &createdAt); err != nil {
		return store.Run{}, err
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = ts
	}
	return run, nil
}

func scanResult(row scanner) (store.Result, error) {
	var result store.Result
	var words, similar string
	if err := row.Scan(&result.Subreddit, &words, &similar); err != nil {
		return store.Result{}, err
	}
	if err := json.Unmarshal([]byte(words), &result.TopWords); err != nil {
		return store.Result{}, err
	}
	if err := json.Unmarshal([]byte(similar), &result.TopSimilar); err != nil {
		return store.Result{}, err
	}
	return result, nil
}
