package store

import (
	"context"
	"time"
)

// Store persists pipeline runs and their per-subreddit results.
//
// Overwrite semantics: saving a run replaces every prior result for the
// same destination; run records themselves are kept as history.
type Store interface {
	Close() error

	// Runs
	SaveRun(ctx context.Context, run Run, results []Result) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)

	// Results
	GetResult(ctx context.Context, destination, subreddit string) (Result, bool, error)
	ListResults(ctx context.Context, destination string) ([]Result, error)
}

// Run records one pipeline execution.
type Run struct {
	ID          string
	Destination string
	Params      string // JSON-encoded parameter snapshot
	CreatedAt   time.Time
}

// Result holds one subreddit's outputs.
type Result struct {
	Subreddit  string
	TopWords   []WordScore
	TopSimilar []GroupScore
}

// WordScore is one (word, tf-idf) pair.
type WordScore struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// GroupScore is one (subreddit, similarity) pair.
type GroupScore struct {
	Subreddit string  `json:"subreddit"`
	Score     float64 `json:"score"`
}
