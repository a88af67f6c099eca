package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/subsim/pkg/subsim/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]store.Run
	results map[string]map[string]store.Result // destination -> subreddit -> result
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs:    make(map[string]store.Run),
		results: make(map[string]map[string]store.Result),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun records the run and replaces all results for its destination.
func (s *Store) SaveRun(ctx context.Context, run store.Run, results []store.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run

	dest := make(map[string]store.Result, len(results))
	for _, r := range results {
		dest[r.Subreddit] = copyResult(r)
	}
	s.results[run.Destination] = dest
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

// ListRuns returns all runs ordered by ID.
func (s *Store) ListRuns(ctx context.Context) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]store.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
	return runs, nil
}

// GetResult returns one subreddit's result for a destination.
func (s *Store) GetResult(ctx context.Context, destination, subreddit string) (store.Result, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if dest, ok := s.results[destination]; ok {
		if r, ok := dest[subreddit]; ok {
			return copyResult(r), true, nil
		}
	}
	return store.Result{}, false, nil
}

// ListResults returns all results for a destination ordered by subreddit.
func (s *Store) ListResults(ctx context.Context, destination string) ([]store.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dest := s.results[destination]
	results := make([]store.Result, 0, len(dest))
	for _, r := range dest {
		results = append(results, copyResult(r))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Subreddit < results[j].Subreddit })
	return results, nil
}

func copyResult(r store.Result) store.Result {
	out := store.Result{Subreddit: r.Subreddit}
	out.TopWords = make([]store.WordScore, len(r.TopWords))
	copy(out.TopWords, r.TopWords)
	out.TopSimilar = make([]store.GroupScore, len(r.TopSimilar))
	copy(out.TopSimilar, r.TopSimilar)
	return out
}
