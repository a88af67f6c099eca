package ingest

import (
	"context"
	"sort"
	"strings"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Filterer gates whole subreddits on aggregate content length and merges
// the survivors' comments into one Document per subreddit. The gate is
// group-level: a short comment in a large subreddit is retained.
type Filterer struct {
	// MinLength is the minimum total body length (bytes of cleaned text,
	// summed over all of a subreddit's comments) to keep the group.
	MinLength int
}

// NewFilterer creates a filterer with the given length threshold.
func NewFilterer(minLength int) *Filterer {
	return &Filterer{MinLength: minLength}
}

func (f *Filterer) Name() string { return "ingest.filter" }

// Apply aggregates comments into documents and drops short groups.
// Documents come out sorted by subreddit so downstream index assignment
// is reproducible regardless of input order.
func (f *Filterer) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	bodies := make(map[string][]string)
	totals := make(map[string]int)
	for _, c := range ds.Comments {
		bodies[c.Subreddit] = append(bodies[c.Subreddit], c.Body)
		totals[c.Subreddit] += len(c.Body)
	}

	keys := make([]string, 0, len(bodies))
	for key := range bodies {
		if totals[key] < f.MinLength {
			ds.DroppedGroups++
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	docs := make([]pipeline.Document, 0, len(keys))
	for _, key := range keys {
		docs = append(docs, pipeline.Document{
			Subreddit: key,
			Body:      strings.Join(bodies[key], " "),
		})
	}

	ds.Docs = docs
	ds.Comments = nil
	return ds, nil
}
