// Package subsim computes TF-IDF word importance and subreddit-to-subreddit
// cosine similarity over a corpus of reddit comments grouped by subreddit.
package subsim

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/subsim/pkg/subsim/config"
	"github.com/cognicore/subsim/pkg/subsim/ingest"
	"github.com/cognicore/subsim/pkg/subsim/pipeline"
	"github.com/cognicore/subsim/pkg/subsim/similarity"
	"github.com/cognicore/subsim/pkg/subsim/store"
	"github.com/cognicore/subsim/pkg/subsim/tfidf"
	"github.com/cognicore/subsim/pkg/subsim/vocab"
)

// Options configures an Engine instance
type Options struct {
	// Store receives results; nil skips persistence.
	Store store.Store

	Params config.Params

	// Stopwords extends the built-in English stopword list.
	Stopwords []string
}

// Engine is the pipeline facade: it validates configuration once, builds
// the ordered stage list per run, and persists results.
type Engine struct {
	store   store.Store
	params  config.Params
	stages  []pipeline.Stage
	entropy *ulid.MonotonicEntropy
}

// New creates an Engine. Configuration errors surface here, before any
// data pass.
func New(opts Options) (*Engine, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}

	stages, err := buildStages(opts.Params, opts.Stopwords)
	if err != nil {
		return nil, err
	}

	return &Engine{
		store:   opts.Store,
		params:  opts.Params,
		stages:  stages,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close cleanly shuts down the engine.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

func buildStages(p config.Params, stops []string) ([]pipeline.Stage, error) {
	tokenizer, err := ingest.NewTokenizer(p.Pattern)
	if err != nil {
		return nil, err
	}
	topWords, err := tfidf.NewTopWordsExtractor(p.NWords)
	if err != nil {
		return nil, err
	}
	topSimilar, err := similarity.NewTopSimilar(p.NSubreddits)
	if err != nil {
		return nil, err
	}

	return []pipeline.Stage{
		ingest.NewExtractor(p.KeyField, p.TextField),
		ingest.NewCleaner(),
		ingest.NewFilterer(p.MinLength),
		tokenizer,
		ingest.NewStopwordRemover(stops),
		vocab.NewBuilder(p.VocabSize, p.MinDF),
		tfidf.NewWeighter(),
		topWords,
		similarity.NewCosine(),
		topSimilar,
	}, nil
}

// Summary describes a finished run.
type Summary struct {
	RunID         string
	Destination   string
	Records       int
	Documents     int
	DroppedGroups int
	VocabSize     int
}

// Run executes the full pipeline over the given raw records and persists
// one result per surviving subreddit, replacing any prior results for the
// destination. Degenerate corpora (no surviving groups, empty vocabulary)
// complete with empty results.
func (e *Engine) Run(ctx context.Context, destination string, records []pipeline.Record) (Summary, error) {
	ds, err := e.Dataset(ctx, records)
	if err != nil {
		return Summary{}, err
	}

	summary, err := e.Save(ctx, destination, ds)
	if err != nil {
		return Summary{}, err
	}
	summary.Records = len(records)
	return summary, nil
}

// Save persists one result per document of a finished dataset, replacing
// any prior results for the destination. A nil store skips persistence
// but still assigns a run ID.
func (e *Engine) Save(ctx context.Context, destination string, ds *pipeline.Dataset) (Summary, error) {
	runID := ulid.MustNew(ulid.Now(), e.entropy).String()
	summary := Summary{
		RunID:         runID,
		Destination:   destination,
		Documents:     len(ds.Docs),
		DroppedGroups: ds.DroppedGroups,
	}
	if ds.Vocab != nil {
		summary.VocabSize = ds.Vocab.Size()
	}

	if e.store == nil {
		return summary, nil
	}

	params, err := json.Marshal(e.params)
	if err != nil {
		return Summary{}, fmt.Errorf("encode params: %w", err)
	}

	results := make([]store.Result, 0, len(ds.Docs))
	for _, doc := range ds.Docs {
		results = append(results, toResult(doc))
	}

	run := store.Run{
		ID:          runID,
		Destination: destination,
		Params:      string(params),
		CreatedAt:   time.Now(),
	}
	if err := e.store.SaveRun(ctx, run, results); err != nil {
		return Summary{}, fmt.Errorf("save run: %w", err)
	}

	return summary, nil
}

// Dataset runs the pipeline without persistence and returns the full
// materialized dataset, for reports and tests.
func (e *Engine) Dataset(ctx context.Context, records []pipeline.Record) (*pipeline.Dataset, error) {
	p := &pipeline.Pipeline{Stages: e.stages}
	return p.Run(ctx, &pipeline.Dataset{Raw: records})
}

func toResult(doc pipeline.Document) store.Result {
	r := store.Result{Subreddit: doc.Subreddit}
	r.TopWords = make([]store.WordScore, len(doc.TopWords))
	for i, ws := range doc.TopWords {
		r.TopWords[i] = store.WordScore{Word: ws.Word, Score: ws.Score}
	}
	r.TopSimilar = make([]store.GroupScore, len(doc.TopSimilar))
	for i, gs := range doc.TopSimilar {
		r.TopSimilar[i] = store.GroupScore{Subreddit: gs.Subreddit, Score: gs.Score}
	}
	return r
}
