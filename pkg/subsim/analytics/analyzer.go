// Package analytics aggregates corpus-level statistics from a pipeline
// run, for operator reports rather than scoring.
package analytics

import (
	"math"
	"sort"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Analyzer aggregates document-level token stats.
type Analyzer struct {
	totalDocs    int64
	totalTokens  int64
	tokenDF      map[string]int64
	tokenFreq    map[string]int64
	tokensPerDoc map[string]int64
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		tokenDF:      make(map[string]int64),
		tokenFreq:    make(map[string]int64),
		tokensPerDoc: make(map[string]int64),
	}
}

// Process consumes one document's token sequence.
func (a *Analyzer) Process(subreddit string, tokens []string) {
	a.totalDocs++
	a.totalTokens += int64(len(tokens))
	a.tokensPerDoc[subreddit] = int64(len(tokens))

	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		a.tokenFreq[tok]++
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		a.tokenDF[tok]++
	}
}

// ProcessDataset consumes every document of a finished dataset.
func (a *Analyzer) ProcessDataset(ds *pipeline.Dataset) {
	for _, doc := range ds.Docs {
		a.Process(doc.Subreddit, doc.Tokens)
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalDocs    int64
	TotalTokens  int64
	TokenDF      map[string]int64
	TokenFreq    map[string]int64
	TokensPerDoc map[string]int64
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	copyDF := make(map[string]int64, len(a.tokenDF))
	for tok, count := range a.tokenDF {
		copyDF[tok] = count
	}
	copyFreq := make(map[string]int64, len(a.tokenFreq))
	for tok, count := range a.tokenFreq {
		copyFreq[tok] = count
	}
	copyPerDoc := make(map[string]int64, len(a.tokensPerDoc))
	for sub, count := range a.tokensPerDoc {
		copyPerDoc[sub] = count
	}
	return Stats{
		TotalDocs:    a.totalDocs,
		TotalTokens:  a.totalTokens,
		TokenDF:      copyDF,
		TokenFreq:    copyFreq,
		TokensPerDoc: copyPerDoc,
	}
}

// TokenStat describes one token's corpus-wide footprint.
type TokenStat struct {
	Token     string
	DF        int64
	DFPercent float64
	IDF       float64
}

// TopDF returns the k tokens with the highest document frequency, ties by
// token order. Tokens present in most documents are candidates for the
// stoplist file.
func (s Stats) TopDF(k int) []TokenStat {
	if s.TotalDocs == 0 || k <= 0 {
		return nil
	}

	out := make([]TokenStat, 0, len(s.TokenDF))
	for tok, df := range s.TokenDF {
		out = append(out, TokenStat{
			Token:     tok,
			DF:        df,
			DFPercent: 100 * (float64(df) / float64(s.TotalDocs)),
			IDF:       math.Log(float64(s.TotalDocs) / (1 + float64(df))),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DF != out[j].DF {
			return out[i].DF > out[j].DF
		}
		return out[i].Token < out[j].Token
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}
