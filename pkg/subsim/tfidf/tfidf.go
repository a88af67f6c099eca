// Package tfidf turns raw term counts into smoothed TF-IDF weights and
// extracts each document's highest-weighted words.
package tfidf

import (
	"context"
	"math"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Weighter computes inverse-document-frequency weights over the frozen
// vocabulary and multiplies them into every document's term counts.
type Weighter struct{}

// NewWeighter creates a weighter.
func NewWeighter() *Weighter { return &Weighter{} }

func (w *Weighter) Name() string { return "tfidf.weight" }

// Apply fills every document's dense TF-IDF vector.
//
//	idf(t) = ln((N + 1) / (df(t) + 1)) + 1
//
// The smoothing keeps idf(t) > 0 for every term on any corpus, so a term
// present in all documents still carries weight.
func (w *Weighter) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	size := ds.Vocab.Size()
	n := len(ds.Docs)

	df := make([]int, size)
	for _, doc := range ds.Docs {
		for idx, count := range doc.TF {
			if count > 0 {
				df[idx]++
			}
		}
	}

	idf := make([]float64, size)
	for idx := range idf {
		idf[idx] = math.Log(float64(n+1)/float64(df[idx]+1)) + 1
	}

	for i := range ds.Docs {
		vec := make([]float64, size)
		for idx, count := range ds.Docs[i].TF {
			vec[idx] = count * idf[idx]
		}
		ds.Docs[i].TFIDF = vec
	}
	return ds, nil
}
