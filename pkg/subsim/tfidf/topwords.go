package tfidf

import (
	"context"
	"fmt"
	"sort"

	"github.com/cognicore/subsim/pkg/subsim/internalerr"
	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// TopWordsExtractor selects each document's NWords highest-weighted
// (word, score) pairs, resolving vocabulary indices back to strings.
// The vocabulary is read from the dataset, frozen by the vocab stage;
// this stage never mutates it.
type TopWordsExtractor struct {
	NWords int
}

// NewTopWordsExtractor creates the extractor. NWords <= 0 is a
// configuration error signalled at pipeline construction.
func NewTopWordsExtractor(nWords int) (*TopWordsExtractor, error) {
	if nWords <= 0 {
		return nil, fmt.Errorf("%w: nwords must be > 0, got %d", internalerr.ErrInvalidConfig, nWords)
	}
	return &TopWordsExtractor{NWords: nWords}, nil
}

func (e *TopWordsExtractor) Name() string { return "tfidf.topwords" }

// Apply fills every document's top-words result. Ties break toward the
// lower vocabulary index. A document with fewer than NWords non-zero
// entries gets an empty result rather than a padded one.
func (e *TopWordsExtractor) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	for i := range ds.Docs {
		ds.Docs[i].TopWords = e.topWords(ds.Docs[i].TFIDF, ds.Vocab)
	}
	return ds, nil
}

func (e *TopWordsExtractor) topWords(vec []float64, vocab *pipeline.Vocabulary) []pipeline.WordScore {
	var nonzero []int
	for idx, score := range vec {
		if score > 0 {
			nonzero = append(nonzero, idx)
		}
	}
	if len(nonzero) < e.NWords {
		return nil
	}

	sort.Slice(nonzero, func(a, b int) bool {
		if vec[nonzero[a]] != vec[nonzero[b]] {
			return vec[nonzero[a]] > vec[nonzero[b]]
		}
		return nonzero[a] < nonzero[b]
	})

	top := make([]pipeline.WordScore, 0, e.NWords)
	for _, idx := range nonzero[:e.NWords] {
		top = append(top, pipeline.WordScore{Word: vocab.Term(idx), Score: vec[idx]})
	}
	return top
}
