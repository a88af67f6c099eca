// Package vocab selects the bounded corpus vocabulary and produces raw
// term-count vectors indexed into it.
package vocab

import (
	"context"
	"sort"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Builder scans the full corpus once, picks the top VocabSize terms by
// corpus-wide frequency subject to a minimum document frequency, and then
// vectorizes every document against the frozen vocabulary. Tokens outside
// the vocabulary are ignored.
type Builder struct {
	VocabSize int

	// MinDF >= 1.0 is an absolute document count; values in (0, 1) are a
	// fraction of the total document count.
	MinDF float64
}

// NewBuilder creates a vocabulary builder.
func NewBuilder(vocabSize int, minDF float64) *Builder {
	return &Builder{VocabSize: vocabSize, MinDF: minDF}
}

func (b *Builder) Name() string { return "vocab.build" }

// Apply freezes the vocabulary and fills every document's sparse count
// vector. Frequency ties resolve by lexicographic term order so index
// assignment is reproducible.
func (b *Builder) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	freq := make(map[string]int64)
	df := make(map[string]int)
	for _, doc := range ds.Docs {
		seen := make(map[string]struct{})
		for _, tok := range doc.Tokens {
			freq[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	minDF := b.MinDF
	if minDF < 1 {
		minDF *= float64(len(ds.Docs))
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		if float64(df[term]) >= minDF {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > b.VocabSize {
		terms = terms[:b.VocabSize]
	}

	ds.Vocab = pipeline.NewVocabulary(terms)

	for i := range ds.Docs {
		tf := make(map[int]float64)
		for _, tok := range ds.Docs[i].Tokens {
			if idx, ok := ds.Vocab.Index(tok); ok {
				tf[idx]++
			}
		}
		ds.Docs[i].TF = tf
	}
	return ds, nil
}
