package ingest

import (
	"context"
	"fmt"
	"regexp"

	"github.com/cognicore/subsim/pkg/subsim/internalerr"
	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Tokenizer splits document text into word tokens at a configurable
// boundary pattern. Token order is preserved for downstream counting.
type Tokenizer struct {
	boundary *regexp.Regexp
}

// NewTokenizer compiles the boundary pattern. An invalid pattern is a
// configuration error reported at pipeline construction.
func NewTokenizer(pattern string) (*Tokenizer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", internalerr.ErrInvalidConfig, pattern, err)
	}
	return &Tokenizer{boundary: re}, nil
}

func (t *Tokenizer) Name() string { return "ingest.tokenize" }

// Apply tokenizes every document body.
func (t *Tokenizer) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	for i := range ds.Docs {
		ds.Docs[i].Tokens = t.Tokenize(ds.Docs[i].Body)
	}
	return ds, nil
}

// Tokenize splits one text, dropping empty fragments.
func (t *Tokenizer) Tokenize(text string) []string {
	parts := t.boundary.Split(text, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
