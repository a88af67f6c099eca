package ingest

import (
	"context"
	"fmt"

	"github.com/cognicore/subsim/pkg/subsim/internalerr"
	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Extractor projects raw records into canonical (subreddit, body) comments.
// It renames and selects fields only; no filtering happens here.
type Extractor struct {
	KeyField  string
	TextField string
}

// NewExtractor creates an extractor reading the given raw field names.
func NewExtractor(keyField, textField string) *Extractor {
	return &Extractor{KeyField: keyField, TextField: textField}
}

func (e *Extractor) Name() string { return "ingest.extract" }

// Apply converts every raw record. A record without the key or text field
// (or with a non-string value) is a schema error and aborts the run.
func (e *Extractor) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	comments := make([]pipeline.Comment, 0, len(ds.Raw))
	for i, rec := range ds.Raw {
		key, err := stringField(rec, e.KeyField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		body, err := stringField(rec, e.TextField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		comments = append(comments, pipeline.Comment{Subreddit: key, Body: body})
	}

	ds.Comments = comments
	ds.Raw = nil
	return ds, nil
}

func stringField(rec pipeline.Record, field string) (string, error) {
	val, ok := rec[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", internalerr.ErrMissingField, field)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", internalerr.ErrMissingField, field)
	}
	return s, nil
}
