package pipeline

import (
	"context"
	"fmt"
)

// Stage is the single transform contract every pipeline step implements:
// it consumes a materialized dataset and produces the next one. Stages are
// a closed set of variants composed by explicit ordering, not inheritance.
type Stage interface {
	Name() string
	Apply(ctx context.Context, ds *Dataset) (*Dataset, error)
}

// Pipeline runs an ordered list of stages. Each stage sees the full output
// of its predecessor; the vocabulary and IDF statistics depend on that
// barrier, so no stage starts early.
type Pipeline struct {
	Stages []Stage
}

// Run executes all stages in order. The first stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context, ds *Dataset) (*Dataset, error) {
	cur := ds
	for _, stage := range p.Stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := stage.Apply(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		cur = next
	}
	return cur, nil
}
