// Package similarity computes the all-pairs cosine similarity matrix over
// document TF-IDF vectors and each document's most similar neighbors.
package similarity

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// Cosine builds the D x D similarity matrix as a normalized-row matrix
// product rather than a per-pair loop; the multiply is the cost center of
// the whole pipeline.
type Cosine struct{}

// NewCosine creates the similarity stage.
func NewCosine() *Cosine { return &Cosine{} }

func (c *Cosine) Name() string { return "similarity.cosine" }

// Apply normalizes every TF-IDF vector to unit L2 norm and multiplies the
// document matrix by its transpose. A zero-norm vector stays zero, so its
// similarity to every other document is 0; that is valid data, not an
// error.
func (c *Cosine) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	d := len(ds.Docs)
	if d == 0 {
		ds.Sim = nil
		return ds, nil
	}

	v := ds.Vocab.Size()
	if v == 0 {
		// Empty vocabulary: every vector is zero-norm.
		sim := make([][]float64, d)
		for i := range sim {
			sim[i] = make([]float64, d)
		}
		ds.Sim = sim
		return ds, nil
	}

	a := mat.NewDense(d, v, nil)
	for i := range ds.Docs {
		row := a.RawRowView(i)
		copy(row, ds.Docs[i].TFIDF)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}

	var prod mat.Dense
	prod.Mul(a, a.T())

	sim := make([][]float64, d)
	for i := range sim {
		sim[i] = prod.RawRowView(i)
	}
	ds.Sim = sim
	return ds, nil
}
