package tfidf

import (
	"context"
	"math"
	"testing"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

const tolerance = 1e-9

func vectorized(vocabTerms []string, tfs ...map[int]float64) *pipeline.Dataset {
	ds := &pipeline.Dataset{Vocab: pipeline.NewVocabulary(vocabTerms)}
	for i, tf := range tfs {
		ds.Docs = append(ds.Docs, pipeline.Document{
			Subreddit: string(rune('a' + i)),
			TF:        tf,
		})
	}
	return ds
}

func TestWeighterSmoothedIDF(t *testing.T) {
	// Two docs, term 0 in both, term 1 in one.
	ds := vectorized([]string{"both", "one"},
		map[int]float64{0: 2, 1: 1},
		map[int]float64{0: 1},
	)

	out, err := NewWeighter().Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// idf(both) = ln(3/3) + 1 = 1; idf(one) = ln(3/2) + 1
	idfBoth := 1.0
	idfOne := math.Log(3.0/2.0) + 1

	if got := out.Docs[0].TFIDF[0]; math.Abs(got-2*idfBoth) > tolerance {
		t.Errorf("tfidf(both, doc0) = %v, want %v", got, 2*idfBoth)
	}
	if got := out.Docs[0].TFIDF[1]; math.Abs(got-1*idfOne) > tolerance {
		t.Errorf("tfidf(one, doc0) = %v, want %v", got, idfOne)
	}
	if got := out.Docs[1].TFIDF[1]; got != 0 {
		t.Errorf("Absent term should have explicit zero, got %v", got)
	}
}

func TestWeighterIDFAlwaysPositive(t *testing.T) {
	// A term present in every document still gets idf > 0.
	ds := vectorized([]string{"ubiquitous"},
		map[int]float64{0: 1},
		map[int]float64{0: 5},
		map[int]float64{0: 2},
	)

	out, err := NewWeighter().Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for i, doc := range out.Docs {
		if doc.TFIDF[0] <= 0 {
			t.Errorf("Doc %d: tfidf should stay positive for present terms, got %v", i, doc.TFIDF[0])
		}
	}
}

func TestWeighterDenseOutput(t *testing.T) {
	ds := vectorized([]string{"a", "b", "c"},
		map[int]float64{1: 4},
	)

	out, err := NewWeighter().Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(out.Docs[0].TFIDF) != 3 {
		t.Fatalf("Expected dense vector over vocabulary size 3, got length %d", len(out.Docs[0].TFIDF))
	}
	if out.Docs[0].TFIDF[0] != 0 || out.Docs[0].TFIDF[2] != 0 {
		t.Error("Zero entries must be explicit in the dense vector")
	}
}

func TestWeighterEmptyVocabulary(t *testing.T) {
	ds := vectorized(nil, map[int]float64{})

	out, err := NewWeighter().Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Empty vocabulary should not error: %v", err)
	}
	if len(out.Docs[0].TFIDF) != 0 {
		t.Errorf("Expected empty vector, got %v", out.Docs[0].TFIDF)
	}
}
