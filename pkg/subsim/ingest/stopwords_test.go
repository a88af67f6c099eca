package ingest

import (
	"context"
	"reflect"
	"testing"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

func TestStopwordRemoverDefaults(t *testing.T) {
	r := NewStopwordRemover(nil)

	got := r.Remove([]string{"the", "compiler", "is", "fast"})
	want := []string{"compiler", "fast"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Remove = %v, want %v", got, want)
	}
}

func TestStopwordRemoverExtraWords(t *testing.T) {
	r := NewStopwordRemover([]string{"reddit", "Upvote"})

	if !r.IsStop("reddit") {
		t.Error("Extra stopword should be recognized")
	}
	if !r.IsStop("upvote") {
		t.Error("Extra stopwords should match case-insensitively")
	}
	if r.IsStop("compiler") {
		t.Error("Non-stopword should not match")
	}
}

func TestStopwordRemoverPreservesOrder(t *testing.T) {
	r := NewStopwordRemover(nil)

	got := r.Remove([]string{"rust", "and", "go", "and", "zig"})
	want := []string{"rust", "go", "zig"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Remove = %v, want %v", got, want)
	}
}

func TestStopwordRemoverApply(t *testing.T) {
	r := NewStopwordRemover(nil)
	ds := &pipeline.Dataset{
		Docs: []pipeline.Document{
			{Subreddit: "golang", Tokens: []string{"i", "love", "generics"}},
		},
	}

	out, err := r.Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !reflect.DeepEqual(out.Docs[0].Tokens, []string{"love", "generics"}) {
		t.Errorf("Unexpected tokens: %v", out.Docs[0].Tokens)
	}
}
