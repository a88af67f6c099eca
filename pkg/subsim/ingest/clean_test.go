package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

func TestCleanerLowercases(t *testing.T) {
	c := NewCleaner()
	if got := c.Clean("Go Is GREAT"); got != "go is great" {
		t.Errorf("Expected lowercased text, got %q", got)
	}
}

func TestCleanerStripsMarkup(t *testing.T) {
	c := NewCleaner()

	got := c.Clean(`I <b>really</b> like &amp; recommend this`)
	if strings.Contains(got, "<b>") || strings.Contains(got, "&amp;") {
		t.Errorf("Markup should be stripped, got %q", got)
	}
	if !strings.Contains(got, "really") {
		t.Errorf("Text content should survive stripping, got %q", got)
	}
}

func TestCleanerStripsURLs(t *testing.T) {
	tests := []struct {
		in   string
		gone string
	}{
		{"see https://example.com/page for details", "example.com"},
		{"see HTTP://EXAMPLE.COM too", "example.com"},
		{"or www.example.org instead", "example.org"},
	}

	c := NewCleaner()
	for _, tt := range tests {
		got := c.Clean(tt.in)
		if strings.Contains(got, tt.gone) {
			t.Errorf("Clean(%q) = %q; URL should be removed", tt.in, got)
		}
		if !strings.Contains(got, "see") && !strings.Contains(got, "or") {
			t.Errorf("Clean(%q) = %q; surrounding text should survive", tt.in, got)
		}
	}
}

func TestCleanerPlainTextUnchanged(t *testing.T) {
	c := NewCleaner()
	if got := c.Clean("plain comment text"); got != "plain comment text" {
		t.Errorf("Plain text should pass through, got %q", got)
	}
}

func TestCleanerAppliesPerRecord(t *testing.T) {
	ds := &pipeline.Dataset{
		Comments: []pipeline.Comment{
			{Subreddit: "a", Body: "First COMMENT"},
			{Subreddit: "b", Body: "Second COMMENT"},
		},
	}

	out, err := NewCleaner().Apply(context.Background(), ds)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if out.Comments[0].Body != "first comment" || out.Comments[1].Body != "second comment" {
		t.Errorf("Unexpected cleaned bodies: %+v", out.Comments)
	}
}
