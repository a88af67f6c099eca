package ingest

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

var urlPattern = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)

// Cleaner normalizes comment text: markup stripped, URLs removed, then
// lowercased. Pure per-record transform with no cross-record state.
type Cleaner struct{}

// NewCleaner creates a cleaner.
func NewCleaner() *Cleaner { return &Cleaner{} }

func (c *Cleaner) Name() string { return "ingest.clean" }

// Apply cleans every comment body in place.
func (c *Cleaner) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	for i := range ds.Comments {
		ds.Comments[i].Body = c.Clean(ds.Comments[i].Body)
	}
	return ds, nil
}

// Clean normalizes a single text body.
func (c *Cleaner) Clean(text string) string {
	text = stripHTML(text)
	text = urlPattern.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}

func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return buf.String()
}
