package ingest

import (
	"context"
	"strings"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// defaultStopwords is the built-in English stopword list. Tokens reaching
// this stage are already lowercased by the cleaner.
var defaultStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than",
	"too", "very", "s", "t", "can", "will", "just", "don", "should",
	"now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren",
	"couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn", "ma",
	"mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn", "would", "could", "ought", "i'm", "you're",
	"he's", "she's", "it's", "we're", "they're", "i've", "you've",
	"we've", "they've", "i'd", "you'd", "he'd", "she'd", "we'd",
	"they'd", "i'll", "you'll", "he'll", "she'll", "we'll", "they'll",
	"let's", "that's", "who's", "what's", "here's", "there's",
	"when's", "where's", "why's", "how's",
}

// DefaultStopwords returns a copy of the built-in English stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// StopwordRemover filters a fixed stopword set out of every document's
// token sequence.
type StopwordRemover struct {
	stopwords map[string]struct{}
}

// NewStopwordRemover creates a remover over the default English list plus
// any extra words. Comparison is case-insensitive.
func NewStopwordRemover(extra []string) *StopwordRemover {
	stops := make(map[string]struct{}, len(defaultStopwords)+len(extra))
	for _, w := range defaultStopwords {
		stops[w] = struct{}{}
	}
	for _, w := range extra {
		if w == "" {
			continue
		}
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &StopwordRemover{stopwords: stops}
}

func (r *StopwordRemover) Name() string { return "ingest.stopwords" }

// Apply removes stopwords from every document.
func (r *StopwordRemover) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	for i := range ds.Docs {
		ds.Docs[i].Tokens = r.Remove(ds.Docs[i].Tokens)
	}
	return ds, nil
}

// Remove filters one token sequence, preserving order.
func (r *StopwordRemover) Remove(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if r.IsStop(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// IsStop checks if a token is a stopword
func (r *StopwordRemover) IsStop(token string) bool {
	_, ok := r.stopwords[strings.ToLower(token)]
	return ok
}
