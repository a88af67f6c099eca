package analytics

import (
	"testing"

	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

func TestAnalyzerCounts(t *testing.T) {
	a := NewAnalyzer()
	a.Process("golang", []string{"go", "go", "channel"})
	a.Process("rust", []string{"go", "borrow"})

	stats := a.Snapshot()
	if stats.TotalDocs != 2 {
		t.Errorf("TotalDocs = %d, want 2", stats.TotalDocs)
	}
	if stats.TotalTokens != 5 {
		t.Errorf("TotalTokens = %d, want 5", stats.TotalTokens)
	}
	if stats.TokenDF["go"] != 2 {
		t.Errorf("DF(go) = %d, want 2", stats.TokenDF["go"])
	}
	if stats.TokenFreq["go"] != 3 {
		t.Errorf("Freq(go) = %d, want 3", stats.TokenFreq["go"])
	}
	if stats.TokensPerDoc["golang"] != 3 {
		t.Errorf("TokensPerDoc(golang) = %d, want 3", stats.TokensPerDoc["golang"])
	}
}

func TestAnalyzerTopDF(t *testing.T) {
	a := NewAnalyzer()
	a.Process("a", []string{"everywhere", "common"})
	a.Process("b", []string{"everywhere", "common"})
	a.Process("c", []string{"everywhere", "rare"})

	top := a.Snapshot().TopDF(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(top))
	}
	if top[0].Token != "everywhere" || top[0].DF != 3 {
		t.Errorf("Unexpected first entry: %+v", top[0])
	}
	if top[0].DFPercent != 100 {
		t.Errorf("DFPercent = %v, want 100", top[0].DFPercent)
	}
	if top[1].Token != "common" {
		t.Errorf("Unexpected second entry: %+v", top[1])
	}
}

func TestAnalyzerTopDFTieBreak(t *testing.T) {
	a := NewAnalyzer()
	a.Process("a", []string{"zeta", "alpha"})

	top := a.Snapshot().TopDF(2)
	if top[0].Token != "alpha" || top[1].Token != "zeta" {
		t.Errorf("Equal DF should order by token, got %+v", top)
	}
}

func TestAnalyzerProcessDataset(t *testing.T) {
	ds := &pipeline.Dataset{
		Docs: []pipeline.Document{
			{Subreddit: "golang", Tokens: []string{"go"}},
			{Subreddit: "rust", Tokens: []string{"borrow", "checker"}},
		},
	}

	a := NewAnalyzer()
	a.ProcessDataset(ds)

	stats := a.Snapshot()
	if stats.TotalDocs != 2 || stats.TotalTokens != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestAnalyzerSnapshotIsCopy(t *testing.T) {
	a := NewAnalyzer()
	a.Process("a", []string{"token"})

	stats := a.Snapshot()
	stats.TokenDF["token"] = 99

	if a.Snapshot().TokenDF["token"] != 1 {
		t.Error("Snapshot should not share maps with the analyzer")
	}
}
