package reddit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.txt")
	content := `{"subreddit":"golang","body":"nice release"}
{"subreddit":"rust","body":"borrow checker"}

not json at all
{"subreddit":"askscience","body":"why"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	records, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL failed: %v", err)
	}
	// Malformed and blank lines are skipped, valid ones kept.
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[0]["subreddit"] != "golang" || records[0]["body"] != "nice release" {
		t.Errorf("Unexpected first record: %v", records[0])
	}
}

func TestLoadFromJSONLEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := LoadFromJSONL(path); err == nil {
		t.Error("Expected error for file without valid records")
	}
}

func TestLoadFromJSONLMissingFile(t *testing.T) {
	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/RC_2015-01.txt", "RC201501"},
		{"comments.txt", "comments"},
		{"reddit_dump", "redditdump"},
		{"/path/to/a-b_c.jsonl", "abc"},
	}
	for _, tt := range tests {
		if got := Destination(tt.in); got != tt.want {
			t.Errorf("Destination(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
