package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/subsim/internal/reddit"
	"github.com/cognicore/subsim/pkg/subsim"
	"github.com/cognicore/subsim/pkg/subsim/analytics"
	"github.com/cognicore/subsim/pkg/subsim/config"
	"github.com/cognicore/subsim/pkg/subsim/store/sqlite"
)

type statsReport struct {
	TotalDocs    int64         `json:"total_docs"`
	TotalTokens  int64         `json:"total_tokens"`
	UniqueTokens int           `json:"unique_tokens"`
	HighDFTokens []highDFEntry `json:"high_df_tokens"`
}

type highDFEntry struct {
	Token     string  `json:"token"`
	DF        int64   `json:"df"`
	DFPercent float64 `json:"df_percent"`
}

func main() {
	var (
		input       = flag.String("input", "", "Path to JSONL file of reddit comments (required)")
		dbPath      = flag.String("db", "", "Optional: SQLite database for results")
		stoplistCfg = flag.String("stoplist", "", "Optional: YAML stoplist file extending the built-in list")
		minLength   = flag.Int("minlength", config.DefaultMinLength, "Minimum aggregate comment length to keep a subreddit")
		nWords      = flag.Int("nwords", config.DefaultNWords, "Number of most representative words per subreddit")
		nSubreddits = flag.Int("nsubreddits", config.DefaultNSubreddits, "Number of most similar subreddits per subreddit")
		minDF       = flag.Float64("mindf", config.DefaultMinDF, "Minimum document frequency for vocabulary inclusion (>=1 absolute, <1 fraction)")
		vocabSize   = flag.Int("vocabsize", config.DefaultVocabSize, "Maximum vocabulary size")
		pattern     = flag.String("pattern", config.DefaultPattern, "Token boundary regular expression")
		stats       = flag.Bool("stats", false, "Print a corpus statistics report as JSON")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	params := config.Default()
	params.MinLength = *minLength
	params.NWords = *nWords
	params.NSubreddits = *nSubreddits
	params.MinDF = *minDF
	params.VocabSize = *vocabSize
	params.Pattern = *pattern

	ctx := context.Background()

	var extraStops []string
	if *stoplistCfg != "" {
		sl, err := config.LoadStoplist(*stoplistCfg)
		if err != nil {
			log.Fatalf("load stoplist: %v", err)
		}
		extraStops = sl.Terms
	}

	opts := subsim.Options{Params: params, Stopwords: extraStops}
	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		opts.Store = st
	}

	engine, err := subsim.New(opts)
	if err != nil {
		log.Fatalf("configure engine: %v", err)
	}
	defer engine.Close()

	records, err := reddit.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load comments: %v", err)
	}

	ds, err := engine.Dataset(ctx, records)
	if err != nil {
		log.Fatalf("run pipeline: %v", err)
	}

	dest := reddit.Destination(*input)
	summary, err := engine.Save(ctx, dest, ds)
	if err != nil {
		log.Fatalf("save results: %v", err)
	}

	if *stats {
		analyzer := analytics.NewAnalyzer()
		analyzer.ProcessDataset(ds)
		snapshot := analyzer.Snapshot()

		report := statsReport{
			TotalDocs:    snapshot.TotalDocs,
			TotalTokens:  snapshot.TotalTokens,
			UniqueTokens: len(snapshot.TokenDF),
		}
		for _, ts := range snapshot.TopDF(25) {
			report.HighDFTokens = append(report.HighDFTokens, highDFEntry{
				Token:     ts.Token,
				DF:        ts.DF,
				DFPercent: ts.DFPercent,
			})
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("encode stats: %v", err)
		}
		return
	}

	fmt.Printf("run %s: %d comments, %d subreddits kept, %d dropped, vocabulary %d\n",
		summary.RunID, len(records), summary.Documents, summary.DroppedGroups, summary.VocabSize)

	for _, doc := range ds.Docs {
		fmt.Printf("\n%s\n", doc.Subreddit)
		fmt.Println("  top words:")
		for _, ws := range doc.TopWords {
			fmt.Printf("    %-24s %.4f\n", ws.Word, ws.Score)
		}
		fmt.Println("  most similar:")
		for _, gs := range doc.TopSimilar {
			fmt.Printf("    %-24s %.4f\n", gs.Subreddit, gs.Score)
		}
	}
}
