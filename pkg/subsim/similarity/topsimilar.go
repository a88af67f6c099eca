package similarity

import (
	"context"
	"fmt"
	"sort"

	"github.com/cognicore/subsim/pkg/subsim/internalerr"
	"github.com/cognicore/subsim/pkg/subsim/pipeline"
)

// TopSimilar selects, for each document, the NSubreddits other documents
// with the highest cosine similarity. A document never lists itself, and
// ties break by subreddit lexicographic order.
type TopSimilar struct {
	NSubreddits int
}

// NewTopSimilar creates the stage. NSubreddits <= 0 is a configuration
// error signalled at pipeline construction.
func NewTopSimilar(nSubreddits int) (*TopSimilar, error) {
	if nSubreddits <= 0 {
		return nil, fmt.Errorf("%w: nsubreddits must be > 0, got %d", internalerr.ErrInvalidConfig, nSubreddits)
	}
	return &TopSimilar{NSubreddits: nSubreddits}, nil
}

func (t *TopSimilar) Name() string { return "similarity.topk" }

// Apply fills every document's top-similar result. With fewer than
// NSubreddits candidates the result is simply shorter.
func (t *TopSimilar) Apply(_ context.Context, ds *pipeline.Dataset) (*pipeline.Dataset, error) {
	for i := range ds.Docs {
		candidates := make([]int, 0, len(ds.Docs)-1)
		for j := range ds.Docs {
			if j != i {
				candidates = append(candidates, j)
			}
		}

		row := ds.Sim[i]
		sort.Slice(candidates, func(a, b int) bool {
			if row[candidates[a]] != row[candidates[b]] {
				return row[candidates[a]] > row[candidates[b]]
			}
			return ds.Docs[candidates[a]].Subreddit < ds.Docs[candidates[b]].Subreddit
		})
		if len(candidates) > t.NSubreddits {
			candidates = candidates[:t.NSubreddits]
		}

		top := make([]pipeline.GroupScore, 0, len(candidates))
		for _, j := range candidates {
			top = append(top, pipeline.GroupScore{
				Subreddit: ds.Docs[j].Subreddit,
				Score:     row[j],
			})
		}
		ds.Docs[i].TopSimilar = top
	}
	return ds, nil
}
