// Package rerank reorders or truncates ranked results.
package rerank

import (
	"context"
	"sort"

	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

// TopN sorts items by descending score (stable, so equal scores keep their
// recall order) and keeps the first N.
//
// N <= 0 keeps everything sorted, without truncation.
type TopN struct {
	N int
}

func (n *TopN) Name() string        { return "rerank.topn" }
func (n *TopN) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if n.N <= 0 || len(items) <= n.N {
		return items, nil
	}
	return items[:n.N], nil
}
