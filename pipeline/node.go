package pipeline

import (
	"context"

	"github.com/beninactu/reco/core"
)

// Kind tags a node's stage, for observability and config-driven assembly.
type Kind string

const (
	KindRecall      Kind = "recall"      // produce candidates
	KindRank        Kind = "rank"        // score candidates
	KindRule        Kind = "rule"        // apply editorial rules to scores
	KindReRank      Kind = "rerank"      // reorder/truncate ranked results
	KindPostProcess Kind = "postprocess" // final result decoration
)

// Node is the smallest composable unit of the recommendation flow.
// Every stage takes "items in, items out": recall ignores its input and
// produces candidates, rank mutates scores, rerank reorders or truncates.
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		items []*core.Item,
	) ([]*core.Item, error)
}
