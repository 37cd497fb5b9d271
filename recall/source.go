// Package recall produces candidate items: the full catalog for the main
// feed, trending articles for "most read" surfaces, and a concurrent
// fanout to combine sources.
package recall

import (
	"context"

	"github.com/beninactu/reco/core"
)

// Source generates candidates for one user/request. Sources are
// best-effort: an unavailable backend yields an empty slice, not a failed
// recommendation.
type Source interface {
	Name() string
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
