package recall

import (
	"context"

	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

// Trending reads the most-viewed article ids from a sorted set maintained
// by the behavior store and resolves them through the catalog. Backs the
// "most read" widgets.
//
// Best-effort throughout: no KV backend, an empty counter set or ids that
// no longer resolve all shrink the result instead of failing it.
type Trending struct {
	Store   core.Store
	Catalog core.Catalog

	// Key is the sorted-set key; defaults to the behavior store's global
	// counter, "trending:articles". Use the per-category prefix for
	// section widgets.
	Key string

	// TopK bounds the result; default 10.
	TopK int
}

func (s *Trending) Name() string        { return "recall.trending" }
func (s *Trending) Kind() pipeline.Kind { return pipeline.KindRecall }

func (s *Trending) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return s.Recall(ctx, rctx)
}

func (s *Trending) Recall(ctx context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	kv, ok := s.Store.(core.KeyValueStore)
	if !ok || s.Catalog == nil {
		return nil, nil
	}

	key := s.Key
	if key == "" {
		key = "trending:articles"
	}
	topK := s.TopK
	if topK <= 0 {
		topK = 10
	}

	ids, err := kv.ZRange(ctx, key, 0, int64(topK)-1)
	if err != nil {
		return nil, nil
	}

	out := make([]*core.Item, 0, len(ids))
	for _, id := range ids {
		a, ok := s.Catalog.Get(ctx, id)
		if !ok {
			continue
		}
		it := core.NewArticleItem(a)
		it.PutLabel("recall_source", core.Label{Value: "trending", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
