package recall

import (
	"context"

	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

// CatalogSource emits every catalog article as a candidate, in catalog
// order. No article is excluded a priori: already-read pieces stay
// eligible, re-surfacing high-affinity content is intentional. Catalog
// order is also the tie-break order downstream, so it must stay stable.
type CatalogSource struct {
	Catalog core.Catalog
}

func (s *CatalogSource) Name() string        { return "recall.catalog" }
func (s *CatalogSource) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process implements pipeline.Node; the incoming items are ignored.
func (s *CatalogSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return s.Recall(ctx, rctx)
}

// Recall implements Source.
func (s *CatalogSource) Recall(ctx context.Context, _ *core.RecommendContext) ([]*core.Item, error) {
	if s.Catalog == nil {
		return nil, nil
	}
	articles := s.Catalog.Articles(ctx)
	out := make([]*core.Item, 0, len(articles))
	for _, a := range articles {
		it := core.NewArticleItem(a)
		it.PutLabel("recall_source", core.Label{Value: "catalog", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
