package recall

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

// Fanout runs several sources concurrently and merges their results in
// source order with first-wins dedup, so the first source's ordering
// (typically the catalog) stays the stable tie-break order downstream.
type Fanout struct {
	Sources []Source

	// Dedup drops later duplicates by item ID; their labels are merged
	// into the kept item. Default behavior when true.
	Dedup bool

	// Timeout bounds each source individually; 0 means no bound.
	Timeout time.Duration
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	// Each source fills its own slot; merge order is source order, not
	// completion order, keeping results deterministic.
	results := make([][]*core.Item, len(n.Sources))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, src := range n.Sources {
		i, src := i, src
		eg.Go(func() error {
			recallCtx := egCtx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(egCtx, n.Timeout)
				defer cancel()
			}

			items, err := src.Recall(recallCtx, rctx)
			if err != nil {
				// One failed source must not sink the request.
				return nil
			}
			results[i] = items
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return n.merge(results), nil
}

func (n *Fanout) merge(results [][]*core.Item) []*core.Item {
	var total int
	for _, items := range results {
		total += len(items)
	}

	out := make([]*core.Item, 0, total)
	if !n.Dedup {
		for _, items := range results {
			out = append(out, items...)
		}
		return out
	}

	seen := make(map[string]*core.Item, total)
	for _, items := range results {
		for _, it := range items {
			if it == nil {
				continue
			}
			if kept, ok := seen[it.ID]; ok {
				for k, v := range it.Labels {
					kept.PutLabel(k, v)
				}
				continue
			}
			seen[it.ID] = it
			out = append(out, it)
		}
	}
	return out
}
