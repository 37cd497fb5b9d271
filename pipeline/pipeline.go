package pipeline

import (
	"context"

	"github.com/beninactu/reco/core"
)

// Pipeline chains nodes into one recommendation flow:
// recall -> rank -> rule -> rerank.
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
