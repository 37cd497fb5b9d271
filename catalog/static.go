// Package catalog supplies the article set the pipeline scores. The site
// runs on generated mock content, so alongside the static wrapper this
// package ships a deterministic generator of Beninese articles.
package catalog

import (
	"context"

	"github.com/beninactu/reco/core"
)

// Static is an in-memory catalog with a stable article order, which is
// the tie-break order for equal scores.
type Static struct {
	articles []*core.Article
	byID     map[string]*core.Article
}

var _ core.Catalog = (*Static)(nil)

// NewStatic wraps the given articles. The slice order is preserved.
func NewStatic(articles []*core.Article) *Static {
	byID := make(map[string]*core.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	return &Static{articles: articles, byID: byID}
}

func (c *Static) Articles(_ context.Context) []*core.Article {
	return c.articles
}

func (c *Static) Get(_ context.Context, id string) (*core.Article, bool) {
	a, ok := c.byID[id]
	return a, ok
}
