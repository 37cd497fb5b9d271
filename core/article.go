package core

import (
	"context"
	"time"
)

// Article is one unit of catalog content. Read-only inside this core:
// the catalog owns articles, the pipeline only scores them.
type Article struct {
	ID          string
	Title       string
	Excerpt     string
	Category    string
	Tags        []string
	PublishedAt time.Time
	ReadingTime int // estimated minutes

	// Engagement counters maintained by the site, consumed as-is by the
	// popularity sub-score.
	Views    int
	Likes    int
	Comments int

	// LocaleRelevance is how strongly the piece is tied to Benin, 0..1.
	LocaleRelevance float64
}

// AgeDays returns the article age in (fractional) days at the given time.
// Never negative: a future publish date counts as age 0.
func (a *Article) AgeDays(now time.Time) float64 {
	age := now.Sub(a.PublishedAt).Hours() / 24
	if age < 0 {
		return 0
	}
	return age
}

// Catalog supplies the full candidate set at call time. The set is small
// (tens of articles); there is no pagination or streaming contract.
// Articles() order is the tie-break order for equal scores, so
// implementations must keep it stable across calls.
type Catalog interface {
	Articles(ctx context.Context) []*Article
	Get(ctx context.Context, id string) (*Article, bool)
}
