// Package service orchestrates recommendation requests: build or fetch
// the cached profile, run the pipeline over the catalog, rank and cut to
// the requested size.
package service

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
	"github.com/beninactu/reco/profile"
	"github.com/beninactu/reco/rank"
	"github.com/beninactu/reco/recall"
	"github.com/beninactu/reco/rule"
)

// defaultLimit applies when the caller passes limit <= 0.
const defaultLimit = 10

// Recommender is the entry point the presentation layer calls.
//
// Failure semantics: there is none to handle. An empty catalog yields an
// empty result; an unknown user gets a neutral cold-start profile where
// recency, popularity and the locale bonus dominate. Pipeline errors are
// logged and degrade to an empty result, because a widget must never be
// blocked by a recommendation failure.
type Recommender struct {
	catalog  core.Catalog
	behavior *behavior.Store
	profiles *profile.Builder
	pipe     *pipeline.Pipeline
	log      zerolog.Logger
	seq      atomic.Uint64
}

// New assembles a recommender around an existing pipeline.
func New(
	catalog core.Catalog,
	b *behavior.Store,
	profiles *profile.Builder,
	pipe *pipeline.Pipeline,
	log zerolog.Logger,
) *Recommender {
	return &Recommender{
		catalog:  catalog,
		behavior: b,
		profiles: profiles,
		pipe:     pipe,
		log:      log.With().Str("component", "recommender").Logger(),
	}
}

// NewDefault assembles the standard article-feed pipeline: full catalog
// recall into the content scorer, plus optional editorial boosts.
func NewDefault(
	catalog core.Catalog,
	b *behavior.Store,
	log zerolog.Logger,
	boosts []rule.Boost,
) (*Recommender, error) {
	nodes := []pipeline.Node{
		&recall.CatalogSource{Catalog: catalog},
		rank.NewScoreNode(catalog, b),
	}
	if len(boosts) > 0 {
		boostNode, err := rule.NewBoostNode(boosts)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, boostNode)
	}

	return New(
		catalog,
		b,
		profile.NewBuilder(b),
		&pipeline.Pipeline{Nodes: nodes},
		log,
	), nil
}

// Recommend returns the top `limit` articles for the user, ordered by
// descending score with ties broken by catalog order.
func (r *Recommender) Recommend(
	ctx context.Context,
	userID string,
	limit int,
	rctx *core.RecommendContext,
) *core.Result {
	start := time.Now()
	result := &core.Result{
		RequestID:   uuid.NewString(),
		Ordinal:     r.seq.Add(1),
		UserID:      userID,
		GeneratedAt: start,
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	if rctx == nil {
		rctx = core.NewRecommendContext(userID)
	}
	rctx.UserID = userID
	rctx.User = r.profiles.Build(userID)

	items, err := r.pipe.Run(ctx, rctx, nil)
	if err != nil {
		r.log.Error().Err(err).
			Str("request", result.RequestID).
			Str("user", userID).
			Msg("pipeline failed, returning empty result")
		result.Items = []core.Recommendation{}
		return result
	}

	// Stable sort: equal scores keep catalog iteration order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}

	result.Items = make([]core.Recommendation, 0, len(items))
	for _, it := range items {
		if it.Article == nil {
			continue
		}
		result.Items = append(result.Items, core.Recommendation{
			Article: it.Article,
			Score:   it.Score,
			Reasons: it.Reasons,
		})
	}

	r.log.Debug().
		Str("request", result.RequestID).
		Str("user", userID).
		Int("results", len(result.Items)).
		Dur("took", time.Since(start)).
		Msg("recommendations generated")
	return result
}

// MostRead returns the current most-viewed articles, the data behind the
// "most read" widget. Best-effort: without trending counters it returns
// an empty list.
func (r *Recommender) MostRead(ctx context.Context, store core.Store, limit int) []*core.Article {
	src := &recall.Trending{Store: store, Catalog: r.catalog, TopK: limit}
	items, err := src.Recall(ctx, nil)
	if err != nil {
		return nil
	}
	articles := make([]*core.Article, 0, len(items))
	for _, it := range items {
		if it.Article != nil {
			articles = append(articles, it.Article)
		}
	}
	return articles
}
