// Package rank holds the content-based scoring engine: five weighted
// factors, a locale bonus and contextual multipliers, producing a 0..1
// relevance score plus display reasons per article.
package rank

import (
	"context"
	"math"
	"time"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/pipeline"
)

// Weights are the five factor weights. They sum to 1.0; the locale bonus
// and context multipliers apply on top, which is why the raw score can
// exceed 1 before the final clamp.
type Weights struct {
	Category    float64
	ReadingTime float64
	Recency     float64
	Popularity  float64
	Similarity  float64
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{
		Category:    0.30,
		ReadingTime: 0.20,
		Recency:     0.20,
		Popularity:  0.15,
		Similarity:  0.15,
	}
}

const (
	// categoryFloor keeps untried categories discoverable.
	categoryFloor = 0.1

	// defaultReadingMinutes guards the reading-time ratio when the user
	// has no viewing history.
	defaultReadingMinutes = 5.0

	// recencyWindowDays is the linear decay window; older articles floor
	// at recencyFloor instead of vanishing.
	recencyWindowDays = 30.0
	recencyFloor      = 0.1

	// popularityNorm is a fixed normalization constant, an explicit
	// simplification rather than a percentile rank.
	popularityNorm = 1000.0

	// localeBonusMax caps the additive locale bonus.
	localeBonusMax = 0.2

	// Context multipliers. Both can apply together.
	peakHourFactor = 1.10
	seasonFactor   = 1.15
	peakHourWindow = 2
)

// ScoreNode is the rank stage: it scores every incoming item against the
// profile carried by the RecommendContext.
type ScoreNode struct {
	Weights  Weights
	Catalog  core.Catalog
	Behavior *behavior.Store

	// Now is a test hook; defaults to time.Now.
	Now func() time.Time

	similarity *similarityCache
}

// NewScoreNode builds the scoring node with default weights.
func NewScoreNode(catalog core.Catalog, b *behavior.Store) *ScoreNode {
	return &ScoreNode{
		Weights:    DefaultWeights(),
		Catalog:    catalog,
		Behavior:   b,
		similarity: newSimilarityCache(),
	}
}

func (n *ScoreNode) Name() string        { return "rank.score" }
func (n *ScoreNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ScoreNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	// A nil context or profile is a cold start: neutral defaults, and
	// score() skips the context multipliers.
	var profile *core.UserProfile
	if rctx != nil {
		profile = rctx.User
	}
	if profile == nil {
		var userID string
		if rctx != nil {
			userID = rctx.UserID
		}
		profile = core.NewUserProfile(userID)
	}

	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	for _, it := range items {
		if it.Article == nil {
			continue
		}
		score, parts := n.score(ctx, it.Article, profile, rctx, now)
		it.Score = score
		it.Reasons = reasons(profile, parts, score)
		it.PutLabel("rank_model", core.Label{Value: "content", Source: "rank"})
	}
	return items, nil
}

// factorScores are the sub-scores kept around for reasons generation.
type factorScores struct {
	category    float64
	readingTime float64
	recency     float64
	popularity  float64
	similarity  float64
	locale      bool // article counted as locale content
}

func (n *ScoreNode) score(
	ctx context.Context,
	a *core.Article,
	profile *core.UserProfile,
	rctx *core.RecommendContext,
	now time.Time,
) (float64, factorScores) {
	parts := factorScores{
		category:    CategoryScore(profile, a.Category),
		readingTime: ReadingTimeScore(float64(a.ReadingTime), profile.ReadingPatterns.AvgReadingTime),
		recency:     RecencyScore(a.AgeDays(now)),
		popularity:  PopularityScore(a),
		similarity:  n.similarityScore(ctx, a, profile),
		locale:      core.IsLocaleArticle(a),
	}

	w := n.Weights
	score := parts.category*w.Category +
		parts.readingTime*w.ReadingTime +
		parts.recency*w.Recency +
		parts.popularity*w.Popularity +
		parts.similarity*w.Similarity

	// Additive locale bonus, outside the five weights.
	if parts.locale {
		score += profile.LocaleAffinity * localeBonusMax
	}

	// Contextual multipliers; compounding when both match.
	if rctx != nil {
		if profile.TimePreferences.PeakHour >= 0 &&
			absInt(rctx.Hour-profile.TimePreferences.PeakHour) <= peakHourWindow {
			score *= peakHourFactor
		}
		if MatchesSeason(rctx.Season, a.Title) {
			score *= seasonFactor
		}
	}

	return clamp01(score), parts
}

// CategoryScore is the profile's normalized weight for the category,
// floored so untried categories are never zero-ranked.
func CategoryScore(profile *core.UserProfile, category string) float64 {
	if w := profile.CategoryWeight(category); w > categoryFloor {
		return w
	}
	return categoryFloor
}

// ReadingTimeScore is a symmetric ratio: 1.0 when the article length
// matches the user's average, approaching 0 as they diverge.
func ReadingTimeScore(articleMinutes, userAvgMinutes float64) float64 {
	if userAvgMinutes <= 0 {
		userAvgMinutes = defaultReadingMinutes
	}
	if articleMinutes <= 0 {
		articleMinutes = defaultReadingMinutes
	}
	return math.Min(articleMinutes, userAvgMinutes) / math.Max(articleMinutes, userAvgMinutes)
}

// RecencyScore decays linearly over 30 days and floors at 0.1: old content
// stays discoverable, just deprioritized.
func RecencyScore(ageDays float64) float64 {
	score := 1 - ageDays/recencyWindowDays
	if score < recencyFloor {
		return recencyFloor
	}
	if score > 1 {
		return 1
	}
	return score
}

// PopularityScore normalizes engagement counters against a fixed constant.
func PopularityScore(a *core.Article) float64 {
	raw := (float64(a.Likes)*2 + float64(a.Comments)*3 + float64(a.Views)*0.1) / popularityNorm
	if raw > 1 {
		return 1
	}
	return raw
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
