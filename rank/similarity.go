package rank

import (
	"context"
	"strings"
	"sync"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
)

const (
	// similarityHistorySize bounds how many well-read articles anchor
	// the similarity signal.
	similarityHistorySize = 10

	// similarityReadThreshold qualifies a viewed article as an anchor.
	similarityReadThreshold = 0.5

	// similarityNeutral is the score for users with no qualifying
	// history.
	similarityNeutral = 0.5
)

// similarityCache memoizes the per-(user, article) similarity: article
// text does not change within a session, and the user's anchor set only
// changes on new views, which recreate the pipeline's profile anyway.
type similarityCache struct {
	mu    sync.Mutex
	cache map[string]float64
}

func newSimilarityCache() *similarityCache {
	return &similarityCache{cache: make(map[string]float64)}
}

func (c *similarityCache) get(userID, articleID string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache[userID+"|"+articleID]
	return v, ok
}

func (c *similarityCache) put(userID, articleID string, score float64) {
	c.mu.Lock()
	c.cache[userID+"|"+articleID] = score
	c.mu.Unlock()
}

// similarityScore is the mean Jaccard similarity between the candidate and
// the user's last well-read articles.
func (n *ScoreNode) similarityScore(ctx context.Context, a *core.Article, profile *core.UserProfile) float64 {
	if n.similarity == nil {
		n.similarity = newSimilarityCache()
	}
	if score, ok := n.similarity.get(profile.UserID, a.ID); ok {
		return score
	}

	anchors := n.anchorTexts(ctx, profile.UserID)
	score := similarityNeutral
	if len(anchors) > 0 {
		candidate := wordSet(a.Title + " " + a.Excerpt)
		var sum float64
		for _, anchor := range anchors {
			sum += jaccard(candidate, wordSet(anchor))
		}
		score = sum / float64(len(anchors))
	}

	n.similarity.put(profile.UserID, a.ID, score)
	return score
}

// anchorTexts returns the text of the last N viewed articles the user read
// past the threshold, resolving through the catalog and falling back to
// the stored title when the article has rotated out.
func (n *ScoreNode) anchorTexts(ctx context.Context, userID string) []string {
	if n.Behavior == nil {
		return nil
	}
	rec := n.Behavior.Record(userID)

	qualifying := make([]behavior.ViewedStat, 0, len(rec.Viewed))
	for _, stat := range rec.Viewed {
		if stat.CompletionRate > similarityReadThreshold {
			qualifying = append(qualifying, stat)
		}
	}
	if len(qualifying) > similarityHistorySize {
		qualifying = qualifying[len(qualifying)-similarityHistorySize:]
	}

	texts := make([]string, 0, len(qualifying))
	for _, stat := range qualifying {
		if n.Catalog != nil {
			if art, ok := n.Catalog.Get(ctx, stat.ArticleID); ok {
				texts = append(texts, art.Title+" "+art.Excerpt)
				continue
			}
		}
		if stat.Title != "" {
			texts = append(texts, stat.Title)
		}
	}
	return texts
}

// jaccard is word-set intersection over union.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	intersection := 0
	for w := range small {
		if _, ok := large[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,;:!?\"'()«»")
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
