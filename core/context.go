package core

import "time"

// Season is the Beninese climate season used for topical boosts.
// Unrecognized values simply yield no seasonal bonus.
type Season string

const (
	SeasonDry       Season = "dry"
	SeasonRainy     Season = "rainy"
	SeasonHarmattan Season = "harmattan"
)

// RecommendContext carries the user and request-time situation through the
// whole pipeline.
type RecommendContext struct {
	UserID string

	// Hour is the local hour of the request, 0..23.
	Hour int

	// Season drives the seasonal topic boost.
	Season Season

	// User is the derived profile, set by the recommendation service
	// before the pipeline runs. Nil means cold start; nodes fall back to
	// neutral defaults.
	User *UserProfile

	// Labels are user-level labels that can drive node behavior.
	Labels map[string]Label

	// Params holds request-scoped extras (query, widget placement, ...).
	Params map[string]any
}

// NewRecommendContext builds a context for userID stamped with the current
// local hour. Season is left empty: no seasonal boost unless the caller
// knows the season.
func NewRecommendContext(userID string) *RecommendContext {
	return &RecommendContext{
		UserID: userID,
		Hour:   time.Now().Hour(),
	}
}

// PutLabel writes a user-level label, merging on key collision.
func (rctx *RecommendContext) PutLabel(key string, lbl Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel reads a user-level label.
func (rctx *RecommendContext) GetLabel(key string) (Label, bool) {
	if rctx.Labels == nil {
		return Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
