package core

import "time"

// Recommendation is one ranked result handed to the presentation layer.
// Ephemeral: produced per request, never persisted.
type Recommendation struct {
	Article *Article
	Score   float64 // 0..1 after clamping
	Reasons []string
}

// Result wraps one recommendation response.
//
// Ordinal increases with every request served by a Recommender instance;
// the presentation layer keeps only the highest ordinal it has seen, which
// guards against a superseded request resolving late.
type Result struct {
	RequestID   string
	Ordinal     uint64
	UserID      string
	Items       []Recommendation
	GeneratedAt time.Time
}
