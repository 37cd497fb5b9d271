package behavior

import (
	"time"

	"github.com/beninactu/reco/core"
)

// ViewedStat aggregates every view of one article by one user.
//
// Invariants, enforced by UpdateStat:
//   - ViewCount >= 1 once the stat exists
//   - CompletionRate and ScrollDepth are non-decreasing (running maxima)
//   - TotalTimeSpent only accumulates
type ViewedStat struct {
	ArticleID      string    `json:"article_id"`
	Title          string    `json:"title,omitempty"`
	Category       string    `json:"category,omitempty"`
	FirstViewed    time.Time `json:"first_viewed"`
	LastViewed     time.Time `json:"last_viewed"`
	ViewCount      int       `json:"view_count"`
	TotalTimeSpent int       `json:"total_time_spent"` // seconds
	CompletionRate float64   `json:"completion_rate"`  // max observed, 0..1
	ScrollDepth    float64   `json:"scroll_depth"`     // max observed, 0..100
}

// UpdateStat folds one event into a per-article aggregate and reports
// whether the event touches viewing stats at all. Pure: existing is not
// mutated.
//
// Views increment the counter; read_complete, time_spent and scroll only
// refine timing/completion/scroll. A timing event arriving before any view
// still creates the stat (lenient policy), counted as one view.
func UpdateStat(existing *ViewedStat, ev core.Event) (ViewedStat, bool) {
	ar, ok := ev.(core.ArticleRef)
	if !ok || ar.ArticleID() == "" {
		return ViewedStat{}, false
	}

	var stat ViewedStat
	if existing != nil {
		stat = *existing
	}

	switch e := ev.(type) {
	case core.ViewEvent:
		stat.ViewCount++
		stat.TotalTimeSpent += maxInt(e.Duration, 0)
		stat.CompletionRate = maxFloat(stat.CompletionRate, clamp01(e.Completion))
		stat.ScrollDepth = maxFloat(stat.ScrollDepth, clampDepth(e.ScrollDepth))
	case core.ReadCompleteEvent:
		stat.TotalTimeSpent += maxInt(e.Duration, 0)
		stat.CompletionRate = maxFloat(stat.CompletionRate, clamp01(e.Completion))
	case core.TimeSpentEvent:
		stat.TotalTimeSpent += maxInt(e.Duration, 0)
	case core.ScrollEvent:
		stat.ScrollDepth = maxFloat(stat.ScrollDepth, clampDepth(e.Depth))
	default:
		// Likes, comments, shares etc. feed preferences, not viewing
		// stats.
		if existing != nil {
			return *existing, false
		}
		return ViewedStat{}, false
	}

	at := ev.OccurredAt()
	if existing == nil {
		stat.ArticleID = ar.ArticleID()
		stat.FirstViewed = at
	}
	if stat.ViewCount < 1 {
		stat.ViewCount = 1
	}
	stat.LastViewed = at
	if stat.Title == "" {
		stat.Title = ar.ArticleTitle()
	}
	if stat.Category == "" {
		stat.Category = ar.ArticleCategory()
	}
	return stat, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
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

func clampDepth(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
