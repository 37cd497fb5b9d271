// Package profile projects a user's behavior record into the feature
// summary the scoring engine consumes.
//
// Design principles:
//   - Build is pure with respect to the stored behavior at call time
//   - profiles are cached by user id; the cache is invalidated explicitly
//     by the behavior store's OnRecord hook, never by polling
//   - a user with no history gets the documented neutral defaults, not an
//     error
package profile

import (
	"sync"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
)

// interactionWeights is the per-event-type contribution to category
// preference. Unlisted types weigh 1.
var interactionWeights = map[core.EventType]float64{
	core.EventView:         1,
	core.EventLike:         3,
	core.EventComment:      5,
	core.EventShare:        4,
	core.EventBookmark:     4,
	core.EventReadComplete: 2,
}

const defaultCategory = "general"

// completionThreshold is the completion rate above which a viewed article
// counts as "read through" in the reading pattern.
const completionThreshold = 0.8

// Builder derives and caches user profiles.
type Builder struct {
	mu       sync.Mutex
	behavior *behavior.Store
	cache    map[string]*core.UserProfile
}

// NewBuilder wires a builder to the behavior store and registers its cache
// invalidation hook, so a recorded event is always reflected in the next
// Build call.
func NewBuilder(b *behavior.Store) *Builder {
	builder := &Builder{
		behavior: b,
		cache:    make(map[string]*core.UserProfile),
	}
	b.OnRecord(builder.Invalidate)
	return builder
}

// Invalidate drops the cached profile for a user. A stale profile after a
// new interaction is a correctness bug, not a tuning knob.
func (b *Builder) Invalidate(userID string) {
	b.mu.Lock()
	delete(b.cache, userID)
	b.mu.Unlock()
}

// Build returns the user's profile, computing it from the behavior record
// when no cached copy exists.
//
// The lock is held across the rebuild: an Invalidate fired by a concurrent
// recording waits for the build, so it can never be overwritten by the
// profile it was meant to drop.
func (b *Builder) Build(userID string) *core.UserProfile {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.cache[userID]; ok {
		return p
	}
	p := buildFromRecord(userID, b.behavior.Record(userID))
	b.cache[userID] = p
	return p
}

func buildFromRecord(userID string, rec *behavior.UserRecord) *core.UserProfile {
	p := core.NewUserProfile(userID)
	p.LastActivity = rec.LastActivity
	p.InteractionHistory = rec.Interactions

	p.PreferredCategories = preferredCategories(rec.Interactions)
	p.ReadingPatterns = readingPatterns(rec.Viewed)
	p.TimePreferences = timePreferences(rec.Interactions)
	p.LocaleAffinity = localeAffinity(rec.Interactions)
	return p
}

// preferredCategories accumulates weighted category signal and normalizes
// it to sum to 1. No interactions means no signal: an empty map.
func preferredCategories(events []core.Event) map[string]float64 {
	weights := make(map[string]float64)
	var total float64

	for _, ev := range events {
		category := defaultCategory
		if ar, ok := ev.(core.ArticleRef); ok && ar.ArticleCategory() != "" {
			category = ar.ArticleCategory()
		}
		w, ok := interactionWeights[ev.Type()]
		if !ok {
			w = 1
		}
		weights[category] += w
		total += w
	}

	if total == 0 {
		return map[string]float64{}
	}
	for c := range weights {
		weights[c] /= total
	}
	return weights
}

func readingPatterns(viewed []behavior.ViewedStat) core.ReadingPatterns {
	if len(viewed) == 0 {
		return core.ReadingPatterns{}
	}

	var totalSeconds, completed int
	for _, stat := range viewed {
		totalSeconds += stat.TotalTimeSpent
		if stat.CompletionRate > completionThreshold {
			completed++
		}
	}
	return core.ReadingPatterns{
		// Stats accumulate seconds; the profile speaks minutes so the
		// value is directly comparable to Article.ReadingTime.
		AvgReadingTime: float64(totalSeconds) / float64(len(viewed)) / 60,
		CompletionRate: float64(completed) / float64(len(viewed)),
	}
}

// timePreferences buckets interaction timestamps by hour of day and takes
// the mode. Morning/evening flags derive independently from the peak.
func timePreferences(events []core.Event) core.TimePreferences {
	if len(events) == 0 {
		return core.TimePreferences{PeakHour: -1}
	}

	var buckets [24]int
	for _, ev := range events {
		buckets[ev.OccurredAt().Hour()]++
	}
	peak := 0
	for h := 1; h < 24; h++ {
		if buckets[h] > buckets[peak] {
			peak = h
		}
	}
	return core.TimePreferences{
		PeakHour:        peak,
		IsMorningPerson: peak >= 6 && peak <= 12,
		IsEveningPerson: peak >= 18 && peak <= 23,
	}
}

// localeAffinity is the fraction of interactions mentioning a Beninese
// keyword. No history yields the neutral prior 0.5, not zero.
func localeAffinity(events []core.Event) float64 {
	if len(events) == 0 {
		return 0.5
	}

	local := 0
	for _, ev := range events {
		if core.ContainsLocaleKeyword(textOf(ev)) {
			local++
		}
	}
	return float64(local) / float64(len(events))
}

func textOf(ev core.Event) string {
	switch e := ev.(type) {
	case core.SearchEvent:
		return e.Query
	default:
		if ar, ok := ev.(core.ArticleRef); ok {
			return ar.ArticleTitle()
		}
	}
	return ""
}
