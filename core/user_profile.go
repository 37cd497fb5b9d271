package core

import "time"

// ReadingPatterns summarizes how the user reads.
type ReadingPatterns struct {
	// AvgReadingTime is the mean time spent per viewed article, in
	// minutes. 0 means no viewing history.
	AvgReadingTime float64

	// CompletionRate is the fraction of viewed articles the user read
	// past 80%.
	CompletionRate float64
}

// TimePreferences summarizes when the user is active.
//
// IsMorningPerson and IsEveningPerson are derived independently from the
// same peak hour and are non-exclusive by construction; with a single peak
// hour at most one can hold in practice.
type TimePreferences struct {
	// PeakHour is the most frequent interaction hour, 0..23.
	// -1 means no interaction history: time-of-day adjustments must not
	// fire.
	PeakHour        int
	IsMorningPerson bool // peak in [6,12]
	IsEveningPerson bool // peak in [18,23]
}

// UserProfile is the per-user feature summary the scoring engine consumes.
//
// It is a pure function of the user's behavior record at computation time,
// cached by the profile builder and invalidated on every new interaction.
// It is never stored; only behavior records persist.
type UserProfile struct {
	UserID string

	// PreferredCategories is normalized: values sum to 1, or the map is
	// empty when there is no interaction signal at all.
	PreferredCategories map[string]float64

	ReadingPatterns ReadingPatterns

	// InteractionHistory references the stored events (not a copy).
	InteractionHistory []Event

	TimePreferences TimePreferences

	// LocaleAffinity is the fraction of the user's history tied to
	// Beninese keywords, 0..1. 0.5 is the neutral cold-start prior.
	LocaleAffinity float64

	LastActivity time.Time
}

// NewUserProfile returns the cold-start profile: no category signal,
// neutral locale affinity, no peak hour.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:              userID,
		PreferredCategories: make(map[string]float64),
		TimePreferences:     TimePreferences{PeakHour: -1},
		LocaleAffinity:      0.5,
	}
}

// CategoryWeight returns the normalized preference for a category, 0 when
// unknown.
func (p *UserProfile) CategoryWeight(category string) float64 {
	if p == nil || p.PreferredCategories == nil {
		return 0
	}
	return p.PreferredCategories[category]
}
