package behavior

import (
	"time"

	"github.com/beninactu/reco/core"
)

// SearchEntry is one recorded site search.
type SearchEntry struct {
	Query   string    `json:"query"`
	At      time.Time `json:"at"`
	Results int       `json:"results"`
}

// UserRecord owns everything tracked for one user: the bounded event log,
// per-article viewing stats, search history and explicit category
// preferences.
//
// Created lazily on the first event for a new user; reset only by an
// explicit Reset call.
type UserRecord struct {
	Interactions []core.Event
	Viewed       []ViewedStat
	Searches     []SearchEntry
	Preferences  map[string]float64
	LastActivity time.Time
}

func newUserRecord() *UserRecord {
	return &UserRecord{
		Preferences: make(map[string]float64),
	}
}

// StatFor returns the viewing stat for an article, or nil.
func (r *UserRecord) StatFor(articleID string) *ViewedStat {
	for i := range r.Viewed {
		if r.Viewed[i].ArticleID == articleID {
			return &r.Viewed[i]
		}
	}
	return nil
}
