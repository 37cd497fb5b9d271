package behavior

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/beninactu/reco/core"
)

// Config bounds and keys for the behavior store. Zero values fall back to
// the documented defaults.
type Config struct {
	MaxInteractions int // event log cap per user, default 500 (FIFO)
	MaxViewed       int // viewing stats cap per user, default 100
	MaxSearches     int // search history cap per user, default 50 (FIFO)

	FlushInterval time.Duration // periodic persist, default 1 minute

	SnapshotKey     string // hash key for per-user snapshots, default "behavior:records"
	TrendingKey     string // sorted set of global view counters, default "trending:articles"
	TrendingCatKey  string // prefix for per-category counters, default "trending:category:"
}

func (c Config) withDefaults() Config {
	if c.MaxInteractions <= 0 {
		c.MaxInteractions = 500
	}
	if c.MaxViewed <= 0 {
		c.MaxViewed = 100
	}
	if c.MaxSearches <= 0 {
		c.MaxSearches = 50
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Minute
	}
	if c.SnapshotKey == "" {
		c.SnapshotKey = "behavior:records"
	}
	if c.TrendingKey == "" {
		c.TrendingKey = "trending:articles"
	}
	if c.TrendingCatKey == "" {
		c.TrendingCatKey = "trending:category:"
	}
	return c
}

// Store is the per-user behavior log plus derived viewing stats.
//
// Design principles:
//   - recording never fails: malformed optional fields are tolerated,
//     storage problems are logged and swallowed
//   - persistence is explicit/periodic (Persist, Run), not per event
//   - a corrupted snapshot degrades to an empty record, never an error
//
// The KV backend is optional; without one the store is memory-only, which
// is what tests and cold sessions use.
type Store struct {
	mu    sync.RWMutex
	cfg   Config
	users map[string]*UserRecord

	kv  core.Store // nil means memory-only
	log zerolog.Logger

	onRecord []func(userID string)
}

// NewStore creates a behavior store on top of kv (which may be nil).
func NewStore(kv core.Store, log zerolog.Logger, cfg Config) *Store {
	return &Store{
		cfg:   cfg.withDefaults(),
		users: make(map[string]*UserRecord),
		kv:    kv,
		log:   log.With().Str("component", "behavior").Logger(),
	}
}

// OnRecord registers a hook invoked after every recorded event or search
// for a user. The profile builder registers its cache invalidation here.
func (s *Store) OnRecord(fn func(userID string)) {
	s.onRecord = append(s.onRecord, fn)
}

// RecordEvent appends one interaction to the user's log, folds it into the
// viewing stats when it carries timing data, and bumps trending counters.
// Never returns an error: this is the hot path of the tracking layer.
func (s *Store) RecordEvent(userID string, ev core.Event) {
	if userID == "" || ev == nil {
		return
	}

	s.mu.Lock()
	rec := s.record(userID)

	rec.Interactions = append(rec.Interactions, ev)
	if n := len(rec.Interactions); n > s.cfg.MaxInteractions {
		// FIFO by insertion order, not timestamp: generation is append
		// order.
		rec.Interactions = rec.Interactions[n-s.cfg.MaxInteractions:]
	}

	if ar, ok := ev.(core.ArticleRef); ok && ar.ArticleID() != "" {
		existing := rec.StatFor(ar.ArticleID())
		if updated, touched := UpdateStat(existing, ev); touched {
			if existing != nil {
				*existing = updated
			} else {
				rec.Viewed = append(rec.Viewed, updated)
				s.evictViewedLocked(rec)
			}
		}
	}

	rec.LastActivity = ev.OccurredAt()
	s.mu.Unlock()

	if view, ok := ev.(core.ViewEvent); ok {
		s.bumpTrending(view)
	}
	s.notify(userID)
}

// RecordSearch appends one search to the user's history (FIFO, capped).
func (s *Store) RecordSearch(userID, query string, results int) {
	if userID == "" || query == "" {
		return
	}

	s.mu.Lock()
	rec := s.record(userID)
	rec.Searches = append(rec.Searches, SearchEntry{
		Query:   query,
		At:      time.Now(),
		Results: results,
	})
	if n := len(rec.Searches); n > s.cfg.MaxSearches {
		rec.Searches = rec.Searches[n-s.cfg.MaxSearches:]
	}
	rec.LastActivity = time.Now()
	s.mu.Unlock()

	s.notify(userID)
}

// SetPreference stores an explicit category preference for the user.
func (s *Store) SetPreference(userID, category string, weight float64) {
	if userID == "" || category == "" {
		return
	}
	s.mu.Lock()
	rec := s.record(userID)
	rec.Preferences[category] = weight
	s.mu.Unlock()

	s.notify(userID)
}

// Record returns the user's record, creating an empty one when absent.
// Callers must treat the returned record as read-only.
func (s *Store) Record(userID string) *UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(userID)
}

// Reset drops everything tracked for the user, in memory and in the
// backend. The only non-append mutation the store supports.
func (s *Store) Reset(ctx context.Context, userID string) {
	s.mu.Lock()
	delete(s.users, userID)
	s.mu.Unlock()

	if kv, ok := s.kv.(core.KeyValueStore); ok {
		if err := kv.HDel(ctx, s.cfg.SnapshotKey, userID); err != nil {
			s.log.Warn().Err(err).Str("user", userID).Msg("reset: snapshot delete failed")
		}
	}
}

// record assumes s.mu is held.
func (s *Store) record(userID string) *UserRecord {
	rec, ok := s.users[userID]
	if !ok {
		rec = newUserRecord()
		s.users[userID] = rec
	}
	return rec
}

// evictViewedLocked keeps the MaxViewed most recently viewed stats,
// dropping the oldest by LastViewed.
func (s *Store) evictViewedLocked(rec *UserRecord) {
	if len(rec.Viewed) <= s.cfg.MaxViewed {
		return
	}
	sort.SliceStable(rec.Viewed, func(i, j int) bool {
		return rec.Viewed[i].LastViewed.Before(rec.Viewed[j].LastViewed)
	})
	rec.Viewed = rec.Viewed[len(rec.Viewed)-s.cfg.MaxViewed:]
}

func (s *Store) bumpTrending(view core.ViewEvent) {
	kv, ok := s.kv.(core.KeyValueStore)
	if !ok || view.ArticleID() == "" {
		return
	}
	ctx := context.Background()
	if err := kv.ZIncrBy(ctx, s.cfg.TrendingKey, 1, view.ArticleID()); err != nil {
		s.log.Warn().Err(err).Msg("trending counter update failed")
		return
	}
	if cat := view.ArticleCategory(); cat != "" {
		if err := kv.ZIncrBy(ctx, s.cfg.TrendingCatKey+cat, 1, view.ArticleID()); err != nil {
			s.log.Warn().Err(err).Str("category", cat).Msg("trending counter update failed")
		}
	}
}

func (s *Store) notify(userID string) {
	for _, fn := range s.onRecord {
		fn(userID)
	}
}

// Run flushes snapshots periodically and once more on ctx cancellation
// (the save-on-unload analog). Persistence failures are logged, never
// fatal.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.Persist(context.Background()); err != nil {
				s.log.Error().Err(err).Msg("final persist failed")
			}
			return
		case <-ticker.C:
			if err := s.Persist(ctx); err != nil {
				s.log.Warn().Err(err).Msg("periodic persist failed")
			}
		}
	}
}
