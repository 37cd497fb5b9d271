package behavior

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/beninactu/reco/core"
)

// snapshot is the wire form of one UserRecord. Events go through a typed
// envelope so each variant round-trips into its own struct.
type snapshot struct {
	Interactions []eventEnvelope    `json:"interactions"`
	Viewed       []ViewedStat       `json:"viewed_articles"`
	Searches     []SearchEntry      `json:"search_history"`
	Preferences  map[string]float64 `json:"preferences"`
	LastActivity time.Time          `json:"last_activity"`
}

type eventEnvelope struct {
	Type core.EventType  `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Persist writes every user's record as one hash field through the
// backend. No-op without a backend. Returns the first error so callers can
// log it; recording is never blocked by a failed persist.
func (s *Store) Persist(ctx context.Context) error {
	kv, ok := s.kv.(core.KeyValueStore)
	if !ok {
		return nil
	}

	s.mu.RLock()
	encoded := make(map[string][]byte, len(s.users))
	for userID, rec := range s.users {
		data, err := encodeRecord(rec)
		if err != nil {
			s.log.Warn().Err(err).Str("user", userID).Msg("snapshot encode failed")
			continue
		}
		encoded[userID] = data
	}
	s.mu.RUnlock()

	var firstErr error
	for userID, data := range encoded {
		if err := kv.HSet(ctx, s.cfg.SnapshotKey, userID, data); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Restore loads every persisted record back into memory. A missing or
// corrupted snapshot degrades to an empty record: a broken cache must
// never break the app.
func (s *Store) Restore(ctx context.Context) {
	kv, ok := s.kv.(core.KeyValueStore)
	if !ok {
		return
	}

	fields, err := kv.HGetAll(ctx, s.cfg.SnapshotKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("restore: snapshot read failed, starting empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, data := range fields {
		rec, err := decodeRecord(data)
		if err != nil {
			s.log.Warn().Err(err).Str("user", userID).Msg("restore: snapshot corrupted, dropping")
			continue
		}
		s.users[userID] = rec
	}
}

func encodeRecord(rec *UserRecord) ([]byte, error) {
	snap := snapshot{
		Interactions: make([]eventEnvelope, 0, len(rec.Interactions)),
		Viewed:       rec.Viewed,
		Searches:     rec.Searches,
		Preferences:  rec.Preferences,
		LastActivity: rec.LastActivity,
	}
	for _, ev := range rec.Interactions {
		data, err := json.Marshal(ev)
		if err != nil {
			return nil, err
		}
		snap.Interactions = append(snap.Interactions, eventEnvelope{Type: ev.Type(), Data: data})
	}
	return json.Marshal(snap)
}

func decodeRecord(data []byte) (*UserRecord, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	rec := newUserRecord()
	rec.Viewed = snap.Viewed
	rec.Searches = snap.Searches
	if snap.Preferences != nil {
		rec.Preferences = snap.Preferences
	}
	rec.LastActivity = snap.LastActivity

	for _, env := range snap.Interactions {
		ev, err := decodeEvent(env)
		if err != nil {
			// One bad event does not poison the record.
			continue
		}
		rec.Interactions = append(rec.Interactions, ev)
	}
	return rec, nil
}

func decodeEvent(env eventEnvelope) (core.Event, error) {
	unmarshal := func(v any) error { return json.Unmarshal(env.Data, v) }

	switch env.Type {
	case core.EventView:
		var e core.ViewEvent
		err := unmarshal(&e)
		return e, err
	case core.EventLike:
		var e core.LikeEvent
		err := unmarshal(&e)
		return e, err
	case core.EventComment:
		var e core.CommentEvent
		err := unmarshal(&e)
		return e, err
	case core.EventShare:
		var e core.ShareEvent
		err := unmarshal(&e)
		return e, err
	case core.EventBookmark:
		var e core.BookmarkEvent
		err := unmarshal(&e)
		return e, err
	case core.EventReadComplete:
		var e core.ReadCompleteEvent
		err := unmarshal(&e)
		return e, err
	case core.EventScroll:
		var e core.ScrollEvent
		err := unmarshal(&e)
		return e, err
	case core.EventClick:
		var e core.ClickEvent
		err := unmarshal(&e)
		return e, err
	case core.EventSearch:
		var e core.SearchEvent
		err := unmarshal(&e)
		return e, err
	case core.EventTimeSpent:
		var e core.TimeSpentEvent
		err := unmarshal(&e)
		return e, err
	case core.EventPageView:
		var e core.PageViewEvent
		err := unmarshal(&e)
		return e, err
	case core.EventPageLeave:
		var e core.PageLeaveEvent
		err := unmarshal(&e)
		return e, err
	case core.EventPageReturn:
		var e core.PageReturnEvent
		err := unmarshal(&e)
		return e, err
	case core.EventSocialInteraction:
		var e core.SocialEvent
		err := unmarshal(&e)
		return e, err
	default:
		return nil, core.NewDomainError(core.ModuleBehavior, core.ErrorCodeNotSupported,
			"behavior: unknown event type "+string(env.Type))
	}
}
