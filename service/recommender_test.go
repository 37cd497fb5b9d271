package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/catalog"
	"github.com/beninactu/reco/core"
	"github.com/beninactu/reco/rank"
	"github.com/beninactu/reco/rule"
	"github.com/beninactu/reco/store"
)

func newRecommender(t *testing.T, articles []*core.Article, boosts []rule.Boost) (*Recommender, *behavior.Store) {
	t.Helper()
	b := behavior.NewStore(nil, zerolog.Nop(), behavior.Config{})
	r, err := NewDefault(catalog.NewStatic(articles), b, zerolog.Nop(), boosts)
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	return r, b
}

func TestRecommendOrdersByRelevance(t *testing.T) {
	now := time.Now()
	articles := []*core.Article{
		{ID: "sport-today", Title: "Match du jour", Category: "sport", PublishedAt: now, Views: 500, ReadingTime: 5},
		{ID: "politique-old", Title: "Ancien budget", Category: "politique", PublishedAt: now.AddDate(0, 0, -40), Views: 10, ReadingTime: 5},
		{ID: "sport-recent", Title: "Match récent", Category: "sport", PublishedAt: now.AddDate(0, 0, -10), Views: 50, ReadingTime: 5},
	}
	r, _ := newRecommender(t, articles, nil)

	res := r.Recommend(context.Background(), "u1", 10, nil)
	if len(res.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(res.Items))
	}

	// Both sport articles beat the stale politique one on recency and
	// popularity, and the fresher sport article comes first.
	want := []string{"sport-today", "sport-recent", "politique-old"}
	for i, id := range want {
		if res.Items[i].Article.ID != id {
			got := make([]string, len(res.Items))
			for j, rec := range res.Items {
				got[j] = rec.Article.ID
			}
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for _, rec := range res.Items {
		if rec.Score < 0 || rec.Score > 1 {
			t.Errorf("%s score = %v, want in [0,1]", rec.Article.ID, rec.Score)
		}
	}
}

func TestRecommendWithEstablishedProfile(t *testing.T) {
	now := time.Now()
	articles := []*core.Article{
		{ID: "sport-today", Title: "Match du jour", Category: "sport", PublishedAt: now, Views: 500, ReadingTime: 5},
		{ID: "politique-old", Title: "Ancien budget", Category: "politique", PublishedAt: now.AddDate(0, 0, -40), Views: 10, ReadingTime: 5},
		{ID: "sport-recent", Title: "Match récent", Category: "sport", PublishedAt: now.AddDate(0, 0, -10), Views: 50, ReadingTime: 5},
	}
	r, b := newRecommender(t, articles, nil)

	// 4:1 weighted interactions give category weights {sport: 0.8,
	// politique: 0.2}. The views deliberately carry no completion:
	// a well-read view of a catalog article would add self-similarity and
	// can legitimately push an already-read piece over a fresher one, and
	// this test pins the pure category/recency ordering instead.
	meta := core.Meta{At: time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC), Session: "s1"}
	histSport := core.Ref{Article: "hist-sport", Category: "sport", Title: "Ancien match"}
	b.RecordEvent("u1", core.ViewEvent{Meta: meta, Ref: histSport})
	b.RecordEvent("u1", core.LikeEvent{Meta: meta, Ref: histSport})
	b.RecordEvent("u1", core.ViewEvent{Meta: meta, Ref: core.Ref{Article: "hist-pol", Category: "politique", Title: "Ancien vote"}})

	// Hour far from the 03:00 peak, so no time-of-day multiplier skews
	// the comparison.
	rctx := &core.RecommendContext{UserID: "u1", Hour: 15}
	res := r.Recommend(context.Background(), "u1", 10, rctx)

	want := []string{"sport-today", "sport-recent", "politique-old"}
	if len(res.Items) != len(want) {
		t.Fatalf("items = %d, want %d", len(res.Items), len(want))
	}
	for i, id := range want {
		if res.Items[i].Article.ID != id {
			got := make([]string, len(res.Items))
			for j, rec := range res.Items {
				got[j] = rec.Article.ID
			}
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if res.Items[1].Score <= res.Items[2].Score {
		t.Errorf("sport-recent %v <= politique-old %v, want strict preference",
			res.Items[1].Score, res.Items[2].Score)
	}

	// 0.8 is past the preferred-topic threshold: both sport articles
	// carry the reason.
	for _, i := range []int{0, 1} {
		found := false
		for _, reason := range res.Items[i].Reasons {
			if reason == rank.ReasonPreferredTopic {
				found = true
			}
		}
		if !found {
			t.Errorf("%s reasons = %v, want %q present",
				res.Items[i].Article.ID, res.Items[i].Reasons, rank.ReasonPreferredTopic)
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	r, _ := newRecommender(t, nil, nil)

	res := r.Recommend(context.Background(), "u1", 10, nil)
	if res == nil {
		t.Fatal("Recommend returned nil for an empty catalog")
	}
	if len(res.Items) != 0 {
		t.Errorf("items = %d, want 0", len(res.Items))
	}
	if res.RequestID == "" {
		t.Error("empty result still needs a request id")
	}
}

func TestRecommendLimit(t *testing.T) {
	now := time.Now()
	var articles []*core.Article
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
		articles = append(articles, &core.Article{
			ID: id, Title: "Titre " + id, Category: "sport", PublishedAt: now, ReadingTime: 5,
		})
	}
	r, _ := newRecommender(t, articles, nil)

	if res := r.Recommend(context.Background(), "u1", 2, nil); len(res.Items) != 2 {
		t.Errorf("limit 2: items = %d, want 2", len(res.Items))
	}
	// limit <= 0 falls back to the default, which exceeds this catalog.
	if res := r.Recommend(context.Background(), "u1", 0, nil); len(res.Items) != 5 {
		t.Errorf("limit 0: items = %d, want all 5", len(res.Items))
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	now := time.Now()
	// Identical articles score identically; catalog order must decide.
	var articles []*core.Article
	for _, id := range []string{"first", "second", "third"} {
		articles = append(articles, &core.Article{
			ID: id, Title: "Même titre", Category: "sport", PublishedAt: now, ReadingTime: 5,
		})
	}
	r, _ := newRecommender(t, articles, nil)

	res := r.Recommend(context.Background(), "u1", 10, nil)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if res.Items[i].Article.ID != id {
			t.Fatalf("items[%d] = %s, want %s (catalog order on ties)", i, res.Items[i].Article.ID, id)
		}
	}
}

func TestRecommendPersonalizesAfterHistory(t *testing.T) {
	now := time.Now()
	articles := []*core.Article{
		{ID: "p1", Title: "Session parlementaire", Category: "politique", PublishedAt: now, ReadingTime: 5},
		{ID: "s1", Title: "Match de championnat", Category: "sport", PublishedAt: now, ReadingTime: 5},
	}
	r, b := newRecommender(t, articles, nil)

	meta := core.Meta{At: now, Session: "s1"}
	sport := core.Ref{Article: "s1", Category: "sport", Title: "Match de championnat"}
	b.RecordEvent("u1", core.ViewEvent{Meta: meta, Ref: sport, Duration: 300, Completion: 0.9})
	b.RecordEvent("u1", core.LikeEvent{Meta: meta, Ref: sport})

	res := r.Recommend(context.Background(), "u1", 10, nil)
	if res.Items[0].Article.ID != "s1" {
		t.Errorf("top item = %s, want the sport article after sport-only history", res.Items[0].Article.ID)
	}
	if res.Items[0].Score <= res.Items[1].Score {
		t.Errorf("scores %v <= %v, want strict preference", res.Items[0].Score, res.Items[1].Score)
	}
}

func TestRecommendOrdinalIncreases(t *testing.T) {
	r, _ := newRecommender(t, nil, nil)

	first := r.Recommend(context.Background(), "u1", 10, nil)
	second := r.Recommend(context.Background(), "u1", 10, nil)
	if second.Ordinal <= first.Ordinal {
		t.Errorf("ordinals %d then %d, want strictly increasing", first.Ordinal, second.Ordinal)
	}
	if first.RequestID == second.RequestID {
		t.Error("request ids must differ between calls")
	}
}

func TestRecommendAppliesEditorialBoost(t *testing.T) {
	now := time.Now()
	articles := []*core.Article{
		{ID: "plain", Title: "Un article", Category: "culture", PublishedAt: now, ReadingTime: 5},
		{ID: "boosted", Title: "Un autre", Category: "economie", PublishedAt: now, ReadingTime: 5},
	}
	r, err := NewDefault(
		catalog.NewStatic(articles),
		behavior.NewStore(nil, zerolog.Nop(), behavior.Config{}),
		zerolog.Nop(),
		[]rule.Boost{{When: `item.category == "economie"`, Factor: 1.5}},
	)
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}

	res := r.Recommend(context.Background(), "u1", 10, nil)
	if res.Items[0].Article.ID != "boosted" {
		t.Errorf("top item = %s, want the boosted article", res.Items[0].Article.ID)
	}
}

func TestMostRead(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	articles := []*core.Article{
		{ID: "a1", Title: "Un", Category: "sport"},
		{ID: "a2", Title: "Deux", Category: "sport"},
	}
	b := behavior.NewStore(kv, zerolog.Nop(), behavior.Config{})
	r, err := NewDefault(catalog.NewStatic(articles), b, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}

	meta := core.Meta{At: time.Now(), Session: "s1"}
	for i := 0; i < 3; i++ {
		b.RecordEvent("u1", core.ViewEvent{Meta: meta, Ref: core.Ref{Article: "a2", Category: "sport"}})
	}
	b.RecordEvent("u1", core.ViewEvent{Meta: meta, Ref: core.Ref{Article: "a1", Category: "sport"}})

	got := r.MostRead(ctx, kv, 10)
	if len(got) != 2 || got[0].ID != "a2" {
		ids := make([]string, len(got))
		for i, a := range got {
			ids[i] = a.ID
		}
		t.Errorf("MostRead = %v, want [a2 a1]", ids)
	}
}
