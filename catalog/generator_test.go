package catalog

import (
	"context"
	"testing"
	"time"
)

func TestGenerateDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	a := Generate(20, 42, now)
	b := Generate(20, 42, now)
	if len(a) != 20 || len(b) != 20 {
		t.Fatalf("lengths = %d, %d; want 20", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title || a[i].Views != b[i].Views {
			t.Fatalf("article %d differs between runs with the same seed", i)
		}
	}

	c := Generate(20, 7, now)
	same := true
	for i := range a {
		if a[i].Title != c[i].Title {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical corpus")
	}
}

func TestGenerateFieldsWellFormed(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for _, a := range Generate(50, 1, now) {
		if a.ID == "" || a.Title == "" || a.Excerpt == "" || a.Category == "" {
			t.Fatalf("article %q has empty fields: %+v", a.ID, a)
		}
		if a.ReadingTime < 2 || a.ReadingTime > 11 {
			t.Errorf("%s: ReadingTime = %d, want 2..11 minutes", a.ID, a.ReadingTime)
		}
		if a.PublishedAt.After(now) {
			t.Errorf("%s: published in the future", a.ID)
		}
		if age := a.AgeDays(now); age > 61 {
			t.Errorf("%s: age = %v days, want within the 60-day window", a.ID, age)
		}
		if a.LocaleRelevance < 0.3 || a.LocaleRelevance > 1 {
			t.Errorf("%s: LocaleRelevance = %v, want 0.3..1", a.ID, a.LocaleRelevance)
		}
		if a.Likes > a.Views || a.Comments > a.Views {
			t.Errorf("%s: engagement exceeds views (%d likes, %d comments, %d views)",
				a.ID, a.Likes, a.Comments, a.Views)
		}
	}
}

func TestStaticCatalogStableOrder(t *testing.T) {
	ctx := context.Background()
	articles := Generate(10, 42, time.Now())
	cat := NewStatic(articles)

	first := cat.Articles(ctx)
	second := cat.Articles(ctx)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("catalog order changed between calls at index %d", i)
		}
	}

	a, ok := cat.Get(ctx, articles[3].ID)
	if !ok || a.ID != articles[3].ID {
		t.Errorf("Get(%s) = %v, %v", articles[3].ID, a, ok)
	}
	if _, ok := cat.Get(ctx, "missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}
