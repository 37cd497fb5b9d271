package profile

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/beninactu/reco/behavior"
	"github.com/beninactu/reco/core"
)

func newFixture() (*behavior.Store, *Builder) {
	b := behavior.NewStore(nil, zerolog.Nop(), behavior.Config{FlushInterval: time.Hour})
	return b, NewBuilder(b)
}

func at(hour int) core.Meta {
	return core.Meta{At: time.Date(2026, 8, 1, hour, 0, 0, 0, time.UTC), Session: "s1"}
}

func TestColdStartDefaultsIdempotent(t *testing.T) {
	_, builder := newFixture()

	for i := 0; i < 3; i++ {
		p := builder.Build("nobody")
		if len(p.PreferredCategories) != 0 {
			t.Errorf("call %d: PreferredCategories = %v, want empty", i, p.PreferredCategories)
		}
		if p.LocaleAffinity != 0.5 {
			t.Errorf("call %d: LocaleAffinity = %v, want neutral 0.5", i, p.LocaleAffinity)
		}
		if p.ReadingPatterns.AvgReadingTime != 0 {
			t.Errorf("call %d: AvgReadingTime = %v, want 0", i, p.ReadingPatterns.AvgReadingTime)
		}
		if p.TimePreferences.PeakHour != -1 {
			t.Errorf("call %d: PeakHour = %d, want -1 (no signal)", i, p.TimePreferences.PeakHour)
		}
	}
}

func TestPreferredCategoriesWeightedAndNormalized(t *testing.T) {
	store, builder := newFixture()

	sport := core.Ref{Article: "a1", Category: "sport", Title: "Match"}
	politique := core.Ref{Article: "a2", Category: "politique", Title: "Budget"}

	// sport: view(1) + like(3) = 4; politique: view(1) = 1.
	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: sport})
	store.RecordEvent("u1", core.LikeEvent{Meta: at(10), Ref: sport})
	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: politique})

	p := builder.Build("u1")
	if got := p.PreferredCategories["sport"]; math.Abs(got-0.8) > 1e-9 {
		t.Errorf("sport weight = %v, want 0.8", got)
	}
	if got := p.PreferredCategories["politique"]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("politique weight = %v, want 0.2", got)
	}

	var sum float64
	for _, w := range p.PreferredCategories {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum = %v, want 1", sum)
	}
}

func TestMissingCategoryDefaultsToGeneral(t *testing.T) {
	store, builder := newFixture()
	store.RecordEvent("u1", core.PageViewEvent{Meta: at(10), Page: "/accueil"})

	p := builder.Build("u1")
	if got := p.PreferredCategories["general"]; got != 1 {
		t.Errorf("general weight = %v, want 1", got)
	}
}

func TestReadingPatterns(t *testing.T) {
	store, builder := newFixture()

	// Two viewed articles: 120s read to 90%, 480s read to 40%.
	store.RecordEvent("u1", core.ViewEvent{Meta: at(9), Ref: core.Ref{Article: "a1", Category: "sport"}, Duration: 120, Completion: 0.9})
	store.RecordEvent("u1", core.ViewEvent{Meta: at(9), Ref: core.Ref{Article: "a2", Category: "sport"}, Duration: 480, Completion: 0.4})

	p := builder.Build("u1")
	if math.Abs(p.ReadingPatterns.AvgReadingTime-5) > 1e-9 {
		t.Errorf("AvgReadingTime = %v minutes, want 5", p.ReadingPatterns.AvgReadingTime)
	}
	if math.Abs(p.ReadingPatterns.CompletionRate-0.5) > 1e-9 {
		t.Errorf("CompletionRate = %v, want 0.5 (one of two past 0.8)", p.ReadingPatterns.CompletionRate)
	}
}

func TestTimePreferences(t *testing.T) {
	tests := []struct {
		name        string
		hours       []int
		wantPeak    int
		wantMorning bool
		wantEvening bool
	}{
		{"morning reader", []int{8, 8, 8, 14}, 8, true, false},
		{"evening reader", []int{20, 20, 9}, 20, false, true},
		{"midday reader", []int{13, 13, 7}, 13, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, builder := newFixture()
			for i, h := range tt.hours {
				store.RecordEvent("u1", core.ViewEvent{
					Meta: at(h),
					Ref:  core.Ref{Article: "a" + string(rune('0'+i)), Category: "sport"},
				})
			}
			p := builder.Build("u1")
			tp := p.TimePreferences
			if tp.PeakHour != tt.wantPeak {
				t.Errorf("PeakHour = %d, want %d", tp.PeakHour, tt.wantPeak)
			}
			if tp.IsMorningPerson != tt.wantMorning || tp.IsEveningPerson != tt.wantEvening {
				t.Errorf("morning/evening = %v/%v, want %v/%v",
					tp.IsMorningPerson, tp.IsEveningPerson, tt.wantMorning, tt.wantEvening)
			}
		})
	}
}

func TestLocaleAffinity(t *testing.T) {
	store, builder := newFixture()

	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: core.Ref{Article: "a1", Category: "sport", Title: "Cotonou accueille la CAN"}})
	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: core.Ref{Article: "a2", Category: "international", Title: "Sommet mondial du climat"}})

	p := builder.Build("u1")
	if p.LocaleAffinity != 0.5 {
		t.Errorf("LocaleAffinity = %v, want 0.5 (1 of 2 interactions local)", p.LocaleAffinity)
	}
}

func TestCacheInvalidatedOnRecord(t *testing.T) {
	store, builder := newFixture()

	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: core.Ref{Article: "a1", Category: "sport"}})
	before := builder.Build("u1")
	if before.PreferredCategories["sport"] != 1 {
		t.Fatalf("sport weight = %v, want 1", before.PreferredCategories["sport"])
	}

	// Recording must invalidate the cached profile: the next Build
	// reflects the new event.
	store.RecordEvent("u1", core.LikeEvent{Meta: at(10), Ref: core.Ref{Article: "a2", Category: "culture"}})
	after := builder.Build("u1")
	if after == before {
		t.Fatal("stale cached profile returned after a new interaction")
	}
	if after.PreferredCategories["culture"] == 0 {
		t.Error("new interaction not reflected in rebuilt profile")
	}
}

func TestInvalidateDropsCachedProfile(t *testing.T) {
	store, builder := newFixture()
	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: core.Ref{Article: "a1", Category: "sport"}})

	// Build holds the cache lock for the whole rebuild, so an Invalidate
	// always lands strictly before or after a build, never inside one;
	// after it, the next Build must recompute.
	before := builder.Build("u1")
	builder.Invalidate("u1")
	after := builder.Build("u1")
	if after == before {
		t.Fatal("Build returned the dropped profile after Invalidate")
	}
}

func TestCacheReusedWithoutNewEvents(t *testing.T) {
	store, builder := newFixture()
	store.RecordEvent("u1", core.ViewEvent{Meta: at(10), Ref: core.Ref{Article: "a1", Category: "sport"}})

	first := builder.Build("u1")
	second := builder.Build("u1")
	if first != second {
		t.Error("expected the cached profile pointer between unchanged builds")
	}
}
