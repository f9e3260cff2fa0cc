package planner

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"mealprep/internal/diary"
	"mealprep/internal/meal"
	"mealprep/internal/rules"
)

// 2024-01-01 is a Monday.
func date(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func newTestRecommender(t *testing.T, entries []meal.Meal) *Recommender {
	t.Helper()
	catalog, err := meal.NewCatalog(entries)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	pipeline := rules.NewPipeline(rules.DefaultRules(catalog)...)
	return NewRecommender(catalog, pipeline, rand.New(rand.NewSource(1)))
}

func TestCandidates(t *testing.T) {
	r := newTestRecommender(t, []meal.Meal{
		{Name: "Chicken Curry", Protein: meal.ProteinChicken},
		{Name: "Beef Chilli", Protein: meal.ProteinBeef},
	})

	history := diary.New()
	history.Add(date(1), "Chicken Curry")

	got := r.Candidates(date(2), history)
	if len(got) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(got))
	}
	if _, ok := got["Beef Chilli"]; !ok {
		t.Error("Expected Beef Chilli to survive the rules")
	}
}

func TestRecommend(t *testing.T) {
	t.Run("PrefersWidestNextChoice", func(t *testing.T) {
		// If Monday takes a beef meal, Tuesday is left with one choice;
		// taking the chicken meal leaves two. The recommender must pick
		// chicken on Monday regardless of the random seed.
		r := newTestRecommender(t, []meal.Meal{
			{Name: "Beef Chilli", Protein: meal.ProteinBeef},
			{Name: "Beef Stew", Protein: meal.ProteinBeef},
			{Name: "Chicken Fajitas", Protein: meal.ProteinChicken},
		})

		picks, err := r.Recommend([]time.Time{date(1), date(2)}, diary.New())
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if picks.Len() != 2 {
			t.Fatalf("Expected 2 picks, got %d", picks.Len())
		}
		if name, _ := picks.Get(date(1)); name != "Chicken Fajitas" {
			t.Errorf("Expected Chicken Fajitas on Monday, got %q", name)
		}
		if name, _ := picks.Get(date(2)); name == "Chicken Fajitas" {
			t.Error("Expected a different meal on Tuesday")
		}
	})

	t.Run("ExistingDatesSkipped", func(t *testing.T) {
		r := newTestRecommender(t, []meal.Meal{
			{Name: "Beef Chilli", Protein: meal.ProteinBeef},
			{Name: "Chicken Fajitas", Protein: meal.ProteinChicken},
		})

		existing := diary.New()
		existing.Add(date(1), "Beef Chilli")

		picks, err := r.Recommend([]time.Time{date(1), date(2)}, existing)
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if picks.Len() != 1 {
			t.Fatalf("Expected 1 pick, got %d", picks.Len())
		}
		if _, ok := picks.Get(date(1)); ok {
			t.Error("Expected the already-planned date to be left alone")
		}
		// Monday's beef must push Tuesday to the chicken meal.
		if name, _ := picks.Get(date(2)); name != "Chicken Fajitas" {
			t.Errorf("Expected Chicken Fajitas on Tuesday, got %q", name)
		}
	})

	t.Run("DuplicateDatesRejected", func(t *testing.T) {
		r := newTestRecommender(t, []meal.Meal{{Name: "Stir Fry"}})
		_, err := r.Recommend([]time.Time{date(1), date(1)}, diary.New())
		if err == nil {
			t.Fatal("Expected an error for duplicate dates, got nil")
		}
	})

	t.Run("OutOfMeals", func(t *testing.T) {
		// Sunday forces roasts; the catalog has none.
		r := newTestRecommender(t, []meal.Meal{{Name: "Stir Fry"}})
		_, err := r.Recommend([]time.Time{date(7)}, diary.New())
		if !errors.Is(err, ErrOutOfMeals) {
			t.Fatalf("Expected ErrOutOfMeals, got %v", err)
		}
	})

	t.Run("IntraWeekRulesHold", func(t *testing.T) {
		// Across a planned stretch, earlier picks constrain later ones:
		// no meal may repeat within a week of itself.
		r := newTestRecommender(t, []meal.Meal{
			{Name: "Beef Chilli", Protein: meal.ProteinBeef},
			{Name: "Chicken Fajitas", Protein: meal.ProteinChicken},
			{Name: "Stir Fry"},
			{Name: "Lemon Linguine", Pasta: true},
			{Name: "Quiche", Protein: meal.ProteinPork},
		})

		dates := []time.Time{date(1), date(2), date(3), date(4)}
		picks, err := r.Recommend(dates, diary.New())
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}

		seen := make(map[string]bool)
		for _, name := range picks.Names() {
			if seen[name] {
				t.Errorf("Meal %q recommended twice within the week", name)
			}
			seen[name] = true
		}
	})

	t.Run("DeterministicWithFixedSeed", func(t *testing.T) {
		build := func() *diary.Diary {
			r := newTestRecommender(t, []meal.Meal{
				{Name: "Beef Chilli", Protein: meal.ProteinBeef},
				{Name: "Chicken Fajitas", Protein: meal.ProteinChicken},
				{Name: "Stir Fry"},
				{Name: "Quiche", Protein: meal.ProteinPork},
			})
			picks, err := r.Recommend([]time.Time{date(1), date(2), date(3)}, diary.New())
			if err != nil {
				t.Fatalf("Recommend failed: %v", err)
			}
			return picks
		}

		first := build()
		second := build()
		for _, d := range first.Dates() {
			a, _ := first.Get(d)
			b, _ := second.Get(d)
			if a != b {
				t.Errorf("Picks differ on %s: %q vs %q", d.Format(diary.DateFormat), a, b)
			}
		}
	})
}
