// Package planner selects meals for upcoming dates by narrowing the
// catalog through the rule pipeline against the combined diary.
package planner

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"mealprep/internal/diary"
	"mealprep/internal/meal"
	"mealprep/internal/rules"
)

// ErrOutOfMeals is returned when the rules eliminate every candidate
// for a date. It is an expected outcome, not a failure of the pipeline:
// callers typically relax a rule or change the dates and retry.
var ErrOutOfMeals = errors.New("no meals satisfy the active rules")

// Recommender narrows the catalog per-date and picks meals.
type Recommender struct {
	catalog  *meal.Catalog
	pipeline *rules.Pipeline
	rng      *rand.Rand
}

// NewRecommender creates a Recommender. A nil rng gets a time-seeded
// source; tests inject a fixed seed for reproducible picks.
func NewRecommender(catalog *meal.Catalog, pipeline *rules.Pipeline, rng *rand.Rand) *Recommender {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Recommender{
		catalog:  catalog,
		pipeline: pipeline,
		rng:      rng,
	}
}

// Pipeline returns the recommender's rule pipeline, so callers can
// append ad hoc rules between passes.
func (r *Recommender) Pipeline() *rules.Pipeline {
	return r.pipeline
}

// Candidates returns the meals still eligible for the given date after
// applying every rule against the combined history.
func (r *Recommender) Candidates(date time.Time, combined *diary.Diary) rules.Candidates {
	return r.pipeline.Apply(r.catalog.Candidates(), date, combined)
}

// Recommend picks a meal for every requested date not already present
// in the diary and returns the picks as a new diary. Earlier picks feed
// the history seen by later dates, so intra-week rules hold across the
// whole recommendation.
//
// Among the candidates for a date, Recommend prefers those that leave
// the most choice for the following requested date, breaking ties at
// random.
func (r *Recommender) Recommend(dates []time.Time, existing *diary.Diary) (*diary.Diary, error) {
	days := make([]time.Time, 0, len(dates))
	seen := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		day := diary.Day(d)
		if seen[day] {
			return nil, fmt.Errorf("duplicate date %s in recommendation request", day.Format(diary.DateFormat))
		}
		seen[day] = true
		if _, ok := existing.Get(day); ok {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	picks := diary.New()
	combined := existing.Copy()

	for i, date := range days {
		choices := r.Candidates(date, combined)
		if len(choices) == 0 {
			return nil, fmt.Errorf("%w on %s", ErrOutOfMeals, date.Format(diary.DateFormat))
		}

		var name string
		if i == len(days)-1 {
			name = r.pick(sortedNames(choices))
		} else {
			name = r.pick(r.widestNextChoice(choices, date, days[i+1], combined))
		}

		picks.Add(date, name)
		combined.Add(date, name)
	}

	return picks, nil
}

// widestNextChoice returns the candidate names that, if chosen for date,
// leave the largest candidate set for the next requested date.
func (r *Recommender) widestNextChoice(choices rules.Candidates, date, next time.Time, combined *diary.Diary) []string {
	best := -1
	var names []string
	for _, name := range sortedNames(choices) {
		proposed := combined.Copy()
		proposed.Add(date, name)
		n := len(r.Candidates(next, proposed))
		switch {
		case n > best:
			best = n
			names = names[:0]
			names = append(names, name)
		case n == best:
			names = append(names, name)
		}
	}
	return names
}

func (r *Recommender) pick(names []string) string {
	return names[r.rng.Intn(len(names))]
}

func sortedNames(c rules.Candidates) []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
