// Package rules implements the candidate-filtering engine. A rule is a
// pure narrowing function: given the candidate meals for a date and the
// combined history of recorded and already-planned meals, it returns the
// subset of candidates that do not violate the rule. Rules never add
// candidates, never mutate their inputs, and never fail; an empty result
// is a valid outcome the caller must handle.
package rules

import (
	"time"

	"mealprep/internal/diary"
	"mealprep/internal/meal"
)

// Candidates maps meal names to their catalog entries, representing the
// meals still eligible for recommendation on a date.
type Candidates map[string]meal.Meal

// Copy returns an independent copy of the candidate set.
func (c Candidates) Copy() Candidates {
	out := make(Candidates, len(c))
	for name, m := range c {
		out[name] = m
	}
	return out
}

// FilterFunc narrows a candidate set for a date given the combined
// history. Implementations must return a new map and may only remove
// entries, never add.
type FilterFunc func(candidates Candidates, date time.Time, history *diary.Diary) Candidates

// Rule pairs a narrowing function with a stable name used in logs.
type Rule struct {
	Name   string
	Filter FilterFunc
}

// Apply runs the rule against the candidate set.
func (r Rule) Apply(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
	return r.Filter(candidates, date, history)
}

// Pipeline applies an ordered list of rules. The order never affects
// which candidates survive, since every rule only removes entries by
// independent criteria, but a fixed order keeps runs reproducible.
type Pipeline struct {
	rules []Rule
}

// NewPipeline creates a pipeline over the given rules, applied in order.
func NewPipeline(rules ...Rule) *Pipeline {
	return &Pipeline{rules: append([]Rule(nil), rules...)}
}

// Append adds a rule to the end of the pipeline. Used for ad hoc rules,
// e.g. avoiding a meal the user has just rejected.
func (p *Pipeline) Append(r Rule) {
	p.rules = append(p.rules, r)
}

// Rules returns the pipeline's rules in application order.
func (p *Pipeline) Rules() []Rule {
	return append([]Rule(nil), p.rules...)
}

// Apply threads the candidate set through every rule in order and
// returns the narrowed set. It performs no filtering itself and never
// short-circuits: a rule that empties the set still passes the empty
// set to the remaining rules.
func (p *Pipeline) Apply(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
	result := candidates
	for _, r := range p.rules {
		result = r.Apply(result, date, history)
	}
	return result
}
