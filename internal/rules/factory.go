package rules

import (
	"fmt"
	"time"

	"mealprep/internal/diary"
)

// AvoidMeal returns a rule that never recommends the given meal. Used
// when the household has gone off something for a while.
func AvoidMeal(mealName string) Rule {
	return Rule{
		Name: fmt.Sprintf("avoid-%s", mealName),
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			narrowed := candidates.Copy()
			delete(narrowed, mealName)
			return narrowed
		},
	}
}

// AvoidMealOn returns a rule that avoids the given meal on one specific
// date. The recommender appends one of these for each suggestion the
// user rejects, so the next pass cannot repeat it.
func AvoidMealOn(avoidDate time.Time, mealName string) Rule {
	day := diary.Day(avoidDate)
	return Rule{
		Name: fmt.Sprintf("avoid-%s-on-%s", mealName, day.Format(diary.DateFormat)),
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			if !diary.Day(date).Equal(day) {
				return candidates.Copy()
			}
			narrowed := candidates.Copy()
			delete(narrowed, mealName)
			return narrowed
		},
	}
}
