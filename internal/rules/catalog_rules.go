package rules

import (
	"time"

	"mealprep/internal/diary"
	"mealprep/internal/meal"
)

// The two meals of the mutual-exclusion rule. Close enough to each other
// that the household never wants both in the same week.
const (
	lasagneName  = "Lasagne"
	moussakaName = "Moussaka"
)

// NoConsecutiveSameProtein avoids recommending the same protein two days
// running. Candidates with no protein category are exempt. History meals
// are looked up in the catalog; an unknown name panics, since it means
// the diary and the catalog have diverged.
func NoConsecutiveSameProtein(catalog *meal.Catalog) Rule {
	return Rule{
		Name: "no-consecutive-same-protein",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			avoid := make(map[meal.Protein]bool)
			for name := range history.NamesWithin(date, 1) {
				if p := catalog.MustGet(name).Protein; p != meal.ProteinNone {
					avoid[p] = true
				}
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if m.Protein == meal.ProteinNone || !avoid[m.Protein] {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// NoRepeatWithinWeek avoids recommending a meal within seven days of
// another occurrence.
func NoRepeatWithinWeek() Rule {
	return Rule{
		Name: "no-repeat-within-week",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			recent := history.NamesWithin(date, 7)

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if !recent[name] {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// NoNonFavouriteRepeatWithinFortnight avoids recommending non-favourite
// meals within fourteen days of another occurrence. Favourites are
// exempt from this rule only.
func NoNonFavouriteRepeatWithinFortnight() Rule {
	return Rule{
		Name: "no-non-favourite-repeat-within-fortnight",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			recent := history.NamesWithin(date, 14)

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if m.Favourite || !recent[name] {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// PastaCooldown removes all pasta candidates if any pasta dish appears
// within five days of the date.
func PastaCooldown(catalog *meal.Catalog) Rule {
	return Rule{
		Name: "pasta-cooldown",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			pastaNearby := false
			for name := range history.NamesWithin(date, 5) {
				if catalog.MustGet(name).Pasta {
					pastaNearby = true
					break
				}
			}
			if !pastaNearby {
				return candidates.Copy()
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if !m.Pasta {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// SundayRoast keeps only roast candidates on Sundays. On any other day
// it is a no-op.
func SundayRoast() Rule {
	return Rule{
		Name: "sunday-roast",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			if date.Weekday() != time.Sunday {
				return candidates.Copy()
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if m.Roast {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// NoRoastOffSunday removes roast candidates on any day except Sunday.
func NoRoastOffSunday() Rule {
	return Rule{
		Name: "no-roast-off-sunday",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			if date.Weekday() == time.Sunday {
				return candidates.Copy()
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if !m.Roast {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// FishCooldown removes all fish candidates if any fish dish appears
// within seven days of the date.
func FishCooldown(catalog *meal.Catalog) Rule {
	return Rule{
		Name: "fish-cooldown",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			fishNearby := false
			for name := range history.NamesWithin(date, 7) {
				if catalog.MustGet(name).IsFish() {
					fishNearby = true
					break
				}
			}
			if !fishNearby {
				return candidates.Copy()
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if !m.IsFish() {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// NoTimeConsumingOnWeekend removes candidates tagged time-consuming on
// Saturdays and Sundays.
func NoTimeConsumingOnWeekend() Rule {
	return Rule{
		Name: "no-time-consuming-on-weekend",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			wd := date.Weekday()
			if wd != time.Saturday && wd != time.Sunday {
				return candidates.Copy()
			}

			narrowed := make(Candidates, len(candidates))
			for name, m := range candidates {
				if !m.TimeConsuming {
					narrowed[name] = m
				}
			}
			return narrowed
		},
	}
}

// LasagneMoussakaExclusion keeps lasagne and moussaka at least a week
// apart from each other. Both directions apply independently.
func LasagneMoussakaExclusion() Rule {
	return Rule{
		Name: "lasagne-moussaka-exclusion",
		Filter: func(candidates Candidates, date time.Time, history *diary.Diary) Candidates {
			recent := history.NamesWithin(date, 7)

			narrowed := candidates.Copy()
			if recent[moussakaName] {
				delete(narrowed, lasagneName)
			}
			if recent[lasagneName] {
				delete(narrowed, moussakaName)
			}
			return narrowed
		},
	}
}

// DefaultRules returns the full rule catalog in its documented
// application order. Order does not change which candidates survive, but
// keeping it fixed makes runs reproducible.
func DefaultRules(catalog *meal.Catalog) []Rule {
	return []Rule{
		NoConsecutiveSameProtein(catalog),
		NoRepeatWithinWeek(),
		NoNonFavouriteRepeatWithinFortnight(),
		PastaCooldown(catalog),
		SundayRoast(),
		NoRoastOffSunday(),
		FishCooldown(catalog),
		NoTimeConsumingOnWeekend(),
		LasagneMoussakaExclusion(),
	}
}
