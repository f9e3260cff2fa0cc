// Package diary holds the meal diary: a mapping of dates to the meal
// eaten (or already planned) on each date. Rules treat past entries and
// tentative future recommendations identically, so both live in the
// same structure.
package diary

import (
	"sort"
	"time"
)

// DateFormat is how diary dates are rendered and stored.
const DateFormat = "2006-01-02"

// Day normalizes a timestamp to midnight UTC, the canonical diary key.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Diary maps dates to meal names, one meal per day.
type Diary struct {
	entries map[time.Time]string
}

// New creates an empty diary.
func New() *Diary {
	return &Diary{entries: make(map[time.Time]string)}
}

// FromEntries creates a diary from a date -> meal name map.
func FromEntries(entries map[time.Time]string) *Diary {
	d := New()
	for date, name := range entries {
		d.Add(date, name)
	}
	return d
}

// Add records a meal for the given date, replacing any existing entry.
func (d *Diary) Add(date time.Time, mealName string) {
	d.entries[Day(date)] = mealName
}

// Delete removes the entry for the given date, if any.
func (d *Diary) Delete(date time.Time) {
	delete(d.entries, Day(date))
}

// Get returns the meal recorded for the given date.
func (d *Diary) Get(date time.Time) (string, bool) {
	name, ok := d.entries[Day(date)]
	return name, ok
}

// Len returns the number of entries.
func (d *Diary) Len() int {
	return len(d.entries)
}

// Dates returns all diary dates in chronological order.
func (d *Diary) Dates() []time.Time {
	dates := make([]time.Time, 0, len(d.entries))
	for date := range d.entries {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Names returns the meal names appearing in the diary, one per entry,
// in chronological order of their dates.
func (d *Diary) Names() []string {
	dates := d.Dates()
	names := make([]string, 0, len(dates))
	for _, date := range dates {
		names = append(names, d.entries[date])
	}
	return names
}

// Copy returns an independent copy of the diary.
func (d *Diary) Copy() *Diary {
	c := New()
	for date, name := range d.entries {
		c.entries[date] = name
	}
	return c
}

// Merge returns a new diary holding the entries of both diaries. Where
// both have an entry for a date, the other diary wins. Used to build
// the combined history of recorded meals plus tentative recommendations.
func (d *Diary) Merge(other *Diary) *Diary {
	merged := d.Copy()
	if other == nil {
		return merged
	}
	for date, name := range other.entries {
		merged.entries[date] = name
	}
	return merged
}

// Filter returns a new diary restricted to entries on or after start and
// strictly before end. A zero start or end leaves that side unbounded.
func (d *Diary) Filter(start, end time.Time) *Diary {
	filtered := New()
	for date, name := range d.entries {
		if !start.IsZero() && date.Before(Day(start)) {
			continue
		}
		if !end.IsZero() && !date.Before(Day(end)) {
			continue
		}
		filtered.entries[date] = name
	}
	return filtered
}

// NamesWithin returns the set of meal names recorded within nDays days
// of the given date, inclusive, in either temporal direction. An empty
// set means no history constrains the date.
func (d *Diary) NamesWithin(date time.Time, nDays int) map[string]bool {
	pivot := Day(date)
	names := make(map[string]bool)
	for entryDate, name := range d.entries {
		days := int(entryDate.Sub(pivot).Hours() / 24)
		if days < 0 {
			days = -days
		}
		if days <= nDays {
			names[name] = true
		}
	}
	return names
}
