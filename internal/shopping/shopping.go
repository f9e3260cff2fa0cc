// Package shopping builds shopping lists from the meals planned in a
// diary window.
package shopping

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"mealprep/internal/diary"
	"mealprep/internal/meal"
)

// Item is a single shopping list entry. Quantities are free-form text
// taken from the catalog; when an ingredient appears in several meals
// the quantities are listed together rather than summed.
type Item struct {
	Name       string
	Quantities []string
}

// List is a shopping list for a span of planned dates.
type List struct {
	Start time.Time
	End   time.Time
	Items []Item
}

// Build combines the ingredients of every meal planned in the diary
// into a single list, sorted by ingredient name.
func Build(d *diary.Diary, catalog *meal.Catalog) List {
	quantities := make(map[string][]string)
	for _, date := range d.Dates() {
		name, _ := d.Get(date)
		m := catalog.MustGet(name)
		ingredients := make([]string, 0, len(m.Ingredients))
		for ingredient := range m.Ingredients {
			ingredients = append(ingredients, ingredient)
		}
		sort.Strings(ingredients)
		for _, ingredient := range ingredients {
			quantities[ingredient] = append(quantities[ingredient], m.Ingredients[ingredient])
		}
	}

	items := make([]Item, 0, len(quantities))
	for name, qs := range quantities {
		items = append(items, Item{Name: name, Quantities: qs})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	list := List{Items: items}
	if dates := d.Dates(); len(dates) > 0 {
		list.Start = dates[0]
		list.End = dates[len(dates)-1]
	}
	return list
}

// Filename returns the conventional file name for the list's date span,
// e.g. "Shopping List 20240101 - 20240107.txt".
func (l List) Filename() string {
	return fmt.Sprintf("Shopping List %s - %s.txt",
		l.Start.Format("20060102"), l.End.Format("20060102"))
}

// Render formats the list as plain text.
func (l List) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shopping list %s to %s\n\n",
		l.Start.Format(diary.DateFormat), l.End.Format(diary.DateFormat))
	for _, item := range l.Items {
		fmt.Fprintf(&sb, "- %s: %s\n", item.Name, strings.Join(item.Quantities, " + "))
	}
	return sb.String()
}

// WriteFile writes the rendered list to the given path.
func (l List) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(l.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write shopping list: %w", err)
	}
	return nil
}
