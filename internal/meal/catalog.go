package meal

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Catalog is the read-only lookup table of supported meals. Invalid or
// duplicate entries are rejected at construction, so a Catalog that
// exists is always well-formed.
type Catalog struct {
	meals map[string]Meal
}

// NewCatalog builds a Catalog from the given entries, validating each
// one eagerly. All problems are reported in a single error.
func NewCatalog(entries []Meal) (*Catalog, error) {
	meals := make(map[string]Meal, len(entries))

	var problems []string
	for _, m := range entries {
		if err := validate.Struct(m); err != nil {
			problems = append(problems, fmt.Sprintf("meal %q: %v", m.Name, err))
			continue
		}
		if _, exists := meals[m.Name]; exists {
			problems = append(problems, fmt.Sprintf("meal %q: duplicate entry", m.Name))
			continue
		}
		meals[m.Name] = m
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid meal catalog: %d bad entries: %v", len(problems), problems)
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("invalid meal catalog: no entries")
	}

	return &Catalog{meals: meals}, nil
}

// Get returns the meal registered under the given name.
func (c *Catalog) Get(name string) (Meal, bool) {
	m, ok := c.meals[name]
	return m, ok
}

// MustGet returns the meal registered under the given name, panicking
// if it is unknown. An unknown name here means a candidate set or diary
// entry that was never in the catalog, which is a programming error.
func (c *Catalog) MustGet(name string) Meal {
	m, ok := c.meals[name]
	if !ok {
		panic(fmt.Sprintf("meal %q is not in the catalog", name))
	}
	return m
}

// Candidates returns a fresh name -> meal map holding every catalog
// entry. Callers own the returned map; the catalog is never exposed.
func (c *Catalog) Candidates() map[string]Meal {
	candidates := make(map[string]Meal, len(c.meals))
	for name, m := range c.meals {
		candidates[name] = m
	}
	return candidates
}

// Names returns all meal names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.meals))
	for name := range c.meals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of meals in the catalog.
func (c *Catalog) Len() int {
	return len(c.meals)
}
