package meal

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEntriesFile reads additional catalog entries from a JSON file
// holding an array of meal objects.
func LoadEntriesFile(path string) ([]Meal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []Meal
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file %s: %w", path, err)
	}
	return entries, nil
}

// WriteEntriesFile writes catalog entries to a JSON file, pretty-printed
// so the file stays hand-editable.
func WriteEntriesFile(path string, entries []Meal) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog entries: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// MergeEntries overlays extra entries onto base by name. Entries in
// overlay replace base entries with the same name.
func MergeEntries(base, overlay []Meal) []Meal {
	overridden := make(map[string]bool, len(overlay))
	for _, m := range overlay {
		overridden[m.Name] = true
	}

	merged := make([]Meal, 0, len(base)+len(overlay))
	for _, m := range base {
		if !overridden[m.Name] {
			merged = append(merged, m)
		}
	}
	return append(merged, overlay...)
}

// LoadCatalog builds the catalog from the built-in table, overlaid with
// the entries in the given file when path is non-empty.
func LoadCatalog(path string) (*Catalog, error) {
	entries := DefaultEntries()
	if path != "" {
		extra, err := LoadEntriesFile(path)
		if err != nil {
			return nil, err
		}
		entries = MergeEntries(entries, extra)
	}
	return NewCatalog(entries)
}
