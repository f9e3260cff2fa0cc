package meal

import (
	"path/filepath"
	"testing"
)

func TestNewCatalog(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		catalog, err := NewCatalog([]Meal{
			{Name: "Stir Fry"},
			{Name: "Fish Pie", Protein: ProteinFish},
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if catalog.Len() != 2 {
			t.Errorf("Expected 2 meals, got %d", catalog.Len())
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := NewCatalog([]Meal{
			{Name: "Stir Fry"},
			{Name: "Stir Fry"},
		})
		if err == nil {
			t.Fatal("Expected an error for duplicate names, got nil")
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := NewCatalog([]Meal{{Protein: ProteinBeef}})
		if err == nil {
			t.Fatal("Expected an error for missing name, got nil")
		}
	})

	t.Run("UnknownProtein", func(t *testing.T) {
		_, err := NewCatalog([]Meal{{Name: "Mystery Stew", Protein: "venison"}})
		if err == nil {
			t.Fatal("Expected an error for unknown protein, got nil")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := NewCatalog(nil); err == nil {
			t.Fatal("Expected an error for empty catalog, got nil")
		}
	})
}

func TestDefaultEntriesAreValid(t *testing.T) {
	catalog, err := NewCatalog(DefaultEntries())
	if err != nil {
		t.Fatalf("Built-in catalog is invalid: %v", err)
	}
	if catalog.Len() < 20 {
		t.Errorf("Expected a rich built-in catalog, got %d meals", catalog.Len())
	}

	// The mutual-exclusion rule names these two meals directly.
	for _, name := range []string{"Lasagne", "Moussaka"} {
		if _, ok := catalog.Get(name); !ok {
			t.Errorf("Expected %q in the built-in catalog", name)
		}
	}
}

func TestCatalogAccessors(t *testing.T) {
	catalog, err := NewCatalog([]Meal{
		{Name: "B Meal"},
		{Name: "A Meal", Protein: ProteinChicken},
	})
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		m, ok := catalog.Get("A Meal")
		if !ok || m.Protein != ProteinChicken {
			t.Errorf("Expected A Meal with chicken protein, got %+v (found=%v)", m, ok)
		}
		if _, ok := catalog.Get("Nope"); ok {
			t.Error("Expected unknown name to report not found")
		}
	})

	t.Run("MustGetPanicsOnUnknown", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected MustGet to panic for an unknown meal")
			}
		}()
		catalog.MustGet("Nope")
	})

	t.Run("CandidatesIsACopy", func(t *testing.T) {
		candidates := catalog.Candidates()
		delete(candidates, "A Meal")
		if _, ok := catalog.Get("A Meal"); !ok {
			t.Error("Mutating the candidate map leaked into the catalog")
		}
	})

	t.Run("NamesSorted", func(t *testing.T) {
		got := catalog.Names()
		if len(got) != 2 || got[0] != "A Meal" || got[1] != "B Meal" {
			t.Errorf("Expected sorted names [A Meal, B Meal], got %v", got)
		}
	})
}

func TestCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	entries := []Meal{
		{Name: "Lasagne", Protein: ProteinBeef, Pasta: true, Favourite: true},
		{Name: "New Dish", Ingredients: map[string]string{"Rice": "300g"}},
	}
	if err := WriteEntriesFile(path, entries); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}

	loaded, err := LoadEntriesFile(path)
	if err != nil {
		t.Fatalf("Failed to load catalog file: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}

	t.Run("OverlayWins", func(t *testing.T) {
		catalog, err := LoadCatalog(path)
		if err != nil {
			t.Fatalf("Failed to load catalog with overlay: %v", err)
		}

		m, ok := catalog.Get("Lasagne")
		if !ok {
			t.Fatal("Expected Lasagne in merged catalog")
		}
		if !m.Favourite {
			t.Error("Expected the file entry to override the built-in Lasagne")
		}
		if _, ok := catalog.Get("New Dish"); !ok {
			t.Error("Expected file-only entry in merged catalog")
		}
	})

	t.Run("MissingFileIsError", func(t *testing.T) {
		if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatal("Expected an error for a missing catalog file, got nil")
		}
	})

	t.Run("NoFileUsesDefaults", func(t *testing.T) {
		catalog, err := LoadCatalog("")
		if err != nil {
			t.Fatalf("Expected built-in catalog, got error %v", err)
		}
		if catalog.Len() != len(DefaultEntries()) {
			t.Errorf("Expected %d meals, got %d", len(DefaultEntries()), catalog.Len())
		}
	})
}
