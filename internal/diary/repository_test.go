package diary_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mealprep/internal/database"
	"mealprep/internal/diary"
)

func newTestRepository(t *testing.T) *diary.Repository {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return diary.NewRepository(db.SQL)
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("UpsertAndLoad", func(t *testing.T) {
		if err := repo.Upsert(ctx, day1, "Chicken Curry"); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
		if err := repo.Upsert(ctx, day2, "Fish Pie"); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}

		d, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if d.Len() != 2 {
			t.Fatalf("Expected 2 entries, got %d", d.Len())
		}
		if name, _ := d.Get(day1); name != "Chicken Curry" {
			t.Errorf("Expected Chicken Curry on day1, got %q", name)
		}
	})

	t.Run("UpsertReplaces", func(t *testing.T) {
		if err := repo.Upsert(ctx, day1, "Lasagne"); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
		d, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if d.Len() != 2 {
			t.Fatalf("Expected upsert to replace, got %d entries", d.Len())
		}
		if name, _ := d.Get(day1); name != "Lasagne" {
			t.Errorf("Expected Lasagne after replace, got %q", name)
		}
	})

	t.Run("LoadRange", func(t *testing.T) {
		if err := repo.Upsert(ctx, day3, "Burgers"); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}

		d, err := repo.Load(ctx, day2, day3)
		if err != nil {
			t.Fatalf("Failed to load range: %v", err)
		}
		if d.Len() != 1 {
			t.Fatalf("Expected 1 entry in [day2, day3), got %d", d.Len())
		}
		if name, _ := d.Get(day2); name != "Fish Pie" {
			t.Errorf("Expected Fish Pie in range, got %q", name)
		}
	})

	t.Run("SaveAll", func(t *testing.T) {
		extra := diary.New()
		extra.Add(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "Pizza")
		extra.Add(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), "Kedgeree")

		if err := repo.SaveAll(ctx, extra); err != nil {
			t.Fatalf("Failed to save all: %v", err)
		}
		d, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if d.Len() != 5 {
			t.Errorf("Expected 5 entries after SaveAll, got %d", d.Len())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := repo.Delete(ctx, day1); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		d, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("Failed to load: %v", err)
		}
		if _, ok := d.Get(day1); ok {
			t.Error("Expected day1 entry to be deleted, but it is still present")
		}

		// Deleting an absent date is a no-op, not an error.
		if err := repo.Delete(ctx, day1); err != nil {
			t.Errorf("Expected deleting absent date to succeed, got %v", err)
		}
	})
}
