// Package main provides the mealprep command line interface.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mealprep/internal/config"
	"mealprep/internal/database"
	"mealprep/internal/diary"
	"mealprep/internal/meal"
)

var rootCmd = &cobra.Command{
	Use:   "mealprep",
	Short: "Household meal planning",
	Long:  "mealprep keeps a diary of meals eaten and recommends meals for upcoming dates, filtered by household rules (no repeats within a week, roast on Sundays, and so on).",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deps bundles what most subcommands need.
type deps struct {
	cfg       *config.Config
	catalog   *meal.Catalog
	db        *database.DB
	diaryRepo *diary.Repository
}

func openDeps() (*deps, error) {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	catalog, err := meal.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal catalog: %w", err)
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &deps{
		cfg:       cfg,
		catalog:   catalog,
		db:        db,
		diaryRepo: diary.NewRepository(db.SQL),
	}, nil
}

func (d *deps) Close() {
	d.db.Close()
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(diary.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return diary.Day(t), nil
}
