package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mealprep/internal/clipper"
	"mealprep/internal/llm"
	"mealprep/internal/meal"
)

var clipCommand = &cobra.Command{
	Use:   "clip <url>",
	Short: "Import a recipe page as a catalog entry draft",
	Long: `Fetches a recipe web page and extracts a catalog entry from it.
The draft is printed as JSON, or appended to the configured catalog file
with --append.`,
	Args: cobra.ExactArgs(1),
	RunE: runClip,
}

var clipAppend bool

func init() {
	clipCommand.Flags().BoolVar(&clipAppend, "append", false, "Append the draft to the catalog file (MEALPREP_CATALOG_PATH)")
	rootCmd.AddCommand(clipCommand)
}

func runClip(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	if d.cfg.GeminiAPIKey == "" {
		return fmt.Errorf("clip requires GEMINI_API_KEY to be set")
	}

	gemini, err := llm.NewGeminiClient(ctx, d.cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	defer gemini.Close()

	draft, err := clipper.NewClipper(gemini).ClipURL(ctx, args[0])
	if err != nil {
		return err
	}

	if clipAppend {
		if d.cfg.CatalogPath == "" {
			return fmt.Errorf("--append requires MEALPREP_CATALOG_PATH to be set")
		}
		entries, err := meal.LoadEntriesFile(d.cfg.CatalogPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			entries = nil // first clip creates the file
		}
		if err := meal.WriteEntriesFile(d.cfg.CatalogPath, append(entries, *draft)); err != nil {
			return err
		}
		fmt.Printf("Appended %q to %s\n", draft.Name, d.cfg.CatalogPath)
		return nil
	}

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
