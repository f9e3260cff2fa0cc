package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mealprep/internal/diary"
	"mealprep/internal/llm"
	"mealprep/internal/planner"
	"mealprep/internal/rules"
	"mealprep/internal/shopping"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend meals for upcoming dates",
	Long: `Recommends a meal for each requested date, filtered by the household
rules against the stored diary. The suggestions are shown for confirmation;
rejected days are re-drawn with the rejected meals excluded. Accepted plans
are written to the diary and a shopping list file is produced.`,
	RunE: runRecommend,
}

var (
	recommendFrom string
	recommendDays int
	recommendYes  bool
)

func init() {
	recommendCommand.Flags().StringVar(&recommendFrom, "from", "", "First date to plan (YYYY-MM-DD, default tomorrow)")
	recommendCommand.Flags().IntVar(&recommendDays, "days", 7, "Number of consecutive days to plan")
	recommendCommand.Flags().BoolVarP(&recommendYes, "yes", "y", false, "Accept the first recommendation without prompting")
	rootCmd.AddCommand(recommendCommand)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	start := diary.Day(time.Now()).AddDate(0, 0, 1)
	if recommendFrom != "" {
		if start, err = parseDate(recommendFrom); err != nil {
			return err
		}
	}
	if recommendDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	var dates []time.Time
	for i := 0; i < recommendDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}

	// Only a generous recent window of the diary is relevant to the
	// rules; loading it all would grow without bound.
	history, err := d.diaryRepo.Load(ctx, start.AddDate(0, 0, -60), time.Time{})
	if err != nil {
		return fmt.Errorf("failed to load diary: %w", err)
	}

	pipeline := rules.NewPipeline(rules.DefaultRules(d.catalog)...)
	recommender := planner.NewRecommender(d.catalog, pipeline, nil)

	picks, err := confirmRecommendation(recommender, dates, history)
	if err != nil {
		return err
	}
	if picks == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := d.diaryRepo.SaveAll(ctx, picks); err != nil {
		return fmt.Errorf("failed to save recommendations: %w", err)
	}

	list := shopping.Build(picks, d.catalog)
	if err := os.MkdirAll(d.cfg.ShoppingListDir, 0755); err != nil {
		return fmt.Errorf("failed to create shopping list directory: %w", err)
	}
	listPath := filepath.Join(d.cfg.ShoppingListDir, list.Filename())
	if err := list.WriteFile(listPath); err != nil {
		return err
	}
	fmt.Printf("Shopping list written to %s\n", listPath)

	if d.cfg.GeminiAPIKey != "" {
		printPlanNote(ctx, d.cfg.GeminiAPIKey, picks)
	}

	fmt.Println("\nBon Appetit!")
	return nil
}

// confirmRecommendation loops until the user accepts a plan, rejects
// individual days (excluding those meals on those dates and re-drawing),
// or cancels. Returns nil picks on cancel.
func confirmRecommendation(recommender *planner.Recommender, dates []time.Time, history *diary.Diary) (*diary.Diary, error) {
	reader := bufio.NewReader(os.Stdin)
	accepted := diary.New()

	for {
		remaining := datesExcept(dates, accepted)
		picks, err := recommender.Recommend(remaining, history.Merge(accepted))
		if err != nil {
			return nil, err
		}
		proposal := accepted.Merge(picks)

		fmt.Println("\nRecommended meal plan:")
		printPlan(proposal)

		if recommendYes {
			return proposal, nil
		}

		answer, err := prompt(reader, "\nSound good? (Y/N/C) ", "Y", "N", "C")
		if err != nil {
			return nil, err
		}

		switch answer {
		case "Y":
			return proposal, nil
		case "C":
			return nil, nil
		}

		printIndexedPlan(proposal)
		rejected, cancelled, err := promptIndices(reader, proposal.Len())
		if err != nil {
			return nil, err
		}
		if cancelled {
			return nil, nil
		}

		planned := proposal.Dates()
		accepted = proposal
		for _, idx := range rejected {
			date := planned[idx-1]
			name, _ := proposal.Get(date)
			recommender.Pipeline().Append(rules.AvoidMealOn(date, name))
			accepted.Delete(date)
		}
	}
}

func datesExcept(dates []time.Time, chosen *diary.Diary) []time.Time {
	var out []time.Time
	for _, date := range dates {
		if _, ok := chosen.Get(date); !ok {
			out = append(out, date)
		}
	}
	return out
}

func printPlan(d *diary.Diary) {
	for _, date := range d.Dates() {
		name, _ := d.Get(date)
		fmt.Printf("  %s %s: %s\n", date.Format("Mon"), date.Format(diary.DateFormat), name)
	}
}

func printIndexedPlan(d *diary.Diary) {
	for i, date := range d.Dates() {
		name, _ := d.Get(date)
		fmt.Printf("  [%d] %s %s: %s\n", i+1, date.Format("Mon"), date.Format(diary.DateFormat), name)
	}
}

func prompt(reader *bufio.Reader, question string, allowed ...string) (string, error) {
	for {
		fmt.Print(question)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		for _, a := range allowed {
			if answer == a {
				return answer, nil
			}
		}
		fmt.Printf("Please enter one of %s\n", strings.Join(allowed, "/"))
	}
}

// promptIndices reads a comma-separated list of 1-based plan indices.
func promptIndices(reader *bufio.Reader, max int) ([]int, bool, error) {
	for {
		fmt.Print("Enter the days to change, separated by commas (C to cancel): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, false, fmt.Errorf("failed to read input: %w", err)
		}

		seen := make(map[int]bool)
		var indices []int
		ok := true
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if strings.EqualFold(part, "C") {
				return nil, true, nil
			}
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 1 || idx > max {
				fmt.Printf("Input %q not recognised; enter numbers between 1 and %d\n", part, max)
				ok = false
				break
			}
			if !seen[idx] {
				seen[idx] = true
				indices = append(indices, idx)
			}
		}
		if ok && len(indices) > 0 {
			sort.Ints(indices)
			return indices, false, nil
		}
	}
}

func printPlanNote(ctx context.Context, apiKey string, picks *diary.Diary) {
	gemini, err := llm.NewGeminiClient(ctx, apiKey)
	if err != nil {
		fmt.Printf("Skipping plan note: %v\n", err)
		return
	}
	defer gemini.Close()

	note, err := llm.PlanNote(ctx, gemini, picks)
	if err != nil {
		fmt.Printf("Skipping plan note: %v\n", err)
		return
	}
	fmt.Printf("\n%s\n", note)
}
