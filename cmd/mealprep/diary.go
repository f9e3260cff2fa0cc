package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mealprep/internal/diary"
)

var diaryCommand = &cobra.Command{
	Use:   "diary",
	Short: "Inspect and edit the meal diary",
}

var diaryShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Show diary entries",
	RunE:  runDiaryShow,
}

var diaryAddCommand = &cobra.Command{
	Use:   "add <date> <meal>",
	Short: "Record a meal for a date",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiaryAdd,
}

var diaryRemoveCommand = &cobra.Command{
	Use:   "remove <date>...",
	Short: "Remove the entries for the given dates",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDiaryRemove,
}

var (
	diaryShowFrom string
	diaryShowTo   string
)

func init() {
	diaryShowCommand.Flags().StringVar(&diaryShowFrom, "from", "", "Only entries on or after this date (YYYY-MM-DD)")
	diaryShowCommand.Flags().StringVar(&diaryShowTo, "to", "", "Only entries strictly before this date (YYYY-MM-DD)")
	diaryCommand.AddCommand(diaryShowCommand, diaryAddCommand, diaryRemoveCommand)
	rootCmd.AddCommand(diaryCommand)
}

func runDiaryShow(cmd *cobra.Command, args []string) error {
	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	var start, end time.Time
	if diaryShowFrom != "" {
		if start, err = parseDate(diaryShowFrom); err != nil {
			return err
		}
	}
	if diaryShowTo != "" {
		if end, err = parseDate(diaryShowTo); err != nil {
			return err
		}
	}

	entries, err := d.diaryRepo.Load(context.Background(), start, end)
	if err != nil {
		return fmt.Errorf("failed to load diary: %w", err)
	}

	if entries.Len() == 0 {
		fmt.Println("No diary entries.")
		return nil
	}
	printPlan(entries)
	return nil
}

func runDiaryAdd(cmd *cobra.Command, args []string) error {
	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	date, err := parseDate(args[0])
	if err != nil {
		return err
	}
	mealName := args[1]
	if _, ok := d.catalog.Get(mealName); !ok {
		return fmt.Errorf("meal %q is not in the catalog", mealName)
	}

	if err := d.diaryRepo.Upsert(context.Background(), date, mealName); err != nil {
		return err
	}
	fmt.Printf("Recorded %s on %s\n", mealName, date.Format(diary.DateFormat))
	return nil
}

func runDiaryRemove(cmd *cobra.Command, args []string) error {
	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	for _, arg := range args {
		date, err := parseDate(arg)
		if err != nil {
			return err
		}
		if err := d.diaryRepo.Delete(context.Background(), date); err != nil {
			return err
		}
		fmt.Printf("Removed entry for %s\n", date.Format(diary.DateFormat))
	}
	return nil
}
