package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mealprep/internal/shopping"
)

var shoppingCommand = &cobra.Command{
	Use:   "shopping-list --from <date> --to <date>",
	Short: "Print the shopping list for a span of diary dates",
	RunE:  runShoppingList,
}

var (
	shoppingFrom string
	shoppingTo   string
)

func init() {
	shoppingCommand.Flags().StringVar(&shoppingFrom, "from", "", "First date, inclusive (YYYY-MM-DD)")
	shoppingCommand.Flags().StringVar(&shoppingTo, "to", "", "Last date, inclusive (YYYY-MM-DD)")
	shoppingCommand.MarkFlagRequired("from")
	shoppingCommand.MarkFlagRequired("to")
	rootCmd.AddCommand(shoppingCommand)
}

func runShoppingList(cmd *cobra.Command, args []string) error {
	d, err := openDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	start, err := parseDate(shoppingFrom)
	if err != nil {
		return err
	}
	end, err := parseDate(shoppingTo)
	if err != nil {
		return err
	}

	entries, err := d.diaryRepo.Load(context.Background(), start, end.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("failed to load diary: %w", err)
	}
	if entries.Len() == 0 {
		return fmt.Errorf("no diary entries between %s and %s", shoppingFrom, shoppingTo)
	}

	fmt.Print(shopping.Build(entries, d.catalog).Render())
	return nil
}
