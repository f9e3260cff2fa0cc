package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mealprep/internal/diary"
)

// PlanNote asks the model for a short note about a recommended week of
// meals: prep suggestions, what to batch-cook, that sort of thing.
func PlanNote(ctx context.Context, gen TextGenerator, plan *diary.Diary) (string, error) {
	var week strings.Builder
	for _, date := range plan.Dates() {
		name, _ := plan.Get(date)
		fmt.Fprintf(&week, "%s (%s): %s\n", date.Format(diary.DateFormat), date.Format("Monday"), name)
	}

	prompt := fmt.Sprintf(`
You are a practical home-cooking assistant. Below is a household's meal plan.
Write one short paragraph (3-4 sentences) of preparation advice for the week:
what to defrost ahead, what can be batch-cooked, anything worth prepping early.
Plain text only, no formatting.

Meal plan:
%s
`, week.String())

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	note, err := gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate plan note: %w", err)
	}
	return strings.TrimSpace(note), nil
}
