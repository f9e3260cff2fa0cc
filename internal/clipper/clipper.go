// Package clipper imports recipes from the web into catalog entry
// drafts. It fetches a page, strips the noise, and has the language
// model extract the fields the catalog needs.
package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mealprep/internal/llm"
	"mealprep/internal/meal"

	"github.com/PuerkitoBio/goquery"
)

// Clipper handles fetching and extracting catalog entries from URLs.
type Clipper struct {
	textGen llm.TextGenerator
}

// NewClipper creates a new Clipper instance.
func NewClipper(textGen llm.TextGenerator) *Clipper {
	return &Clipper{textGen: textGen}
}

// ClipURL fetches the URL and extracts a catalog entry draft. The draft
// is not added to any catalog; the caller decides where it goes.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*meal.Meal, error) {
	content, err := c.fetchAndCleanHTML(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a recipe extraction expert. Extract the dish details from the following page text.
Return the result strictly as a JSON object with this structure:
{
  "name": "Dish Name",
  "protein": "one of: beef, chicken, fish, lamb, pork, turkey, or omit if none",
  "pasta": true,
  "roast": false,
  "time_consuming": false,
  "ingredients": {"Ingredient Name": "quantity, e.g. 500g", ...}
}
Omit boolean fields that are false. Do not include any other text in your response.

Page text:
%s
`, content)

	llmResponse, err := c.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}

	var draft meal.Meal
	if err := json.Unmarshal([]byte(llmResponse), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, llmResponse)
	}

	// Run the draft through catalog validation so a bad extraction is
	// caught here, not at the next startup.
	if _, err := meal.NewCatalog([]meal.Meal{draft}); err != nil {
		return nil, fmt.Errorf("extracted entry is not a valid catalog entry: %w", err)
	}

	return &draft, nil
}

func (c *Clipper) fetchAndCleanHTML(url string) (string, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return strings.TrimSpace(doc.Find("body").Text()), nil
}
