package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DBPath          string
	CatalogPath     string
	ShoppingListDir string
	GeminiAPIKey    string

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
// Only malformed values are errors here; which settings are required
// depends on the entry point (the bot needs Telegram settings, the CLI
// does not) and is checked there.
func NewFromEnv() (*Config, error) {
	dbPath := os.Getenv("MEALPREP_DB_PATH")
	if dbPath == "" {
		dbPath = "data/mealprep.db"
	}

	shoppingListDir := os.Getenv("MEALPREP_SHOPPING_LIST_DIR")
	if shoppingListDir == "" {
		shoppingListDir = "data/lists"
	}

	var allowedIDs []int64
	if raw := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS contains invalid id %q: %w", part, err)
			}
			allowedIDs = append(allowedIDs, id)
		}
	}

	return &Config{
		DBPath:                 dbPath,
		CatalogPath:            os.Getenv("MEALPREP_CATALOG_PATH"),
		ShoppingListDir:        shoppingListDir,
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
	}, nil
}

// ValidateForBot checks the settings the Telegram bot cannot run without.
func (c *Config) ValidateForBot() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	if len(c.TelegramAllowedUserIDs) == 0 {
		return fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS environment variable not set")
	}
	return nil
}
