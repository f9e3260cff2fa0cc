package config

import (
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("MEALPREP_DB_PATH", "")
		t.Setenv("MEALPREP_SHOPPING_LIST_DIR", "")
		t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "data/mealprep.db" {
			t.Errorf("Expected default DB path, got %q", cfg.DBPath)
		}
		if cfg.ShoppingListDir != "data/lists" {
			t.Errorf("Expected default shopping list dir, got %q", cfg.ShoppingListDir)
		}
		if len(cfg.TelegramAllowedUserIDs) != 0 {
			t.Errorf("Expected no allowed user IDs, got %v", cfg.TelegramAllowedUserIDs)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MEALPREP_DB_PATH", "/tmp/meals.db")
		t.Setenv("MEALPREP_CATALOG_PATH", "/tmp/catalog.json")
		t.Setenv("GEMINI_API_KEY", "gemini_key")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DBPath != "/tmp/meals.db" {
			t.Errorf("Expected overridden DB path, got %q", cfg.DBPath)
		}
		if cfg.CatalogPath != "/tmp/catalog.json" {
			t.Errorf("Expected catalog path, got %q", cfg.CatalogPath)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected Gemini key, got %q", cfg.GeminiAPIKey)
		}
	})

	t.Run("AllowedUserIDs", func(t *testing.T) {
		t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "123, 456,789")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := []int64{123, 456, 789}
		if len(cfg.TelegramAllowedUserIDs) != len(want) {
			t.Fatalf("Expected %d IDs, got %d", len(want), len(cfg.TelegramAllowedUserIDs))
		}
		for i, id := range want {
			if cfg.TelegramAllowedUserIDs[i] != id {
				t.Errorf("Expected ID %d at index %d, got %d", id, i, cfg.TelegramAllowedUserIDs[i])
			}
		}
	})

	t.Run("MalformedUserIDs", func(t *testing.T) {
		t.Setenv("TELEGRAM_ALLOWED_USER_IDS", "123,abc")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for malformed user IDs, got nil")
		}
	})
}

func TestValidateForBot(t *testing.T) {
	cfg := &Config{}
	if err := cfg.ValidateForBot(); err == nil {
		t.Fatal("Expected an error for missing bot settings, got nil")
	}

	cfg.TelegramBotToken = "token"
	if err := cfg.ValidateForBot(); err == nil {
		t.Fatal("Expected an error for missing webhook URL, got nil")
	}

	cfg.TelegramWebhookURL = "https://example.test/webhook"
	if err := cfg.ValidateForBot(); err == nil {
		t.Fatal("Expected an error for empty allow-list, got nil")
	}

	cfg.TelegramAllowedUserIDs = []int64{1}
	if err := cfg.ValidateForBot(); err != nil {
		t.Fatalf("Expected valid bot config, got %v", err)
	}
}
