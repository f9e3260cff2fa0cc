// Package main runs the mealprep Telegram bot.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mealprep/internal/config"
	"mealprep/internal/database"
	"mealprep/internal/diary"
	"mealprep/internal/llm"
	"mealprep/internal/meal"
	"mealprep/internal/planner"
	"mealprep/internal/rules"
	"mealprep/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateForBot(); err != nil {
		log.Fatalf("Invalid bot config: %v", err)
	}

	ctx := context.Background()

	// 2. Load the meal catalog
	catalog, err := meal.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load meal catalog: %v", err)
	}

	// 3. Initialize the SQLite database and diary repository
	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	diaryRepo := diary.NewRepository(db.SQL)

	// 4. Optional Gemini client for plan notes
	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer geminiClient.Close()
		textGen = geminiClient
	}

	// 5. Initialize the recommender
	pipeline := rules.NewPipeline(rules.DefaultRules(catalog)...)
	recommender := planner.NewRecommender(catalog, pipeline, nil)

	// 6. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, catalog, recommender, diaryRepo, textGen)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	// 7. Start Server with Graceful Shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
