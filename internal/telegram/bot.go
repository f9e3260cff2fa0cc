package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"mealprep/internal/config"
	"mealprep/internal/diary"
	"mealprep/internal/llm"
	"mealprep/internal/meal"
	"mealprep/internal/planner"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the recommender and the diary.
type Bot struct {
	api         *tgbotapi.BotAPI
	catalog     *meal.Catalog
	recommender *planner.Recommender
	diaryRepo   *diary.Repository
	textGen     llm.TextGenerator // nil disables plan notes
	cfg         *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(
	cfg *config.Config,
	catalog *meal.Catalog,
	recommender *planner.Recommender,
	diaryRepo *diary.Repository,
	textGen llm.TextGenerator,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:         bot,
		catalog:     catalog,
		recommender: recommender,
		diaryRepo:   diaryRepo,
		textGen:     textGen,
		cfg:         cfg,
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	switch {
	case text == "/plan":
		b.handlePlanRequest(msg)
	case text == "/diary":
		b.handleDiaryRequest(msg)
	case strings.HasPrefix(text, "/log "):
		b.handleLogRequest(msg, strings.TrimSpace(strings.TrimPrefix(text, "/log ")))
	default:
		b.reply(msg, "Commands:\n/plan - suggest meals for the next 7 days\n/diary - show recent diary entries\n/log <meal> - record today's meal")
	}
}

// handlePlanRequest suggests meals for the next seven days. Suggestions
// are not written to the diary; the household logs what it actually eats.
func (b *Bot) handlePlanRequest(msg *tgbotapi.Message) {
	ctx := context.Background()

	today := diary.Day(time.Now())
	history, err := b.diaryRepo.Load(ctx, today.AddDate(0, 0, -60), time.Time{})
	if err != nil {
		log.Printf("Failed to load diary: %v", err)
		b.reply(msg, "Couldn't load the diary, sorry.")
		return
	}

	var dates []time.Time
	for i := 1; i <= 7; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}

	picks, err := b.recommender.Recommend(dates, history)
	if err != nil {
		log.Printf("Recommendation failed: %v", err)
		b.reply(msg, fmt.Sprintf("No plan possible: %v", err))
		return
	}

	response := FormatPlan(picks)

	if b.textGen != nil {
		note, err := llm.PlanNote(ctx, b.textGen, picks)
		if err != nil {
			log.Printf("Plan note generation failed: %v", err)
		} else {
			response += "\n" + note
		}
	}

	b.reply(msg, response)
}

func (b *Bot) handleDiaryRequest(msg *tgbotapi.Message) {
	ctx := context.Background()
	today := diary.Day(time.Now())

	recent, err := b.diaryRepo.Load(ctx, today.AddDate(0, 0, -14), today.AddDate(0, 0, 8))
	if err != nil {
		log.Printf("Failed to load diary: %v", err)
		b.reply(msg, "Couldn't load the diary, sorry.")
		return
	}

	if recent.Len() == 0 {
		b.reply(msg, "No diary entries in the last two weeks.")
		return
	}
	b.reply(msg, FormatPlan(recent))
}

func (b *Bot) handleLogRequest(msg *tgbotapi.Message, mealName string) {
	if _, ok := b.catalog.Get(mealName); !ok {
		b.reply(msg, fmt.Sprintf("%q is not in the catalog.", mealName))
		return
	}

	if err := b.diaryRepo.Upsert(context.Background(), time.Now(), mealName); err != nil {
		log.Printf("Failed to log meal: %v", err)
		b.reply(msg, "Couldn't save that, sorry.")
		return
	}
	b.reply(msg, fmt.Sprintf("Logged %s for today.", mealName))
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// FormatPlan renders a diary as one line per day.
func FormatPlan(d *diary.Diary) string {
	var sb strings.Builder
	for _, date := range d.Dates() {
		name, _ := d.Get(date)
		fmt.Fprintf(&sb, "%s %s: %s\n", date.Format("Mon"), date.Format(diary.DateFormat), name)
	}
	return sb.String()
}
