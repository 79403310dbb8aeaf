package telegram

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/watch-now-bot/internal/config"
	"github.com/Roma7-7-7/watch-now-bot/internal/metrics"
)

var allowedUpdates = []string{"message"}

type Bot struct {
	bot *tb.Bot

	inFlight sync.WaitGroup

	log *slog.Logger
}

// NewTelebot creates a bot that is never started: updates reach it through Bot.ServeHTTP.
// Handlers run on the goroutine that processes the update.
func NewTelebot(conf *config.Config, log *slog.Logger) (*tb.Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:       conf.BotToken,
		Synchronous: true,
		OnError:     ErrorHandler(log.With("component", "bot")),
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return bot, nil
}

func NewBot(bot *tb.Bot, handler *Handler, log *slog.Logger) *Bot {
	log = log.With("component", "bot")

	bot.Use(RecoverMiddleware(log, bot.OnError))
	bot.Handle("/start", handler.Start)
	bot.Handle("/admin", handler.Admin)

	return &Bot{
		bot: bot,
		log: log,
	}
}

// SetWebhook points Telegram at publicURL.
func (b *Bot) SetWebhook(publicURL string) error {
	err := b.bot.SetWebhook(&tb.Webhook{
		Endpoint:       &tb.WebhookEndpoint{PublicURL: publicURL},
		AllowedUpdates: allowedUpdates,
	})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return nil
}

// ServeHTTP accepts a webhook update and processes it in the background.
func (b *Bot) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var u tb.Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		b.log.Warn("Failed to decode update", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.inFlight.Add(1)
	go func() {
		defer b.inFlight.Done()
		b.bot.ProcessUpdate(u)
	}()

	w.WriteHeader(http.StatusOK)
}

// Wait blocks until every accepted update has been processed.
// Call it once the HTTP server no longer accepts requests.
func (b *Bot) Wait() {
	b.inFlight.Wait()
}

// ErrorHandler logs errors returned from handlers. The update is dropped and
// the bot keeps serving.
func ErrorHandler(log *slog.Logger) func(error, tb.Context) {
	return func(err error, c tb.Context) {
		metrics.HandlerErrors.Inc()

		if c == nil {
			log.Error("Exception while handling an update", "error", err)
			return
		}

		attrs := []any{"error", err, "updateID", c.Update().ID}
		if chat := c.Chat(); chat != nil {
			attrs = append(attrs, "chatID", chat.ID)
		}
		log.Error("Exception while handling an update", attrs...)
	}
}
