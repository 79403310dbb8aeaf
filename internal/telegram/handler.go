package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
	"github.com/Roma7-7-7/watch-now-bot/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/telebot.go -mock_names Context=MockTelebotContext gopkg.in/telebot.v3 Context

//go:generate mockgen -package mocks -destination mocks/users.go . Users

//go:generate mockgen -package mocks -destination mocks/broadcaster.go . Broadcaster

//go:generate mockgen -package mocks -destination mocks/messenger.go . Messenger

const (
	btnTextWatchNow = "Watch Now"

	msgWelcome         = "Hey %s, To watch the episode please click Watch Now.\n\n🆔 Your User ID: `%d`"
	msgNotAuthorized   = "❌ You are not authorized to use this command."
	msgAdminPanel      = "📢 Admin Panel\n\nTo broadcast a message, use:\n/admin Your message here\n\nTotal users: %d"
	msgLastBroadcast   = "\nLast broadcast: %s (✅ %d / ❌ %d)"
	msgBroadcasting    = "📤 Broadcasting message..."
	msgBroadcastResult = "✅ Broadcast completed!\n\n📊 Results:\n• Successful: %d\n• Failed: %d\n• Active users: %d"

	lastBroadcastLayout = "2006-01-02 15:04 MST"
)

var errNoSender = errors.New("update has no sender")

type Users interface {
	Register(ctx context.Context, chatID int64) bool
	Count() int
}

type Broadcaster interface {
	Broadcast(ctx context.Context, text string) service.BroadcastResult
	LastBroadcast() (dal.Broadcast, bool, error)
}

// Messenger is the part of *tb.Bot used for messages that are edited later.
type Messenger interface {
	Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error)
	Edit(msg tb.Editable, what interface{}, opts ...interface{}) (*tb.Message, error)
}

type Handler struct {
	// ctx bounds long-running work such as broadcasts; telebot contexts carry none
	ctx context.Context

	users       Users
	broadcaster Broadcaster
	messenger   Messenger
	adminID     int64

	watchMarkup *tb.ReplyMarkup

	log *slog.Logger
}

func NewHandler(
	ctx context.Context,
	users Users,
	broadcaster Broadcaster,
	messenger Messenger,
	adminID int64,
	watchURL string,
	log *slog.Logger,
) *Handler {
	return &Handler{
		ctx: ctx,

		users:       users,
		broadcaster: broadcaster,
		messenger:   messenger,
		adminID:     adminID,

		watchMarkup: newWatchMarkup(watchURL),

		log: log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	user := c.Sender()
	if user == nil {
		return errNoSender
	}

	isNew := h.users.Register(h.ctx, user.ID)
	h.log.Debug("start handler called",
		"chatID", user.ID,
		"new", isNew)

	return c.Send(fmt.Sprintf(msgWelcome, user.FirstName, user.ID), h.watchMarkup, tb.ModeMarkdown)
}

func (h *Handler) Admin(c tb.Context) error {
	user := c.Sender()
	if user == nil || user.ID != h.adminID {
		if user != nil {
			h.log.Debug("admin command denied", "chatID", user.ID)
		}
		return c.Send(msgNotAuthorized)
	}

	text := commandArgs(c.Text())
	if text == "" {
		return c.Send(h.adminPanel())
	}

	return h.broadcast(c, text)
}

// commandArgs returns the words after the command, joined by single spaces.
// c.Args() is not used: telebot only parses the payload up to the first line break.
func commandArgs(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 { //nolint:mnd // command + at least one word
		return ""
	}
	return strings.Join(fields[1:], " ")
}

func (h *Handler) adminPanel() string {
	msg := fmt.Sprintf(msgAdminPanel, h.users.Count())

	last, ok, err := h.broadcaster.LastBroadcast()
	if err != nil {
		h.log.Error("failed to get last broadcast", "error", err)
		return msg
	}
	if ok {
		msg += fmt.Sprintf(msgLastBroadcast, last.FinishedAt.UTC().Format(lastBroadcastLayout), last.Successful, last.Failed)
	}
	return msg
}

func (h *Handler) broadcast(c tb.Context, text string) error {
	status, err := h.messenger.Send(c.Chat(), msgBroadcasting)
	if err != nil {
		return fmt.Errorf("send broadcast status: %w", err)
	}

	h.log.Info("broadcast requested", "chatID", c.Sender().ID, "length", len(text))
	res := h.broadcaster.Broadcast(h.ctx, text)

	if _, err := h.messenger.Edit(status, FormatBroadcastResult(res)); err != nil {
		return fmt.Errorf("edit broadcast status: %w", err)
	}
	return nil
}

func FormatBroadcastResult(res service.BroadcastResult) string {
	return fmt.Sprintf(msgBroadcastResult, res.Successful, res.Failed, res.Active)
}

func newWatchMarkup(watchURL string) *tb.ReplyMarkup {
	markup := &tb.ReplyMarkup{}
	watch := tb.Btn{
		Text:   btnTextWatchNow,
		WebApp: &tb.WebApp{URL: watchURL},
	}
	markup.Inline(markup.Row(watch))
	return markup
}
