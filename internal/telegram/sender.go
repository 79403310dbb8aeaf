package telegram

import (
	"context"
	"fmt"

	tb "gopkg.in/telebot.v3"
)

// Sender delivers plain text messages by chat ID. Errors keep the platform's
// description text, which is what permanent failures are detected by.
type Sender struct {
	messenger Messenger
}

func NewSender(messenger Messenger) *Sender {
	return &Sender{messenger: messenger}
}

func (s *Sender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // it's ok
	}

	if _, err := s.messenger.Send(tb.ChatID(chatID), text); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}
