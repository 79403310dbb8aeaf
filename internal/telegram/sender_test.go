package telegram_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/watch-now-bot/internal/service"
	"github.com/Roma7-7-7/watch-now-bot/internal/telegram"
	"github.com/Roma7-7-7/watch-now-bot/internal/telegram/mocks"
)

func TestSender_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		messenger := mocks.NewMockMessenger(gomock.NewController(t))
		messenger.EXPECT().Send(tb.ChatID(42), "hello").Return(&tb.Message{ID: 1}, nil)

		require.NoError(t, telegram.NewSender(messenger).SendMessage(ctx, 42, "hello"))
	})

	t.Run("blocked_by_user", func(t *testing.T) {
		messenger := mocks.NewMockMessenger(gomock.NewController(t))
		messenger.EXPECT().Send(tb.ChatID(42), "hello").Return(nil, tb.ErrBlockedByUser)

		err := telegram.NewSender(messenger).SendMessage(ctx, 42, "hello")
		require.ErrorIs(t, err, tb.ErrBlockedByUser)
		assert.ErrorContains(t, err, "send message to chat 42: ")
		assert.True(t, service.IsPermanentFailure(err.Error()), "platform description must survive wrapping")
	})

	t.Run("cancelled", func(t *testing.T) {
		messenger := mocks.NewMockMessenger(gomock.NewController(t))

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := telegram.NewSender(messenger).SendMessage(cctx, 42, "hello")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
