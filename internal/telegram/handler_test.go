package telegram_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
	"github.com/Roma7-7-7/watch-now-bot/internal/dal/testutil"
	"github.com/Roma7-7-7/watch-now-bot/internal/service"
	"github.com/Roma7-7-7/watch-now-bot/internal/telegram"
	"github.com/Roma7-7-7/watch-now-bot/internal/telegram/mocks"
)

const (
	chatID   = int64(123)
	adminID  = int64(777)
	watchURL = "https://example.org/watch"

	adminPanel = "📢 Admin Panel\n\nTo broadcast a message, use:\n/admin Your message here\n\nTotal users: 5"
)

var (
	defaultUser = &tb.User{ID: chatID, FirstName: "Alice"}
	adminUser   = &tb.User{ID: adminID, FirstName: "Admin"}
	adminChat   = &tb.Chat{ID: adminID}
)

type fields struct {
	users       func(*gomock.Controller) telegram.Users
	broadcaster func(*gomock.Controller) telegram.Broadcaster
	messenger   func(*gomock.Controller) telegram.Messenger
}

func (f fields) handler(ctrl *gomock.Controller) *telegram.Handler {
	users := telegram.Users(mocks.NewMockUsers(ctrl))
	if f.users != nil {
		users = f.users(ctrl)
	}
	broadcaster := telegram.Broadcaster(mocks.NewMockBroadcaster(ctrl))
	if f.broadcaster != nil {
		broadcaster = f.broadcaster(ctrl)
	}
	messenger := telegram.Messenger(mocks.NewMockMessenger(ctrl))
	if f.messenger != nil {
		messenger = f.messenger(ctrl)
	}
	return telegram.NewHandler(context.Background(), users, broadcaster, messenger, adminID, watchURL, slog.New(slog.DiscardHandler))
}

func TestHandler_Start(t *testing.T) {
	tests := []struct {
		name    string
		isNew   bool
		sendErr error
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "new_user",
			isNew:   true,
			wantErr: assert.NoError,
		},
		{
			name:    "known_user",
			isNew:   false,
			wantErr: assert.NoError,
		},
		{
			name:    "send_error",
			isNew:   true,
			sendErr: assert.AnError,
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := fields{
				users: func(ctrl *gomock.Controller) telegram.Users {
					res := mocks.NewMockUsers(ctrl)
					res.EXPECT().Register(gomock.Any(), chatID).Return(tt.isNew)
					return res
				},
			}.handler(ctrl)

			c := mocks.NewMockTelebotContext(ctrl)
			c.EXPECT().Sender().Return(defaultUser).AnyTimes()
			c.EXPECT().Send("Hey Alice, To watch the episode please click Watch Now.\n\n🆔 Your User ID: `123`", gomock.Any(), tb.ModeMarkdown).
				DoAndReturn(func(_ any, opts ...any) error {
					markup, ok := opts[0].(*tb.ReplyMarkup)
					require.True(t, ok, "first option must be reply markup")
					require.Len(t, markup.InlineKeyboard, 1)
					require.Len(t, markup.InlineKeyboard[0], 1)
					btn := markup.InlineKeyboard[0][0]
					assert.Equal(t, "Watch Now", btn.Text)
					if assert.NotNil(t, btn.WebApp) {
						assert.Equal(t, watchURL, btn.WebApp.URL)
					}
					return tt.sendErr
				})

			tt.wantErr(t, h.Start(c))
		})
	}
}

func TestHandler_Start_NoSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := fields{}.handler(ctrl)

	c := mocks.NewMockTelebotContext(ctrl)
	c.EXPECT().Sender().Return(nil)
	assert.Error(t, h.Start(c))
}

func TestHandler_Admin_Denied(t *testing.T) {
	tests := []struct {
		name   string
		sender *tb.User
	}{
		{name: "regular_user", sender: defaultUser},
		{name: "no_sender", sender: nil},
		{name: "zero_id", sender: &tb.User{ID: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no expectations: any call to users, broadcaster or messenger fails the test
			h := fields{}.handler(ctrl)

			c := mocks.NewMockTelebotContext(ctrl)
			c.EXPECT().Sender().Return(tt.sender)
			c.EXPECT().Send("❌ You are not authorized to use this command.").Return(nil)
			require.NoError(t, h.Admin(c))
		})
	}
}

func TestHandler_Admin_Panel(t *testing.T) {
	finishedAt := time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		text        string
		broadcaster func(*gomock.Controller) telegram.Broadcaster
		want        string
	}{
		{
			name: "no_broadcasts_yet",
			text: "/admin",
			broadcaster: func(ctrl *gomock.Controller) telegram.Broadcaster {
				res := mocks.NewMockBroadcaster(ctrl)
				res.EXPECT().LastBroadcast().Return(dal.Broadcast{}, false, nil)
				return res
			},
			want: adminPanel,
		},
		{
			name: "with_last_broadcast",
			text: "/admin   ",
			broadcaster: func(ctrl *gomock.Controller) telegram.Broadcaster {
				res := mocks.NewMockBroadcaster(ctrl)
				res.EXPECT().LastBroadcast().Return(testutil.NewBroadcast(finishedAt).WithCounts(4, 1, 4).Build(), true, nil)
				return res
			},
			want: adminPanel + "\nLast broadcast: 2025-11-20 10:00 UTC (✅ 4 / ❌ 1)",
		},
		{
			name: "last_broadcast_error",
			text: "/admin\n\n",
			broadcaster: func(ctrl *gomock.Controller) telegram.Broadcaster {
				res := mocks.NewMockBroadcaster(ctrl)
				res.EXPECT().LastBroadcast().Return(dal.Broadcast{}, false, assert.AnError)
				return res
			},
			want: adminPanel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := fields{
				users: func(ctrl *gomock.Controller) telegram.Users {
					res := mocks.NewMockUsers(ctrl)
					res.EXPECT().Count().Return(5)
					return res
				},
				broadcaster: tt.broadcaster,
			}.handler(ctrl)

			c := mocks.NewMockTelebotContext(ctrl)
			c.EXPECT().Sender().Return(adminUser).AnyTimes()
			c.EXPECT().Text().Return(tt.text)
			c.EXPECT().Send(tt.want).Return(nil)
			require.NoError(t, h.Admin(c))
		})
	}
}

func TestHandler_Admin_Broadcast(t *testing.T) {
	status := &tb.Message{ID: 10, Chat: adminChat}

	tests := []struct {
		name    string
		fields  fields
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "success",
			fields: fields{
				broadcaster: func(ctrl *gomock.Controller) telegram.Broadcaster {
					res := mocks.NewMockBroadcaster(ctrl)
					res.EXPECT().Broadcast(gomock.Any(), "new episode is out").
						Return(service.BroadcastResult{Successful: 2, Failed: 1, Active: 2})
					return res
				},
				messenger: func(ctrl *gomock.Controller) telegram.Messenger {
					res := mocks.NewMockMessenger(ctrl)
					gomock.InOrder(
						res.EXPECT().Send(adminChat, "📤 Broadcasting message...").Return(status, nil),
						res.EXPECT().Edit(status, "✅ Broadcast completed!\n\n📊 Results:\n• Successful: 2\n• Failed: 1\n• Active users: 2").Return(status, nil),
					)
					return res
				},
			},
			wantErr: assert.NoError,
		},
		{
			name: "status_send_error",
			fields: fields{
				messenger: func(ctrl *gomock.Controller) telegram.Messenger {
					res := mocks.NewMockMessenger(ctrl)
					res.EXPECT().Send(adminChat, "📤 Broadcasting message...").Return(nil, assert.AnError)
					return res
				},
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError, i...) && assert.ErrorContains(t, err, "send broadcast status: ", i...)
			},
		},
		{
			name: "status_edit_error",
			fields: fields{
				broadcaster: func(ctrl *gomock.Controller) telegram.Broadcaster {
					res := mocks.NewMockBroadcaster(ctrl)
					res.EXPECT().Broadcast(gomock.Any(), "new episode is out").Return(service.BroadcastResult{})
					return res
				},
				messenger: func(ctrl *gomock.Controller) telegram.Messenger {
					res := mocks.NewMockMessenger(ctrl)
					res.EXPECT().Send(adminChat, gomock.Any()).Return(status, nil)
					res.EXPECT().Edit(status, gomock.Any()).Return(nil, assert.AnError)
					return res
				},
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError, i...) && assert.ErrorContains(t, err, "edit broadcast status: ", i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := tt.fields.handler(ctrl)

			// status message goes through messenger, so c.Send must not be called
			c := mocks.NewMockTelebotContext(ctrl)
			c.EXPECT().Sender().Return(adminUser).AnyTimes()
			c.EXPECT().Chat().Return(adminChat).AnyTimes()
			c.EXPECT().Text().Return("/admin new episode  is\nout")
			tt.wantErr(t, h.Admin(c))
		})
	}
}

func TestFormatBroadcastResult(t *testing.T) {
	got := telegram.FormatBroadcastResult(service.BroadcastResult{})
	assert.Contains(t, got, "Successful: 0")
	assert.Contains(t, got, "Failed: 0")
	assert.Contains(t, got, "Active users: 0")
}
