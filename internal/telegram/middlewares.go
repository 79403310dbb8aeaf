package telegram

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tb "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"
)

// RecoverMiddleware logs a handler panic with its stack and hands it to onError.
func RecoverMiddleware(log *slog.Logger, onError func(error, tb.Context)) tb.MiddlewareFunc {
	return middleware.Recover(func(err error, c tb.Context) {
		log.Error("Recovered from panic in handler", "panic", err, "stack", string(debug.Stack()))
		onError(fmt.Errorf("handler panic: %w", err), c)
	})
}
