package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/watch-now-bot/internal/config"
	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
	"github.com/Roma7-7-7/watch-now-bot/internal/dal/migrations"
	"github.com/Roma7-7-7/watch-now-bot/internal/server"
	"github.com/Roma7-7-7/watch-now-bot/internal/service"
	"github.com/Roma7-7-7/watch-now-bot/internal/telegram"
	"github.com/Roma7-7-7/watch-now-bot/pkg/clock"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	log := mustLogger(conf.Dev)

	store, err := openBoltDB(conf.DBPath, log)
	if err != nil {
		log.Error("Failed to open database", "path", conf.DBPath, "error", err)
		return 1
	}
	defer store.Close()

	users := service.NewUsers(ctx, dal.NewUsersFile(conf.UsersFile), log)

	tbBot, err := telegram.NewTelebot(conf, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		return 1
	}

	broadcasts := service.NewBroadcasts(users, telegram.NewSender(tbBot), store, clock.New(), log)
	handler := telegram.NewHandler(ctx, users, broadcasts, tbBot, conf.AdminID, conf.WatchURL, log)
	bot := telegram.NewBot(tbBot, handler, log)

	srv := server.New(conf.ListenAddr(), conf.WebhookPath(), bot, log)
	if err := srv.Start(); err != nil {
		log.Error("Failed to start HTTP server", "error", err)
		return 1
	}
	defer bot.Wait()
	defer srv.Shutdown()

	if err := bot.SetWebhook(conf.WebhookURL()); err != nil {
		log.Error("Failed to set webhook", "error", err)
		return 1
	}

	log.Info("Bot started", "port", conf.Port, "adminConfigured", conf.AdminID != 0)
	<-ctx.Done()
	log.Info("Stopping bot")

	return 0
}

func openBoltDB(path string, log *slog.Logger) (*dal.BoltDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil { //nolint:mnd // dir perms
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second}) //nolint:mnd // file perms
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := dal.NewBoltDB(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt store: %w", err)
	}
	return store, nil
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
