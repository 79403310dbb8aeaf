package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/Roma7-7-7/watch-now-bot/internal/metrics"
)

const (
	readTimeout     = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// printLogger adapts slog to the Println-style loggers of promhttp.
type printLogger struct {
	log *slog.Logger
}

func (l printLogger) Println(v ...interface{}) {
	l.log.Error(fmt.Sprint(v...))
}

type Server struct {
	srv *http.Server
	log *slog.Logger
}

// New serves webhook on POST webhookPath next to /health and /metrics.
// The webhook path holds the bot token, so requests are not logged.
func New(addr, webhookPath string, webhook http.Handler, log *slog.Logger) *Server {
	log = log.With("component", "server")

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler(printLogger{log}))
	r.Post(webhookPath, webhook.ServeHTTP)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: readTimeout,
			ReadTimeout:       readTimeout,
		},
		log: log,
	}
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start binds the listener synchronously and serves in the background.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}

	go func() {
		if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Failed to serve HTTP", "addr", s.srv.Addr, "error", err)
		}
	}()

	s.log.Info("Listening", "addr", s.srv.Addr)
	return nil
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("Failed to shutdown HTTP server", "error", err)
	}
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
