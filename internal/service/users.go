package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Roma7-7-7/watch-now-bot/internal/metrics"
)

//go:generate mockgen -package mocks -destination mocks/users.go . UsersStore

type UsersStore interface {
	LoadUsers() (map[int64]struct{}, error)
	SaveUsers(users map[int64]struct{}) error
}

// Users owns the in-memory set of chat IDs eligible for broadcasts.
// The set is loaded once and persisted after every mutation.
type Users struct {
	store UsersStore
	users map[int64]struct{}

	log *slog.Logger
	mx  *sync.Mutex
}

// NewUsers loads the stored set. A load failure is logged and the set starts empty.
func NewUsers(ctx context.Context, store UsersStore, log *slog.Logger) *Users {
	log = log.With("component", "service").With("service", "users")

	users, err := store.LoadUsers()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load users, starting with empty list", "error", err)
		users = make(map[int64]struct{})
	}
	log.InfoContext(ctx, "Users loaded", "count", len(users))
	metrics.ActiveUsers.Set(float64(len(users)))

	return &Users{
		store: store,
		users: users,
		log:   log,
		mx:    &sync.Mutex{},
	}
}

// Register adds chatID and persists the set. It reports whether chatID was new.
func (s *Users) Register(ctx context.Context, chatID int64) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	_, exists := s.users[chatID]
	s.users[chatID] = struct{}{}
	s.saveLocked(ctx)

	if !exists {
		s.log.InfoContext(ctx, "New user registered", "chatID", chatID)
		metrics.UsersRegistered.Inc()
	}
	return !exists
}

func (s *Users) Count() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.users)
}

// Snapshot returns a point-in-time copy of the chat IDs.
func (s *Users) Snapshot() []int64 {
	s.mx.Lock()
	defer s.mx.Unlock()

	res := make([]int64, 0, len(s.users))
	for id := range s.users {
		res = append(res, id)
	}
	return res
}

// Remove drops chatID from the live set without persisting.
func (s *Users) Remove(chatID int64) {
	s.mx.Lock()
	defer s.mx.Unlock()
	delete(s.users, chatID)
}

func (s *Users) Save(ctx context.Context) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.saveLocked(ctx)
}

func (s *Users) saveLocked(ctx context.Context) {
	metrics.ActiveUsers.Set(float64(len(s.users)))
	if err := s.store.SaveUsers(s.users); err != nil {
		s.log.ErrorContext(ctx, "Failed to save users", "count", len(s.users), "error", err)
	}
}
