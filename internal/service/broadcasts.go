package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
	"github.com/Roma7-7-7/watch-now-bot/internal/metrics"
)

//go:generate mockgen -package mocks -destination mocks/sender.go . MessageSender

//go:generate mockgen -package mocks -destination mocks/broadcasts.go . BroadcastsStore

// Fragments of delivery error text that mean the recipient can never be reached again.
// Matching relies on the platform's wording and will miss if it changes.
var permanentFailureMarkers = []string{
	"bot was blocked",
	"user not found",
}

type (
	Clock interface {
		Now() time.Time
	}

	MessageSender interface {
		SendMessage(ctx context.Context, chatID int64, text string) error
	}

	BroadcastsStore interface {
		PutBroadcast(b dal.Broadcast) (dal.Broadcast, error)
		LastBroadcast() (dal.Broadcast, bool, error)
	}

	// Delivery is the outcome of sending a broadcast message to one chat.
	Delivery struct {
		ChatID int64
		Err    error
	}

	BroadcastResult struct {
		Successful int
		Failed     int
		Active     int
	}

	Broadcasts struct {
		users  *Users
		sender MessageSender
		store  BroadcastsStore
		clock  Clock

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func (d Delivery) OK() bool {
	return d.Err == nil
}

// Permanent reports whether the delivery failed because the recipient is gone for good.
func (d Delivery) Permanent() bool {
	return d.Err != nil && IsPermanentFailure(d.Err.Error())
}

// IsPermanentFailure reports whether reason contains one of the known
// "recipient unreachable" fragments, ignoring case.
func IsPermanentFailure(reason string) bool {
	reason = strings.ToLower(reason)
	for _, marker := range permanentFailureMarkers {
		if strings.Contains(reason, marker) {
			return true
		}
	}
	return false
}

func NewBroadcasts(users *Users, sender MessageSender, store BroadcastsStore, clock Clock, log *slog.Logger) *Broadcasts {
	return &Broadcasts{
		users:  users,
		sender: sender,
		store:  store,
		clock:  clock,

		log: log.With("component", "service").With("service", "broadcasts"),
		mx:  &sync.Mutex{},
	}
}

// Broadcast sends text to every user, one at a time. Users whose delivery fails
// permanently are removed, and the list is saved once the loop ends.
// A cancelled ctx stops the loop; chats not attempted are not counted.
func (s *Broadcasts) Broadcast(ctx context.Context, text string) BroadcastResult {
	s.mx.Lock()
	defer s.mx.Unlock()

	startedAt := s.clock.Now()
	chatIDs := s.users.Snapshot()
	s.log.InfoContext(ctx, "Broadcasting message", "recipients", len(chatIDs))

	var res BroadcastResult
	for _, chatID := range chatIDs {
		if ctx.Err() != nil {
			s.log.WarnContext(ctx, "Broadcast interrupted", "error", ctx.Err(), "remaining", len(chatIDs)-res.Successful-res.Failed)
			break
		}

		d := s.deliver(ctx, chatID, text)
		if d.OK() {
			res.Successful++
			metrics.Deliveries.WithLabelValues(metrics.ResultSuccess).Inc()
			continue
		}

		res.Failed++
		metrics.Deliveries.WithLabelValues(metrics.ResultFailed).Inc()
		s.log.WarnContext(ctx, "Failed to send message", "chatID", chatID, "error", d.Err)
		if d.Permanent() {
			s.log.InfoContext(ctx, "User is unreachable, removing from list", "chatID", chatID)
			s.users.Remove(chatID)
			metrics.PrunedUsers.Inc()
		}
	}

	s.users.Save(ctx)
	res.Active = s.users.Count()
	metrics.Broadcasts.Inc()

	finishedAt := s.clock.Now()
	s.log.InfoContext(ctx, "Broadcast completed",
		"successful", res.Successful,
		"failed", res.Failed,
		"active", res.Active,
		"took", finishedAt.Sub(startedAt))
	s.record(ctx, startedAt, finishedAt, res)

	return res
}

func (s *Broadcasts) LastBroadcast() (dal.Broadcast, bool, error) {
	b, ok, err := s.store.LastBroadcast()
	if err != nil {
		return dal.Broadcast{}, false, fmt.Errorf("get last broadcast: %w", err)
	}
	return b, ok, nil
}

func (s *Broadcasts) deliver(ctx context.Context, chatID int64, text string) Delivery {
	return Delivery{
		ChatID: chatID,
		Err:    s.sender.SendMessage(ctx, chatID, text),
	}
}

func (s *Broadcasts) record(ctx context.Context, startedAt, finishedAt time.Time, res BroadcastResult) {
	_, err := s.store.PutBroadcast(dal.Broadcast{
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Successful: res.Successful,
		Failed:     res.Failed,
		Active:     res.Active,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to record broadcast", "error", err)
	}
}
