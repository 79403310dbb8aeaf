package testutil

import (
	"time"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
)

// BroadcastBuilder provides fluent API for building test broadcast records
type BroadcastBuilder struct {
	b dal.Broadcast
}

func NewBroadcast(startedAt time.Time) *BroadcastBuilder {
	return &BroadcastBuilder{
		b: dal.Broadcast{
			StartedAt:  startedAt,
			FinishedAt: startedAt,
		},
	}
}

func (b *BroadcastBuilder) WithID(id uint64) *BroadcastBuilder {
	b.b.ID = id
	return b
}

func (b *BroadcastBuilder) WithFinishedAt(t time.Time) *BroadcastBuilder {
	b.b.FinishedAt = t
	return b
}

// WithCounts sets successful, failed and active counts
func (b *BroadcastBuilder) WithCounts(successful, failed, active int) *BroadcastBuilder {
	b.b.Successful = successful
	b.b.Failed = failed
	b.b.Active = active
	return b
}

func (b *BroadcastBuilder) Build() dal.Broadcast {
	return b.b
}
