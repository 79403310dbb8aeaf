package testutil

import (
	"fmt"

	"github.com/Roma7-7-7/watch-now-bot/internal/dal"
)

// BroadcastCountsMatcher matches a dal.Broadcast by its counts only,
// timestamps and ID are ignored
type BroadcastCountsMatcher struct {
	successful, failed, active int
}

func MatchBroadcastCounts(successful, failed, active int) BroadcastCountsMatcher {
	return BroadcastCountsMatcher{
		successful: successful,
		failed:     failed,
		active:     active,
	}
}

func (m BroadcastCountsMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Broadcast)
	if !ok {
		return false
	}
	return actual.Successful == m.successful && actual.Failed == m.failed && actual.Active == m.active
}

func (m BroadcastCountsMatcher) String() string {
	return fmt.Sprintf("broadcast with successful=%d failed=%d active=%d", m.successful, m.failed, m.active)
}
