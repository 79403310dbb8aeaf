package clock

import (
	"sync"
	"time"
)

type System struct{}

func New() *System {
	return &System{}
}

func (c *System) Now() time.Time {
	return time.Now()
}

type Mock struct {
	mx  sync.Mutex
	now time.Time
}

func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

func (m *Mock) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.now
}

func (m *Mock) Advance(d time.Duration) {
	m.mx.Lock()
	m.now = m.now.Add(d)
	m.mx.Unlock()
}
