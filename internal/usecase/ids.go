package usecase

import (
	"sync"
	"time"
)

// idClock hands out millisecond timestamps that never repeat, so records
// created within the same millisecond still get distinct ids.
type idClock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDClock(now func() time.Time) *idClock {
	return &idClock{now: now}
}

func (c *idClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}
