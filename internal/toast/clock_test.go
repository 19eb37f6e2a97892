package toast

import (
	"sync"
	"time"

	"github.com/jmylchreest/toastui/internal/model"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestController(clock *fakeClock) *Controller {
	return NewController(Options{Now: clock.Now})
}

func messages(ts []model.Toast) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Message
	}
	return out
}
