package toast

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastui/internal/model"
)

// ChangeType indicates the kind of list change.
type ChangeType int

const (
	// ChangeAdd indicates a toast was appended.
	ChangeAdd ChangeType = iota
	// ChangeExpire indicates one sweep removed one or more expired toasts.
	ChangeExpire
)

// String returns the string representation of ChangeType.
func (c ChangeType) String() string {
	switch c {
	case ChangeAdd:
		return "add"
	case ChangeExpire:
		return "expire"
	default:
		return "unknown"
	}
}

// ChangeEvent signals that the toast list changed.
type ChangeEvent struct {
	Type  ChangeType
	Count int
	IDs   []string
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	Lifetime      time.Duration  // Lifetime for Show (default model.LengthLong)
	SweepInterval time.Duration  // Sweep cadence (default 100ms)
	Background    lipgloss.Color // Default toast background
	Foreground    lipgloss.Color // Default toast message colour
	Now           func() time.Time
	Logger        *slog.Logger
}

// Controller holds the ordered list of active toasts.
// Toasts are kept in insertion order, newest last.
type Controller struct {
	mu          sync.Mutex
	items       []model.Toast
	subscribers []chan ChangeEvent
	closed      bool

	// lifeMu serialises Initialize/Uninitialize so sweeper start and stop
	// never interleave.
	lifeMu  sync.Mutex
	mounts  int
	sweeper *Sweeper

	lifetime   time.Duration
	background lipgloss.Color
	foreground lipgloss.Color
	now        func() time.Time
	logger     *slog.Logger
}

// NewController creates a Controller with no toasts and a stopped sweeper.
func NewController(opts Options) *Controller {
	c := &Controller{
		items:      make([]model.Toast, 0),
		lifetime:   opts.Lifetime,
		background: opts.Background,
		foreground: opts.Foreground,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if c.lifetime <= 0 {
		c.lifetime = model.LengthLong
	}
	if c.background == "" {
		c.background = model.DefaultBackground
	}
	if c.foreground == "" {
		c.foreground = model.DefaultForeground
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.sweeper = NewSweeper(opts.SweepInterval, c.Sweep, c.logger)
	return c
}

// Show appends a new toast with the given message and returns it.
// Options override the controller defaults.
func (c *Controller) Show(message string, opts ...model.Option) model.Toast {
	c.mu.Lock()
	base := []model.Option{
		model.WithCreatedAt(c.now()),
		model.WithLifetime(c.lifetime),
		model.WithBackground(c.background),
		model.WithForeground(c.foreground),
	}
	c.mu.Unlock()

	t := model.NewToast(message, append(base, opts...)...)
	c.append(t)
	return t
}

// ShowToast appends a caller-constructed toast. Missing fields are filled
// from the controller defaults and the appended toast is returned. A zero
// or negative Lifetime counts as missing, so such a toast gets the default
// lifetime rather than expiring on the next sweep.
func (c *Controller) ShowToast(t model.Toast) model.Toast {
	c.mu.Lock()
	lifetime, background, foreground := c.lifetime, c.background, c.foreground
	c.mu.Unlock()

	if t.CreatedAt.IsZero() {
		t.CreatedAt = c.now()
	}
	if t.ID == "" {
		t.ID = model.NewID(t.CreatedAt)
	}
	if t.Lifetime <= 0 {
		t.Lifetime = lifetime
	}
	if t.Background == "" {
		t.Background = background
	}
	if t.Foreground == "" {
		t.Foreground = foreground
	}
	c.append(t)
	return t
}

// SetDefaults changes the lifetime and colours applied by later calls to
// Show. Existing toasts are not touched.
func (c *Controller) SetDefaults(lifetime time.Duration, background, foreground lipgloss.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lifetime > 0 {
		c.lifetime = lifetime
	}
	if background != "" {
		c.background = background
	}
	if foreground != "" {
		c.foreground = foreground
	}
}

func (c *Controller) append(t model.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, t)
	c.logger.Debug("toast shown", "id", t.ID, "lifetime", t.Lifetime)

	c.notifyChange(ChangeEvent{
		Type:  ChangeAdd,
		Count: 1,
		IDs:   []string{t.ID},
	})
}

// Items returns a copy of the active toasts in insertion order.
func (c *Controller) Items() []model.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Toast, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of active toasts.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Now returns the controller's current time.
func (c *Controller) Now() time.Time {
	return c.now()
}

// Sweep removes every expired toast and reports whether any were removed.
// Subscribers receive a single event per sweep regardless of how many
// toasts expired.
func (c *Controller) Sweep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var removed []string
	for k := len(c.items) - 1; k >= 0; k-- {
		if c.items[k].Expired(now) {
			removed = append(removed, c.items[k].ID)
			c.items = append(c.items[:k], c.items[k+1:]...)
		}
	}

	if len(removed) == 0 {
		return false
	}

	c.logger.Debug("toasts expired", "count", len(removed), "remaining", len(c.items))
	c.notifyChange(ChangeEvent{
		Type:  ChangeExpire,
		Count: len(removed),
		IDs:   removed,
	})
	return true
}

// Initialize starts the periodic sweep. Calls are counted: the sweep runs
// while at least one caller has initialized without a matching
// Uninitialize.
func (c *Controller) Initialize() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mounts++
	if c.mounts == 1 {
		c.sweeper.Start(context.Background())
	}
}

// Uninitialize releases one Initialize. The sweep stops when the last
// caller releases. Extra calls are ignored.
func (c *Controller) Uninitialize() {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	if c.mounts == 0 {
		return
	}
	c.mounts--
	if c.mounts == 0 {
		c.sweeper.Stop()
	}
}

// SetSweepInterval changes how often expired toasts are looked for. A
// running sweep switches over immediately.
func (c *Controller) SetSweepInterval(interval time.Duration) {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()
	c.sweeper.SetInterval(interval)
}

// SweepInterval returns the current sweep interval.
func (c *Controller) SweepInterval() time.Duration {
	return c.sweeper.Interval()
}

// Sweeping reports whether the periodic sweep is running.
func (c *Controller) Sweeping() bool {
	return c.sweeper.Running()
}

// Subscribe returns a channel that receives change events.
func (c *Controller) Subscribe() <-chan ChangeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan ChangeEvent, 16)
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (c *Controller) Unsubscribe(ch <-chan ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close stops the sweep and closes all subscriber channels.
// The toast list stays usable afterwards but no more events are sent.
func (c *Controller) Close() error {
	c.lifeMu.Lock()
	c.mounts = 0
	c.sweeper.Stop()
	c.lifeMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
	return nil
}

// notifyChange sends a change event to all subscribers (non-blocking).
func (c *Controller) notifyChange(event ChangeEvent) {
	for _, ch := range c.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is behind; it will pick up the list on its next read.
		}
	}
}
