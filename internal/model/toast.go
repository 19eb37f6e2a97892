// Package model defines the core data structures for toastui.
package model

import (
	"crypto/rand"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Toast lifetimes.
const (
	LengthLong  = 3500 * time.Millisecond
	LengthShort = 2 * time.Second
)

// Default toast colours.
const (
	DefaultBackground = lipgloss.Color("#000000")
	DefaultForeground = lipgloss.Color("#FFFFFF")
)

// Toast is a single transient message.
// A Toast is a value: once created it is never mutated, only copied.
type Toast struct {
	ID         string
	Message    string
	Background lipgloss.Color
	Foreground lipgloss.Color
	CreatedAt  time.Time
	Lifetime   time.Duration
}

// Option configures a Toast at construction time.
type Option func(*Toast)

// WithLifetime sets how long the toast stays visible.
func WithLifetime(d time.Duration) Option {
	return func(t *Toast) {
		t.Lifetime = d
	}
}

// WithBackground sets the background colour.
func WithBackground(c lipgloss.Color) Option {
	return func(t *Toast) {
		t.Background = c
	}
}

// WithForeground sets the message colour.
func WithForeground(c lipgloss.Color) Option {
	return func(t *Toast) {
		t.Foreground = c
	}
}

// WithCreatedAt overrides the creation timestamp.
func WithCreatedAt(at time.Time) Option {
	return func(t *Toast) {
		t.CreatedAt = at
	}
}

// NewToast creates a toast with a fresh ULID, the current time, the long
// lifetime and the default colours. Options are applied in order.
func NewToast(message string, opts ...Option) Toast {
	t := Toast{
		Message:    message,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		CreatedAt:  time.Now(),
		Lifetime:   LengthLong,
	}
	for _, opt := range opts {
		opt(&t)
	}
	t.ID = NewID(t.CreatedAt)
	return t
}

var (
	entropyMu sync.Mutex
	entropy   io.Reader = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a ULID string for the given time.
// IDs generated within the same millisecond are strictly increasing.
func NewID(at time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(at), entropy)
	if err != nil {
		// Monotonic entropy overflowed within one millisecond; start a new sequence.
		entropy = ulid.Monotonic(rand.Reader, 0)
		id = ulid.MustNew(ulid.Timestamp(at), entropy)
	}
	return id.String()
}

// Age returns how long the toast has existed at now.
func (t Toast) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// Expired reports whether the toast's age is strictly greater than its lifetime.
func (t Toast) Expired(now time.Time) bool {
	return t.Age(now) > t.Lifetime
}

// ExpiresAt returns the instant after which the toast is expired.
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(t.Lifetime)
}

// Remaining returns the time left before expiry, never negative.
func (t Toast) Remaining(now time.Time) time.Duration {
	left := t.Lifetime - t.Age(now)
	if left < 0 {
		return 0
	}
	return left
}

// RelativeAge returns a human-readable age such as "now" or "3 seconds ago".
func (t Toast) RelativeAge(now time.Time) string {
	return humanize.RelTime(t.CreatedAt, now, "ago", "from now")
}

// SingleLine returns the message with whitespace and newlines collapsed.
func (t Toast) SingleLine() string {
	return strings.Join(strings.Fields(t.Message), " ")
}
