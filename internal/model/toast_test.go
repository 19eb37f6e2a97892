package model

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewToast_Defaults(t *testing.T) {
	before := time.Now()
	tt := NewToast("hello")
	after := time.Now()

	assert.NotEmpty(t, tt.ID)
	assert.Equal(t, "hello", tt.Message)
	assert.Equal(t, DefaultBackground, tt.Background)
	assert.Equal(t, DefaultForeground, tt.Foreground)
	assert.Equal(t, LengthLong, tt.Lifetime)
	assert.False(t, tt.CreatedAt.Before(before))
	assert.False(t, tt.CreatedAt.After(after))
}

func TestNewToast_Options(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tt := NewToast("hi",
		WithLifetime(LengthShort),
		WithBackground(lipgloss.Color("#1A801A")),
		WithForeground(lipgloss.Color("#EEEEEE")),
		WithCreatedAt(at),
	)

	assert.Equal(t, LengthShort, tt.Lifetime)
	assert.Equal(t, lipgloss.Color("#1A801A"), tt.Background)
	assert.Equal(t, lipgloss.Color("#EEEEEE"), tt.Foreground)
	assert.Equal(t, at, tt.CreatedAt)
	assert.Equal(t, at.Add(LengthShort), tt.ExpiresAt())
}

func TestToast_Expired(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tt := NewToast("x", WithCreatedAt(at), WithLifetime(2*time.Second))

	tests := []struct {
		name    string
		offset  time.Duration
		expired bool
	}{
		{"at_creation", 0, false},
		{"half_way", time.Second, false},
		{"exactly_lifetime", 2 * time.Second, false},
		{"just_after", 2*time.Second + time.Nanosecond, true},
		{"well_after", 2500 * time.Millisecond, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expired, tt.Expired(at.Add(tc.offset)))
		})
	}
}

func TestToast_Remaining(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tt := NewToast("x", WithCreatedAt(at), WithLifetime(2*time.Second))

	assert.Equal(t, 2*time.Second, tt.Remaining(at))
	assert.Equal(t, 500*time.Millisecond, tt.Remaining(at.Add(1500*time.Millisecond)))
	assert.Equal(t, time.Duration(0), tt.Remaining(at.Add(time.Minute)))
}

func TestToast_RelativeAge(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tt := NewToast("x", WithCreatedAt(at))

	assert.Equal(t, "now", tt.RelativeAge(at))
	assert.Equal(t, "3 seconds ago", tt.RelativeAge(at.Add(3*time.Second)))
}

func TestToast_SingleLine(t *testing.T) {
	tt := NewToast("  line one\n\tline   two ")
	assert.Equal(t, "line one line two", tt.SingleLine())
}

func TestNewID_UniqueWithinMillisecond(t *testing.T) {
	at := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID(at)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewID_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 200).Draw(t, "n")
		at := time.UnixMilli(rapid.Int64Range(0, 1<<40).Draw(t, "ms"))

		prev := ""
		for i := 0; i < n; i++ {
			id := NewToast("m", WithCreatedAt(at)).ID
			if id <= prev {
				t.Fatalf("ids not strictly increasing: %s after %s", id, prev)
			}
			prev = id
		}
	})
}

func TestExpired_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lifetime := time.Duration(rapid.Int64Range(0, int64(time.Minute)).Draw(t, "lifetime"))
		a := time.Duration(rapid.Int64Range(0, int64(2*time.Minute)).Draw(t, "a"))
		b := time.Duration(rapid.Int64Range(0, int64(2*time.Minute)).Draw(t, "b"))
		if a > b {
			a, b = b, a
		}

		at := time.Unix(1700000000, 0)
		tt := NewToast("m", WithCreatedAt(at), WithLifetime(lifetime))
		if tt.Expired(at.Add(a)) && !tt.Expired(at.Add(b)) {
			t.Fatalf("expired at %v but not at later %v", a, b)
		}
		if tt.Expired(at.Add(a)) != (a > lifetime) {
			t.Fatalf("expired(%v) with lifetime %v", a, lifetime)
		}
	})
}
