package toast

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/toastui/internal/model"
)

// Transition defaults.
const (
	DefaultTransition = 250 * time.Millisecond
	DefaultBase       = lipgloss.Color("#000000")

	frameInterval = 33 * time.Millisecond
	slideRows     = 1
)

// entry is a toast as the container draws it: either live, entering, or a
// ghost playing its exit transition after removal.
type entry struct {
	toast     model.Toast
	enteredAt time.Time // zero when shown without an entrance transition
	leftAt    time.Time // zero while the toast is still in the list
}

func (e entry) leaving() bool {
	return !e.leftAt.IsZero()
}

// progress returns how visible the entry is at now, from 0 (invisible) to 1.
func (e entry) progress(now time.Time, d time.Duration) float64 {
	if d <= 0 {
		if e.leaving() {
			return 0
		}
		return 1
	}
	if e.leaving() {
		return 1 - ease(clamp01(float64(now.Sub(e.leftAt))/float64(d)))
	}
	if e.enteredAt.IsZero() {
		return 1
	}
	return ease(clamp01(float64(now.Sub(e.enteredAt)) / float64(d)))
}

// animating reports whether the entry is mid-transition.
func (e entry) animating(now time.Time, d time.Duration) bool {
	if d <= 0 {
		return false
	}
	if e.leaving() {
		return now.Sub(e.leftAt) < d
	}
	return !e.enteredAt.IsZero() && now.Sub(e.enteredAt) < d
}

// done reports whether a ghost has finished its exit and can be dropped.
func (e entry) done(now time.Time, d time.Duration) bool {
	return e.leaving() && (d <= 0 || now.Sub(e.leftAt) >= d)
}

// reconcile merges the controller's current list into the drawn entries.
// Known toasts keep their position, vanished ones become ghosts and new
// ones are appended as entering.
func reconcile(prev []entry, items []model.Toast, now time.Time, d time.Duration) []entry {
	live := make(map[string]bool, len(items))
	for _, t := range items {
		live[t.ID] = true
	}

	out := make([]entry, 0, len(prev)+len(items))
	known := make(map[string]bool, len(prev))
	for _, e := range prev {
		known[e.toast.ID] = true
		if !live[e.toast.ID] && !e.leaving() {
			e.leftAt = now
		}
		if e.done(now, d) {
			continue
		}
		out = append(out, e)
	}

	for _, t := range items {
		if known[t.ID] {
			continue
		}
		e := entry{toast: t}
		if d > 0 {
			e.enteredAt = now
		}
		out = append(out, e)
	}
	return out
}

// prune drops ghosts whose exit has finished.
func prune(entries []entry, now time.Time, d time.Duration) []entry {
	out := make([]entry, 0, len(entries))
	for _, e := range entries {
		if !e.done(now, d) {
			out = append(out, e)
		}
	}
	return out
}

// fade blends c toward base; p = 1 leaves c unchanged, p = 0 yields base.
// Colours that are not hex (ANSI indexes) are returned unchanged.
func fade(c, base lipgloss.Color, p float64) lipgloss.Color {
	if p >= 1 {
		return c
	}
	from, err := colorful.Hex(string(base))
	if err != nil {
		return c
	}
	to, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return lipgloss.Color(from.BlendLab(to, p).Clamped().Hex())
}

// slide returns the downward row offset for an entry at progress p.
func slide(p float64) int {
	return int(math.Round((1 - p) * slideRows))
}

func ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
