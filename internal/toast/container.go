package toast

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastui/internal/model"
)

// Alignment is the vertical anchor of the toast area.
type Alignment int

const (
	AlignBottom Alignment = iota
	AlignTop
	AlignMiddle
)

var alignmentNames = map[Alignment]string{
	AlignBottom: "bottom",
	AlignTop:    "top",
	AlignMiddle: "middle",
}

// String returns the config name of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "unknown"
}

// Next cycles top → middle → bottom → top.
func (a Alignment) Next() Alignment {
	switch a {
	case AlignTop:
		return AlignMiddle
	case AlignMiddle:
		return AlignBottom
	default:
		return AlignTop
	}
}

// ParseAlignment parses "top", "bottom" or "middle".
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return AlignBottom, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// Overlap selects how several toasts share the area.
type Overlap int

const (
	// ModeOverlap draws every toast at one anchor, newer toasts on top.
	ModeOverlap Overlap = iota
	// ModeStack draws toasts as a column, newest first.
	ModeStack
)

var overlapNames = map[Overlap]string{
	ModeOverlap: "overlap",
	ModeStack:   "stack",
}

// String returns the config name of the mode.
func (o Overlap) String() string {
	if name, ok := overlapNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOverlap parses "overlap" or "stack".
func ParseOverlap(s string) (Overlap, error) {
	for o, name := range overlapNames {
		if strings.EqualFold(s, name) {
			return o, nil
		}
	}
	return ModeOverlap, fmt.Errorf("%w: %q", ErrUnknownOverlap, s)
}

// ContainerOptions configures a Container.
type ContainerOptions struct {
	Alignment  Alignment
	Overlap    Overlap
	Transition time.Duration  // Fade and slide duration; 0 disables animation
	Cell       CellStyle      // Toast geometry
	Base       lipgloss.Color // Colour toasts fade from and to
}

// DefaultContainerOptions returns bottom-aligned overlapping toasts with the
// standard transition.
func DefaultContainerOptions() ContainerOptions {
	return ContainerOptions{
		Alignment:  AlignBottom,
		Overlap:    ModeOverlap,
		Transition: DefaultTransition,
		Cell:       DefaultCellStyle(),
		Base:       DefaultBase,
	}
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// changeMsg carries a controller change to the container that subscribed.
type changeMsg struct {
	id    int
	event ChangeEvent
}

// frameMsg advances the transition animation.
type frameMsg struct {
	id int
}

// Container is a Bubble Tea component that renders a Controller's toasts.
// It never handles input, so key and mouse messages pass through to the
// host unchanged.
type Container struct {
	id         int
	controller *Controller
	opts       ContainerOptions

	changes   <-chan ChangeEvent
	entries   []entry
	animating bool

	width  int
	height int
}

// NewContainer creates an unmounted container bound to c.
func NewContainer(c *Controller, opts ContainerOptions) Container {
	if opts.Base == "" {
		opts.Base = DefaultBase
	}
	return Container{
		id:         nextID(),
		controller: c,
		opts:       opts,
	}
}

// Mount starts the controller's sweep and subscribes to its changes.
// Toasts already present are shown without an entrance transition.
func (m *Container) Mount() {
	if m.changes != nil {
		return
	}
	m.controller.Initialize()
	m.changes = m.controller.Subscribe()

	items := m.controller.Items()
	m.entries = make([]entry, len(items))
	for i, t := range items {
		m.entries[i] = entry{toast: t}
	}
}

// Unmount unsubscribes and releases the controller's sweep.
func (m *Container) Unmount() {
	if m.changes == nil {
		return
	}
	m.controller.Unsubscribe(m.changes)
	m.changes = nil
	m.controller.Uninitialize()
}

// Mounted reports whether Mount has been called without Unmount.
func (m Container) Mounted() bool {
	return m.changes != nil
}

// SetSize sets the area the toasts are laid out in.
func (m *Container) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetAlignment changes the vertical anchor.
func (m *Container) SetAlignment(a Alignment) {
	m.opts.Alignment = a
}

// SetOverlap changes the layout mode.
func (m *Container) SetOverlap(o Overlap) {
	m.opts.Overlap = o
}

// SetOptions replaces all options.
func (m *Container) SetOptions(opts ContainerOptions) {
	if opts.Base == "" {
		opts.Base = DefaultBase
	}
	m.opts = opts
}

// Options returns the current options.
func (m Container) Options() ContainerOptions {
	return m.opts
}

// Init waits for the first controller change.
func (m Container) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the subscription channel. It returns nil once
// the container is unmounted or the controller closed.
func (m Container) waitForChange() tea.Cmd {
	ch, id := m.changes, m.id
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{id: id, event: ev}
	}
}

func (m Container) frame() tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// Update handles controller changes, animation frames and resizes.
func (m Container) Update(msg tea.Msg) (Container, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case changeMsg:
		if msg.id != m.id {
			return m, nil
		}
		now := m.controller.Now()
		m.entries = reconcile(m.entries, m.controller.Items(), now, m.opts.Transition)
		cmds := []tea.Cmd{m.waitForChange()}
		if !m.animating && m.anyAnimating(now) {
			m.animating = true
			cmds = append(cmds, m.frame())
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		if msg.id != m.id {
			return m, nil
		}
		now := m.controller.Now()
		m.entries = prune(m.entries, now, m.opts.Transition)
		if m.anyAnimating(now) {
			return m, m.frame()
		}
		m.animating = false
		return m, nil
	}

	return m, nil
}

func (m Container) anyAnimating(now time.Time) bool {
	for _, e := range m.entries {
		if e.animating(now, m.opts.Transition) {
			return true
		}
	}
	return false
}

// Animating reports whether a transition is in progress.
func (m Container) Animating() bool {
	return m.animating
}

// Toasts returns the live toasts the container currently draws, in
// insertion order. Ghosts playing their exit transition are excluded.
func (m Container) Toasts() []model.Toast {
	out := make([]model.Toast, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.leaving() {
			out = append(out, e.toast)
		}
	}
	return out
}

// RenderOrder returns the live toasts in the order they are laid out:
// insertion order in overlap mode (later drawn on top), newest first in
// stack mode.
func (m Container) RenderOrder() []model.Toast {
	items := m.Toasts()
	if m.opts.Overlap == ModeStack {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items
}

// drawOrder returns entries (ghosts included) in layout order.
func (m Container) drawOrder() []entry {
	out := make([]entry, len(m.entries))
	copy(out, m.entries)
	if m.opts.Overlap == ModeStack {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	}
	// z-order follows creation time
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].toast.CreatedAt.Before(out[j].toast.CreatedAt)
	})
	return out
}

// View renders the toasts in a width × height area. Without a size the
// area shrinks to fit the toasts.
func (m Container) View() string {
	ps, w, h := m.layout(m.width, m.height)
	if len(ps) == 0 && (m.width == 0 || m.height == 0) {
		return ""
	}
	return compose(blankCanvas(w, h), ps)
}

// Overlay draws the toasts over base, leaving the rest of base visible.
func (m Container) Overlay(base string) string {
	width, height := m.width, m.height
	if width == 0 {
		width = lipgloss.Width(base)
	}
	if height == 0 {
		height = lipgloss.Height(base)
	}
	ps, _, _ := m.layout(width, height)
	return compose(base, ps)
}

type cell struct {
	content string
	w, h    int
	offset  int
}

// layout positions every entry in a width × height area and returns the
// placements in draw order along with the effective area size.
func (m Container) layout(width, height int) ([]placement, int, int) {
	now := m.controller.Now()
	style := m.opts.Cell

	maxCell := 0
	if width > 0 {
		maxCell = width - 2*style.MarginX
	}

	entries := m.drawOrder()
	cells := make([]cell, len(entries))
	widest, tallest := 0, 0
	for i, e := range entries {
		p := e.progress(now, m.opts.Transition)
		content := renderCell(e.toast.SingleLine(),
			fade(e.toast.Foreground, m.opts.Base, p),
			fade(e.toast.Background, m.opts.Base, p),
			style, maxCell)
		cells[i] = cell{
			content: content,
			w:       lipgloss.Width(content),
			h:       lipgloss.Height(content),
			offset:  slide(p),
		}
		widest = max(widest, cells[i].w)
		tallest = max(tallest, cells[i].h)
	}

	var block int
	if m.opts.Overlap == ModeStack {
		for _, c := range cells {
			block += c.h + 2*style.MarginY
		}
	} else if len(cells) > 0 {
		block = tallest + 2*style.MarginY
	}

	if width == 0 {
		width = widest + 2*style.MarginX
	}
	if height == 0 {
		height = block
	}

	var top int
	switch m.opts.Alignment {
	case AlignTop:
		top = 0
	case AlignMiddle:
		top = (height - block) / 2
	default:
		top = height - block
	}
	// A block taller than the area overflows downwards: the first cells,
	// the newest in stack mode, stay visible.
	top = max(top, 0)

	ps := make([]placement, 0, len(cells))
	y := top
	for _, c := range cells {
		x := (width - c.w) / 2
		if m.opts.Overlap == ModeStack {
			ps = append(ps, placement{content: c.content, x: x, y: y + style.MarginY + c.offset})
			y += c.h + 2*style.MarginY
			continue
		}
		// Bottom-aligned within the shared anchor.
		cy := top + style.MarginY + (tallest - c.h) + c.offset
		ps = append(ps, placement{content: c.content, x: x, y: cy})
	}
	return ps, width, height
}
