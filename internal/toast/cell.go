package toast

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/toastui/internal/model"
)

// Border selects the outline drawn around a toast.
type Border int

const (
	BorderRounded Border = iota
	BorderNormal
	BorderNone
)

var borderNames = map[Border]string{
	BorderRounded: "rounded",
	BorderNormal:  "normal",
	BorderNone:    "none",
}

// String returns the config name of the border.
func (b Border) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBorder parses "rounded", "normal" or "none".
func ParseBorder(s string) (Border, error) {
	for b, name := range borderNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return BorderRounded, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
}

// CellStyle controls the geometry of a rendered toast.
// Padding is inside the coloured box, margin is the empty space around it.
type CellStyle struct {
	PaddingX int
	PaddingY int
	MarginX  int
	MarginY  int
	Border   Border
}

// DefaultCellStyle returns the standard toast geometry.
func DefaultCellStyle() CellStyle {
	return CellStyle{
		PaddingX: 2,
		PaddingY: 0,
		MarginX:  1,
		MarginY:  0,
		Border:   BorderRounded,
	}
}

// chrome returns the horizontal columns used by border and padding.
func (s CellStyle) chrome() int {
	n := 2 * s.PaddingX
	if s.Border != BorderNone {
		n += 2
	}
	return n
}

// RenderCell renders a single toast as a filled box. The border is drawn in
// the background colour so the box reads as one rounded shape. maxWidth
// limits the box width including border; 0 means unlimited.
func RenderCell(t model.Toast, s CellStyle, maxWidth int) string {
	return renderCell(t.SingleLine(), t.Foreground, t.Background, s, maxWidth)
}

func renderCell(msg string, fg, bg lipgloss.Color, s CellStyle, maxWidth int) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(s.PaddingY, s.PaddingX)

	switch s.Border {
	case BorderRounded:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(bg)
	case BorderNormal:
		style = style.Border(lipgloss.NormalBorder()).BorderForeground(bg)
	}

	if maxWidth > 0 {
		textWidth := maxWidth - s.chrome()
		if textWidth < 1 {
			textWidth = 1
		}
		if lipgloss.Width(msg) > textWidth {
			// Width includes padding but not border.
			style = style.Width(textWidth + 2*s.PaddingX)
		}
	}

	return style.Render(msg)
}
