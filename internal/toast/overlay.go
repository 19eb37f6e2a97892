package toast

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placement is one rendered cell positioned on a canvas.
type placement struct {
	content string
	x, y    int
}

// canvas is a grid of styled rows that cells are drawn onto. Its width is
// the widest row; anything drawn past it is cut off.
type canvas struct {
	rows  []string
	width int
}

func newCanvas(s string) *canvas {
	c := &canvas{rows: strings.Split(s, "\n")}
	for _, r := range c.rows {
		c.width = max(c.width, ansi.StringWidth(r))
	}
	return c
}

// draw writes p over the canvas. Rows above or below the canvas are
// skipped and a negative column is treated as 0.
func (c *canvas) draw(p placement) {
	x := max(p.x, 0)
	for i, line := range strings.Split(p.content, "\n") {
		row := p.y + i
		if row < 0 || row >= len(c.rows) {
			continue
		}
		c.rows[row] = c.splice(c.rows[row], x, line)
	}
}

// splice replaces the columns of row starting at x with s, keeping the
// styling of what is left visible on either side.
func (c *canvas) splice(row string, x int, s string) string {
	if x >= c.width {
		return row
	}
	s = ansi.Truncate(s, c.width-x, "")
	end := x + ansi.StringWidth(s)

	rowW := ansi.StringWidth(row)
	if rowW < end {
		row += strings.Repeat(" ", end-rowW)
		rowW = end
	}
	return ansi.Cut(row, 0, x) + s + ansi.Cut(row, end, rowW)
}

func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// blankCanvas returns height lines of width spaces.
func blankCanvas(width, height int) string {
	if height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(width, 0))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// compose draws placements onto base in order; later placements cover
// earlier ones.
func compose(base string, ps []placement) string {
	c := newCanvas(base)
	for _, p := range ps {
		c.draw(p)
	}
	return c.String()
}
