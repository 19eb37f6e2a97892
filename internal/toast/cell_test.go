package toast

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/toastui/internal/model"
)

func TestRenderCell_Geometry(t *testing.T) {
	tt := model.NewToast("hello")
	out := RenderCell(tt, DefaultCellStyle(), 0)

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "╭─────────╮", lines[0])
	assert.Equal(t, "│  hello  │", lines[1])
	assert.Equal(t, "╰─────────╯", lines[2])
}

func TestRenderCell_Borders(t *testing.T) {
	tt := model.NewToast("hi")

	style := DefaultCellStyle()
	style.Border = BorderNone
	out := ansi.Strip(RenderCell(tt, style, 0))
	assert.Equal(t, "  hi  ", out)

	style.Border = BorderNormal
	out = ansi.Strip(RenderCell(tt, style, 0))
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestRenderCell_WrapsToMaxWidth(t *testing.T) {
	tt := model.NewToast("a message that is far too long for the space available")
	out := RenderCell(tt, DefaultCellStyle(), 20)

	assert.LessOrEqual(t, lipgloss.Width(out), 20)
	assert.Greater(t, lipgloss.Height(out), 3)
}

func TestRenderCell_CollapsesNewlines(t *testing.T) {
	tt := model.NewToast("two\nlines")
	out := ansi.Strip(RenderCell(tt, DefaultCellStyle(), 0))
	assert.Contains(t, out, "two lines")
}

func TestParseBorder(t *testing.T) {
	b, err := ParseBorder("none")
	require.NoError(t, err)
	assert.Equal(t, BorderNone, b)
	assert.Equal(t, "none", b.String())

	_, err = ParseBorder("double")
	assert.ErrorIs(t, err, ErrUnknownBorder)
}
