package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "AB")
	s.DrawText(1, 1, "C")

	out := RenderScreen(s)
	assert.Equal(t, "AB   \n C   ", out)
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(1, 0, "CAT", core.ColorBlue, core.ColorLightBlue)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 1)
	assert.Equal(t, " CAT  ", ansi.Strip(out))
}

func TestStyleForCaches(t *testing.T) {
	a := styleFor(core.ColorGreen, core.ColorLightGreen)
	b := styleFor(core.ColorGreen, core.ColorLightGreen)
	assert.Equal(t, a.GetForeground(), b.GetForeground())
	assert.Contains(t, styleCache, colorPair{core.ColorGreen, core.ColorLightGreen})
}
