package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boggle/internal/storage"
)

func newTestScoreboard(t *testing.T, width int) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Result{
		{GameID: "fake", Score: 2, Words: []string{"CAT", "SEQ"}, Board: "C A T S/X E QU Z"},
		{GameID: "fake", Score: 3, Words: []string{"ONE", "TONE", "NOTE"}, Board: "T O N E/A B C D"},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}
	return NewScoreboardModel(store, width, 30)
}

func sbUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sb
}

func TestScoreboardReplaysSelectedGame(t *testing.T) {
	m := newTestScoreboard(t, 100)

	r, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, r.Score)

	view := m.View()
	assert.Contains(t, view, "BEST GAMES")
	assert.Contains(t, view, "TONE")
	assert.NotContains(t, view, "SEQ")

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	r, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, r.Score)

	view = m.View()
	assert.Contains(t, view, "SEQ")
	assert.Contains(t, view, "Qu")
}

func TestScoreboardSwitchesVariant(t *testing.T) {
	m := newTestScoreboard(t, 60)
	require.GreaterOrEqual(t, len(m.variants), 2)

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.current)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No games recorded yet.")

	m = sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.current)
	assert.Len(t, m.results, 2)
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := newTestScoreboard(t, 100)

	back := sbUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	quit := sbUpdate(t, m, runeKey('q'))
	assert.True(t, quit.IsQuitting())
}

func TestParseBoard(t *testing.T) {
	assert.Nil(t, parseBoard(""))
	assert.Equal(t, [][]string{{"A", "QU"}, {"C", "D"}}, parseBoard("A QU/C D"))
	assert.Equal(t, [][]string{{"A", "B"}}, parseBoard("A  B/ /"))
}

func TestRenderWordColumns(t *testing.T) {
	assert.Contains(t, renderWordColumns(nil, 3), "no words")

	out := renderWordColumns([]string{"ONE", "TWO", "SIX", "TEN"}, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ONE")
	assert.Contains(t, lines[0], "TEN")
	assert.Contains(t, lines[2], "SIX")
}
