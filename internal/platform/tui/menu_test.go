package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boggle/internal/config"
	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
	registry.Register("fake2", func() registry.Game { return &fakeGame{} })
}

func newTestMenu(t *testing.T) MenuModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveResult(storage.Result{GameID: "fake", Score: 4, Words: []string{"CAT", "DOG", "EMU", "YAK"}})
	require.NoError(t, err)

	return NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm, cmd
}

func TestMenuShowsRecord(t *testing.T) {
	m := newTestMenu(t)
	require.Len(t, m.items, 2)
	assert.Equal(t, 4, m.items[0].Best)
	assert.Equal(t, 1, m.items[0].Games)

	view := m.View()
	assert.Contains(t, view, "Pick a board")
	assert.Contains(t, view, "best 4 words in 1 games")
	assert.Contains(t, view, "not played yet")
}

func TestMenuItemDescribesBoard(t *testing.T) {
	classic := menuItem(registry.GameInfo{ID: config.VariantClassic, Title: "Boggle"}, nil)
	assert.Equal(t, "4x4, 3+ letters", classic.Board())

	big := menuItem(registry.GameInfo{ID: config.VariantBig, Title: "Big Boggle"}, nil)
	assert.Equal(t, "5x5, 4+ letters", big.Board())

	fake := menuItem(registry.GameInfo{ID: "fake", Title: "Fake"}, nil)
	assert.Empty(t, fake.Board())
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu(t)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "fake2", m.Selected().GameID)
	assert.False(t, m.IsQuitting())
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := newTestMenu(t)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range len(m.items) + 3 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := newTestMenu(t)
	sb, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, sb.WantsScoreboard())

	q, _ := menuUpdate(t, m, runeKey('q'))
	assert.True(t, q.IsQuitting())
	assert.Empty(t, q.View())

	esc, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, esc.IsQuitting())
}

func TestMenuResize(t *testing.T) {
	m := newTestMenu(t)
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 30, m.Config().ScreenH)
}
