package boggle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boggle/internal/config"
	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/lexicon"
	"github.com/vovakirdan/tui-boggle/internal/registry"
)

func newTestGame(t *testing.T, variant string, seed int64) *Game {
	t.Helper()
	g := New(variant)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func clickCell(g *Game, row, col int) core.StepResult {
	x, y := g.Layout().CellRect(row, col).Center()
	in := core.NewInputFrame()
	in.Click(x, y)
	return g.Step(in)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{config.VariantClassic, config.VariantBig} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameBoardSize(t *testing.T) {
	classic := newTestGame(t, config.VariantClassic, 1)
	assert.Equal(t, 4, classic.Board().Rows())
	assert.Equal(t, 4, classic.Board().Cols())
	assert.Equal(t, "Boggle", classic.Title())

	big := newTestGame(t, config.VariantBig, 1)
	assert.Equal(t, 5, big.Board().Rows())
	assert.Len(t, big.Board().Dice(), 25)
	assert.Equal(t, "Big Boggle", big.Title())
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(t, config.VariantClassic, 12345)
	b := newTestGame(t, config.VariantClassic, 12345)
	assert.Equal(t, a.Snapshot().Board, b.Snapshot().Board)

	clickCell(a, 0, 0)
	clickCell(b, 0, 0)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestGameClickSelectsCell(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 7)
	face := g.Board().DieAt(1, 2).Face()

	clickCell(g, 1, 2)
	snap := g.Snapshot()
	assert.Equal(t, []Pos{{1, 2}}, snap.Path)
	assert.Equal(t, face, snap.Word)
	assert.Equal(t, face, g.Board().LowerText())

	// Re-click commits a one-die word, which is too short.
	res := clickCell(g, 1, 2)
	assert.Empty(t, g.Snapshot().Path)
	assert.Equal(t, 0, res.State.Score)
}

func TestGameFindsWord(t *testing.T) {
	lex, err := lexicon.FromWords("CAT")
	require.NoError(t, err)
	SetLexicon(lex)
	t.Cleanup(func() { SetLexicon(nil) })

	g := newTestGame(t, config.VariantClassic, 1)
	// Replace the machine's board with a known one.
	b := NewBoard(fixedGrid(t, testRows))
	g.board = b
	g.machine = NewMachine(b.Grid, b, lex, g.rng)

	clickCell(g, 0, 0)
	clickCell(g, 0, 1)
	clickCell(g, 0, 2)
	res := clickCell(g, 0, 2)

	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, []string{"CAT"}, g.Found())
	assert.False(t, res.State.GameOver)
}

func TestGameExitButton(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 3)

	x, y := g.Layout().Exit.Center()
	in := core.NewInputFrame()
	in.Click(x, y)
	res := g.Step(in)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	before := g.Snapshot()
	clickCell(g, 0, 0)
	assert.Equal(t, before, g.Snapshot())
}

func TestGameResetButton(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 3)

	clickCell(g, 0, 0)
	x, y := g.Layout().Reset.Center()
	in := core.NewInputFrame()
	in.Click(x, y)
	g.Step(in)

	snap := g.Snapshot()
	assert.Empty(t, snap.Path)
	assert.Empty(t, snap.Found)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestGameKeyboard(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 9)

	step := func(actions ...core.Action) core.StepResult {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		return g.Step(in)
	}

	step(core.ActionRight)
	step(core.ActionDown)
	step(core.ActionConfirm)
	assert.Equal(t, []Pos{{1, 1}}, g.Snapshot().Path)

	step(core.ActionRight, core.ActionConfirm)
	assert.Equal(t, []Pos{{1, 1}, {1, 2}}, g.Snapshot().Path)

	step(core.ActionBack)
	assert.Empty(t, g.Snapshot().Path)

	// The cursor stops at the edge.
	for range 10 {
		step(core.ActionUp)
	}
	step(core.ActionConfirm)
	assert.Equal(t, []Pos{{0, 2}}, g.Snapshot().Path)

	res := step(core.ActionQuit)
	assert.True(t, res.State.GameOver)
}

func TestGameTooSmall(t *testing.T) {
	g := New(config.VariantClassic)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	clickCell(g, 0, 0)
	assert.Empty(t, g.Snapshot().Path)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Equal(t, '┌', screen.Get(0, 0))
	assert.Equal(t, '┘', screen.Get(19, 9))
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	clickCell(g, 0, 0)
	assert.Len(t, g.Snapshot().Path, 1)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 4)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.Row(0), "BOGGLE")
	assert.Contains(t, screen.Row(0), "words: 0")

	grid := g.Layout().GridRect()
	assert.Equal(t, '─', screen.Get(grid.X, grid.Y-1))
	assert.Equal(t, '─', screen.Get(grid.Right()-1, grid.Y-1))
	assert.Equal(t, strings.Split(screen.String(), "\n")[0], screen.Row(0))

	_, resetY := g.Layout().Reset.Center()
	assert.Contains(t, screen.Row(resetY), "Reset")
	assert.Contains(t, screen.Row(resetY), "Exit")

	// The first cell shows its face where the layout says it is.
	face := g.Board().DieAt(0, 0).Face()
	r := g.Layout().CellBody(0, 0)
	x := r.X + (r.W-len(face))/2
	assert.Equal(t, rune(face[0]), screen.Get(x, r.Y+r.H/2))
	cell := screen.GetCell(x, r.Y+r.H/2)
	assert.Equal(t, g.Board().Cell(0, 0).Fill, cell.Bg)
}

func TestGameRenderFoundAndOver(t *testing.T) {
	lex, err := lexicon.FromWords("CAT")
	require.NoError(t, err)

	g := newTestGame(t, config.VariantClassic, 1)
	b := NewBoard(fixedGrid(t, testRows))
	g.board = b
	g.machine = NewMachine(b.Grid, b, lex, g.rng)

	for _, p := range []Pos{posC, posA, posT, posT} {
		g.Handle(CellClicked(p.Row, p.Col))
	}
	g.Handle(ExitClicked())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "CAT"))
	assert.Contains(t, screen.String(), "GAME OVER  1 words")
}

func TestSnapshotBoardString(t *testing.T) {
	s := Snapshot{Board: [][]string{{"A", "QU"}, {"C", "D"}}}
	assert.Equal(t, "A QU/C D", s.BoardString())
}
