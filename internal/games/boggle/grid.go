package boggle

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

// Pos addresses a grid cell.
type Pos struct {
	Row, Col int
}

// NotFound is returned by lookups for a die that is not on the board.
var NotFound = Pos{Row: -1, Col: -1}

// Adjacent reports whether a and b are distinct cells at Chebyshev distance 1.
func Adjacent(a, b Pos) bool {
	if a == b {
		return false
	}
	return core.Abs(a.Row-b.Row) <= 1 && core.Abs(a.Col-b.Col) <= 1
}

// ColorPair is the text and fill color of a cell.
type ColorPair struct {
	Text core.Color
	Fill core.Color
}

// Cell is the display state of one grid position.
// Colors are for rendering only; game logic never reads them.
type Cell struct {
	Glyph string
	Text  core.Color
	Fill  core.Color
}

// Grid is a rows x cols board where every cell holds exactly one die.
// Die i of the placement order sits at (i / cols, i % cols).
type Grid struct {
	rows     int
	cols     int
	dice     []*Die
	cells    []Cell
	defaults ColorPair
}

// NewGrid places dice on a rows x cols grid in linear order.
func NewGrid(rows, cols int, dice []*Die, defaults ColorPair) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("boggle: invalid grid size %dx%d", rows, cols)
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		cells:    make([]Cell, rows*cols),
		defaults: defaults,
	}
	if err := g.PlaceDice(dice); err != nil {
		return nil, err
	}
	g.ResetAllCellColors()
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Index returns the linear index of (row, col).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// RowCol returns the cell of linear index i.
func (g *Grid) RowCol(i int) (int, int) {
	return i / g.cols, i % g.cols
}

// InBounds reports whether (row, col) is a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// DieAt returns the die at (row, col), or nil if out of bounds.
func (g *Grid) DieAt(row, col int) *Die {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.dice[g.Index(row, col)]
}

// Dice returns the dice in linear order.
func (g *Grid) Dice() []*Die {
	return slices.Clone(g.dice)
}

// Cell returns the display state of (row, col).
func (g *Grid) Cell(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{}
	}
	return g.cells[g.Index(row, col)]
}

// PlaceDice puts dice[i] at RowCol(i) and shows each die's visible face.
// It must run after every reshuffle.
func (g *Grid) PlaceDice(dice []*Die) error {
	if len(dice) == 0 {
		return ErrNoDice
	}
	if len(dice) != g.rows*g.cols {
		return fmt.Errorf("%w: have %d, need %d", ErrDiceCount, len(dice), g.rows*g.cols)
	}
	g.dice = slices.Clone(dice)
	for i, d := range g.dice {
		g.cells[i].Glyph = d.Face()
	}
	return nil
}

// Reshuffle permutes the dice over the cells, rolls every die, then
// places them. Colors are left alone.
func (g *Grid) Reshuffle(rng *rand.Rand) {
	dice := slices.Clone(g.dice)
	rng.Shuffle(len(dice), func(i, j int) {
		dice[i], dice[j] = dice[j], dice[i]
	})
	for _, d := range dice {
		d.RandomizeFace(rng)
	}
	//nolint:errcheck // Same dice, same count
	g.PlaceDice(dice)
}

// CoordinatesOf finds die by identity. It returns NotFound and false if the
// die is not placed on this grid.
func (g *Grid) CoordinatesOf(die *Die) (Pos, bool) {
	for i, d := range g.dice {
		if d == die {
			r, c := g.RowCol(i)
			return Pos{Row: r, Col: c}, true
		}
	}
	return NotFound, false
}

// HighlightCell sets the glyph and colors shown at (row, col).
func (g *Grid) HighlightCell(row, col int, glyph string, text, fill core.Color) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[g.Index(row, col)] = Cell{Glyph: glyph, Text: text, Fill: fill}
}

// ResetAllCellColors restores the default colors of every cell.
func (g *Grid) ResetAllCellColors() {
	for i := range g.cells {
		g.cells[i].Text = g.defaults.Text
		g.cells[i].Fill = g.defaults.Fill
	}
}

// Letters returns the visible faces row by row.
func (g *Grid) Letters() [][]string {
	out := make([][]string, g.rows)
	for r := range out {
		out[r] = make([]string, g.cols)
		for c := range out[r] {
			out[r][c] = g.dice[g.Index(r, c)].Face()
		}
	}
	return out
}

func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.Letters() {
		fmt.Fprintf(&b, "%d: ", r)
		for _, l := range row {
			fmt.Fprintf(&b, "[%s] ", l)
		}
		b.WriteString("\n")
	}
	return b.String()
}
