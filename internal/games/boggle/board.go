package boggle

import "github.com/vovakirdan/tui-boggle/internal/core"

// Display receives everything the engine wants shown. The engine never
// reads display state back.
type Display interface {
	SetCell(row, col int, glyph string, text, fill core.Color)
	ResetCellColors()
	SetLowerText(text string) // word in progress
	SetSideText(text string)  // found words
	SetUpperText(text string) // status line
}

// Board is a Grid plus the three text regions drawn around it.
type Board struct {
	*Grid
	upper string
	lower string
	side  string
}

// NewBoard wraps g.
func NewBoard(g *Grid) *Board {
	return &Board{Grid: g}
}

// SetCell implements Display.
func (b *Board) SetCell(row, col int, glyph string, text, fill core.Color) {
	b.HighlightCell(row, col, glyph, text, fill)
}

// ResetCellColors implements Display.
func (b *Board) ResetCellColors() {
	b.ResetAllCellColors()
}

// SetLowerText implements Display.
func (b *Board) SetLowerText(text string) { b.lower = text }

// SetSideText implements Display.
func (b *Board) SetSideText(text string) { b.side = text }

// SetUpperText implements Display.
func (b *Board) SetUpperText(text string) { b.upper = text }

// LowerText returns the word-in-progress region.
func (b *Board) LowerText() string { return b.lower }

// SideText returns the found-words region.
func (b *Board) SideText() string { return b.side }

// UpperText returns the status region.
func (b *Board) UpperText() string { return b.upper }
