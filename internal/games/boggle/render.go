package boggle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

const sideGap = 4 // columns between the grid and the found-words list

// Render draws the board at the layout's absolute positions, so that what
// is drawn is exactly what Resolve hit-tests.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderLower(dst)
	g.renderButtons(dst)
	g.renderSide(dst)

	if g.machine.Over() {
		g.renderGameOver(dst)
	}
}

// renderTooSmall frames the window and shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	if dst.Width() >= 2 && dst.Height() >= 2 {
		dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))
	}
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title line, the status line under it and a rule
// above the grid.
func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.layout.GridRect()
	dst.DrawTextColor(grid.X, 0, strings.ToUpper(g.title), core.ColorBrightYellow, core.ColorDefault)

	count := fmt.Sprintf("words: %d", len(g.machine.found))
	dst.DrawText(core.Max(grid.Right()-len(count), grid.X+len(g.title)+2), 0, count)

	if g.board.UpperText() != "" && grid.Y > 1 {
		dst.DrawText(grid.X, 1, g.board.UpperText())
	}
	if grid.Y > 2 {
		dst.DrawHLine(grid.X, grid.Y-1, grid.W, '─')
	}
}

// renderGrid draws every cell as a filled block with its face centered.
func (g *Game) renderGrid(dst *core.Screen) {
	for row := range g.board.Rows() {
		for col := range g.board.Cols() {
			cell := g.board.Cell(row, col)
			body := g.layout.CellBody(row, col)
			dst.FillRect(body, ' ', cell.Text, cell.Fill)

			cx := body.X + (body.W-len([]rune(cell.Glyph)))/2
			cy := body.Y + body.H/2
			dst.DrawTextColor(cx, cy, cell.Glyph, cell.Text, cell.Fill)

			if (Pos{Row: row, Col: col}) == g.cursor && !g.machine.Over() {
				dst.SetCell(body.X, cy, core.Cell{Rune: '>', Fg: core.ColorYellow, Bg: cell.Fill})
			}
		}
	}
}

// renderLower draws the word being built on the row under the grid.
func (g *Game) renderLower(dst *core.Screen) {
	grid := g.layout.GridRect()
	if word := g.board.LowerText(); word != "" {
		dst.DrawTextColor(grid.X, grid.Bottom(), word, core.ColorBrightWhite, core.ColorDefault)
	}
}

// renderButtons draws the reset and exit controls.
func (g *Game) renderButtons(dst *core.Screen) {
	drawButton(dst, g.layout.Reset, "Reset", core.ColorCyan)
	drawButton(dst, g.layout.Exit, "Exit", core.ColorRed)
}

func drawButton(dst *core.Screen, r core.Rect, label string, fg core.Color) {
	if r.Empty() {
		return
	}
	if r.H >= 3 && r.W >= 3 {
		dst.DrawBoxColor(r, fg, core.ColorDefault)
	}
	cx, cy := r.Center()
	dst.DrawTextColor(cx-len(label)/2, cy, label, fg, core.ColorDefault)
}

// renderSide lists the found words to the right of the grid, wrapping
// into further columns when they do not fit.
func (g *Game) renderSide(dst *core.Screen) {
	text := g.board.SideText()
	if text == "" {
		return
	}
	grid := g.layout.GridRect()
	x := core.Max(grid.Right(), g.layout.Exit.Right()) + sideGap
	top := grid.Y
	height := core.Max(dst.Height()-top-1, 1)

	dst.DrawTextColor(x, top-1, "Found", core.ColorGray, core.ColorDefault)

	words := strings.Split(text, "\n")
	width := 0
	for _, w := range words {
		width = core.Max(width, len([]rune(w)))
	}
	for i, w := range words {
		col := i / height
		dst.DrawText(x+col*(width+2), top+i%height, w)
	}
}

// renderGameOver draws the final tally over the status line.
func (g *Game) renderGameOver(dst *core.Screen) {
	grid := g.layout.GridRect()
	msg := fmt.Sprintf("GAME OVER  %d words  R: new game", len(g.machine.found))
	dst.DrawTextColor(grid.X, 1, strings.Repeat(" ", core.Max(grid.W, len(msg))), core.ColorDefault, core.ColorDefault)
	dst.DrawTextColor(grid.X, 1, msg, core.ColorBrightRed, core.ColorDefault)
}
