package boggle

import "github.com/vovakirdan/tui-boggle/internal/core"

// EventKind classifies a resolved input.
type EventKind int

const (
	EventMiscellaneous EventKind = iota // inside the window, outside grid and buttons
	EventCell
	EventReset
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventMiscellaneous:
		return "miscellaneous"
	case EventCell:
		return "cell"
	case EventReset:
		return "reset"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is one input for the Machine.
type Event struct {
	Kind     EventKind
	Row, Col int // set for EventCell
}

// CellClicked is a selection of (row, col).
func CellClicked(row, col int) Event {
	return Event{Kind: EventCell, Row: row, Col: col}
}

// ResetClicked is a press of the reset control.
func ResetClicked() Event { return Event{Kind: EventReset} }

// ExitClicked is a press of the exit control.
func ExitClicked() Event { return Event{Kind: EventExit} }

// Miscellaneous is a click that hit nothing.
func Miscellaneous() Event { return Event{Kind: EventMiscellaneous} }

// Layout is the on-screen placement of the grid and the two buttons, in
// terminal cells. Render and Resolve share it.
type Layout struct {
	XInset, YInset int
	CellW, CellH   int
	Rows, Cols     int
	Reset          core.Rect
	Exit           core.Rect
}

// DefaultLayout places a rows x cols grid of 5x3 cells and puts the buttons
// under it.
func DefaultLayout(rows, cols int) Layout {
	return Layout{
		XInset: 4,
		YInset: 3,
		CellW:  5,
		CellH:  3,
		Rows:   rows,
		Cols:   cols,
	}.WithDefaults()
}

// WithDefaults fills in missing cell sizes and button rectangles.
func (l Layout) WithDefaults() Layout {
	if l.CellW <= 0 {
		l.CellW = 5
	}
	if l.CellH <= 0 {
		l.CellH = 3
	}
	grid := l.GridRect()
	buttonY := grid.Bottom() + 2
	if l.Reset.Empty() {
		l.Reset = core.NewRect(grid.X, buttonY, 9, 3)
	}
	if l.Exit.Empty() {
		l.Exit = core.NewRect(l.Reset.Right()+2, l.Reset.Y, 8, 3)
	}
	return l
}

// GridRect is the area covered by the cells.
func (l Layout) GridRect() core.Rect {
	return core.NewRect(l.XInset, l.YInset, l.Cols*l.CellW, l.Rows*l.CellH)
}

// CellRect is the area covered by (row, col).
func (l Layout) CellRect(row, col int) core.Rect {
	return core.NewRect(l.XInset+col*l.CellW, l.YInset+row*l.CellH, l.CellW, l.CellH)
}

// CellBody is the drawn part of (row, col). The rightmost column of a
// cell wider than one is left blank to separate it from its neighbor.
func (l Layout) CellBody(row, col int) core.Rect {
	r := l.CellRect(row, col)
	if r.W > 1 {
		r.W--
	}
	return r
}

// Position converts p to (row, col). Row or column is -1 when p is above
// or left of the grid; values past the far edge are not clamped.
func (l Layout) Position(p core.Point) (int, int) {
	row, col := -1, -1
	if p.Y >= l.YInset && l.CellH > 0 {
		row = (p.Y - l.YInset) / l.CellH
	}
	if p.X >= l.XInset && l.CellW > 0 {
		col = (p.X - l.XInset) / l.CellW
	}
	return row, col
}

// InGrid reports whether p falls on a cell.
func (l Layout) InGrid(p core.Point) bool {
	return l.GridRect().ContainsPoint(p)
}

// Resolve maps a raw click to an Event. Exit wins over reset, reset over
// the grid.
func (l Layout) Resolve(p core.Point) Event {
	switch {
	case l.Exit.ContainsPoint(p):
		return ExitClicked()
	case l.Reset.ContainsPoint(p):
		return ResetClicked()
	case l.InGrid(p):
		row, col := l.Position(p)
		if row < 0 || col < 0 || !l.CellBody(row, col).ContainsPoint(p) {
			return Miscellaneous()
		}
		return CellClicked(row, col)
	default:
		return Miscellaneous()
	}
}
