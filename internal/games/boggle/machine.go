package boggle

import (
	"io"
	"math/rand"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

// State is the turn state of a Machine.
type State int

const (
	StateIdle      State = iota // no cell selected
	StateSelecting              // path non-empty, last cell is the head
	StateOver                   // exit pressed; every later event is ignored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome says what an event did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // no state change
	OutcomeStarted                 // first cell of a turn selected
	OutcomeExtended                // adjacent unused cell appended
	OutcomeAccepted                // head re-clicked, word added to found words
	OutcomeRejected                // head re-clicked, word refused; turn reset
	OutcomeAborted                 // illegal cell or stray click; turn reset
	OutcomeReset                   // new game on a reshuffled board
	OutcomeExit                    // game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStarted:
		return "started"
	case OutcomeExtended:
		return "extended"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAborted:
		return "aborted"
	case OutcomeReset:
		return "reset"
	case OutcomeExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Reasons a commit is refused.
const (
	ReasonTooShort     = "too short"
	ReasonNotAWord     = "not a word"
	ReasonAlreadyFound = "already found"
)

// Result is returned by Machine.Handle.
type Result struct {
	Outcome Outcome
	Word    string // word spelled by the path, for commits
	Reason  string // set for OutcomeRejected
}

// WordChecker is the lexicon as seen by the Machine.
type WordChecker interface {
	Contains(word string) bool
}

// Palette holds the color pairs the Machine paints cells with.
type Palette struct {
	Current ColorPair // the head of the path
	Settled ColorPair // earlier cells of the path
}

// Option configures a Machine.
type Option func(*Machine)

// WithPalette overrides the highlight colors.
func WithPalette(p Palette) Option {
	return func(m *Machine) { m.palette = p }
}

// WithMinWordLength sets the shortest word accepted on commit.
func WithMinWordLength(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.minLen = n
		}
	}
}

// WithLogger sets the logger turn events are written to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// Machine interprets selection events against the grid. It owns the
// selection path and the found-word list; the Display only mirrors them.
type Machine struct {
	grid    *Grid
	display Display
	words   WordChecker
	rng     *rand.Rand
	palette Palette
	minLen  int
	logger  *log.Logger

	state State
	path  []*Die
	found []string
	seen  map[string]struct{}
}

// DefaultPalette is blue on light blue for the head and green on light
// green for the rest of the path.
func DefaultPalette() Palette {
	return Palette{
		Current: ColorPair{Text: core.ColorBlue, Fill: core.ColorLightBlue},
		Settled: ColorPair{Text: core.ColorGreen, Fill: core.ColorLightGreen},
	}
}

// NewMachine creates an idle machine. rng is used for reshuffles on reset.
func NewMachine(grid *Grid, display Display, words WordChecker, rng *rand.Rand, opts ...Option) *Machine {
	m := &Machine{
		grid:    grid,
		display: display,
		words:   words,
		rng:     rng,
		palette: DefaultPalette(),
		minLen:  3,
		logger:  log.New(io.Discard),
		seen:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Over reports whether exit has been pressed.
func (m *Machine) Over() bool { return m.state == StateOver }

// Found returns the accepted words in the order they were found.
func (m *Machine) Found() []string { return slices.Clone(m.found) }

// Word returns the word spelled by the current path.
func (m *Machine) Word() string {
	var b strings.Builder
	for _, d := range m.path {
		b.WriteString(d.Face())
	}
	return b.String()
}

// Path returns the cells of the current path in selection order.
func (m *Machine) Path() []Pos {
	out := make([]Pos, 0, len(m.path))
	for _, d := range m.path {
		p, _ := m.grid.CoordinatesOf(d)
		out = append(out, p)
	}
	return out
}

// Handle applies one event and reports what it did.
func (m *Machine) Handle(ev Event) Result {
	if m.state == StateOver {
		return Result{Outcome: OutcomeIgnored}
	}

	switch ev.Kind {
	case EventExit:
		m.state = StateOver
		m.logger.Debug("game over", "found", len(m.found))
		return Result{Outcome: OutcomeExit}

	case EventReset:
		m.resetGame()
		return Result{Outcome: OutcomeReset}

	case EventCell:
		die := m.grid.DieAt(ev.Row, ev.Col)
		if die == nil {
			// Geometry never produces this; treat it as a stray click.
			return m.Handle(Miscellaneous())
		}
		if m.state == StateIdle {
			return m.start(die)
		}
		return m.selectNext(die)

	default:
		if m.state == StateSelecting {
			m.resetTurn()
			m.logger.Debug("turn aborted", "reason", "outside click")
			return Result{Outcome: OutcomeAborted}
		}
		return Result{Outcome: OutcomeIgnored}
	}
}

func (m *Machine) start(die *Die) Result {
	m.path = append(m.path[:0], die)
	m.paint(die, m.palette.Current)
	m.display.SetLowerText(m.Word())
	m.state = StateSelecting
	return Result{Outcome: OutcomeStarted, Word: m.Word()}
}

func (m *Machine) selectNext(die *Die) Result {
	head := m.path[len(m.path)-1]

	if die == head {
		return m.commit()
	}

	if m.inPath(die) || !m.adjacent(head, die) {
		word := m.Word()
		m.resetTurn()
		m.logger.Debug("turn aborted", "word", word, "reason", "illegal cell")
		return Result{Outcome: OutcomeAborted, Word: word}
	}

	m.paint(head, m.palette.Settled)
	m.path = append(m.path, die)
	m.paint(die, m.palette.Current)
	m.display.SetLowerText(m.Word())
	return Result{Outcome: OutcomeExtended, Word: m.Word()}
}

func (m *Machine) commit() Result {
	word := m.Word()
	reason := m.rejectReason(word)
	m.resetTurn()

	if reason != "" {
		m.logger.Debug("word rejected", "word", word, "reason", reason)
		return Result{Outcome: OutcomeRejected, Word: word, Reason: reason}
	}

	m.found = append(m.found, word)
	m.seen[word] = struct{}{}
	m.display.SetSideText(strings.Join(m.found, "\n"))
	m.logger.Debug("word accepted", "word", word, "found", len(m.found))
	return Result{Outcome: OutcomeAccepted, Word: word}
}

// rejectReason returns "" when word may be added to the found list.
// Length counts letters, so a QU face counts as two.
func (m *Machine) rejectReason(word string) string {
	if len([]rune(word)) < m.minLen {
		return ReasonTooShort
	}
	if m.words == nil || !m.words.Contains(word) {
		return ReasonNotAWord
	}
	if _, ok := m.seen[word]; ok {
		return ReasonAlreadyFound
	}
	return ""
}

func (m *Machine) resetTurn() {
	m.path = m.path[:0]
	m.display.ResetCellColors()
	m.display.SetLowerText("")
	m.state = StateIdle
}

func (m *Machine) resetGame() {
	m.resetTurn()
	m.found = nil
	m.seen = make(map[string]struct{})
	m.display.SetSideText("")
	m.display.SetUpperText("")
	m.grid.Reshuffle(m.rng)
	m.logger.Debug("board reshuffled", "board", strings.TrimSpace(m.grid.String()))
}

func (m *Machine) inPath(die *Die) bool {
	for _, d := range m.path {
		if d == die {
			return true
		}
	}
	return false
}

func (m *Machine) adjacent(a, b *Die) bool {
	pa, okA := m.grid.CoordinatesOf(a)
	pb, okB := m.grid.CoordinatesOf(b)
	return okA && okB && Adjacent(pa, pb)
}

func (m *Machine) paint(die *Die, colors ColorPair) {
	p, ok := m.grid.CoordinatesOf(die)
	if !ok {
		return
	}
	m.display.SetCell(p.Row, p.Col, die.Face(), colors.Text, colors.Fill)
}
