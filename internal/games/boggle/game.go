// Package boggle implements the Boggle word game: dice on a square grid,
// a click-driven selection state machine, and its arcade adapter.
package boggle

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boggle/internal/config"
	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/lexicon"
	"github.com/vovakirdan/tui-boggle/internal/registry"
)

// Game adapts the Machine to registry.Game.
type Game struct {
	variant string
	title   string
	cfg     config.BoggleConfig
	rng     *rand.Rand
	logger  *log.Logger

	board   *Board
	machine *Machine
	layout  Layout
	cursor  Pos

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables for config, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	words            *lexicon.Lexicon
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the word-rule preset applied on Reset.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// SetLexicon sets the dictionary used by new games. Without it the
// embedded word list is used.
func SetLexicon(l *lexicon.Lexicon) {
	words = l
}

// SetLogger sets the logger engine events are written to.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a game of the given variant.
func New(variant string) *Game {
	title := "Boggle"
	if cfg, err := config.Default(variant); err == nil {
		title = cfg.Title
	}
	return &Game{variant: variant, title: title}
}

func init() {
	for _, variant := range config.Variants() {
		registry.Register(variant, func() registry.Game {
			return New(variant)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new game on a freshly shaken board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.logger = logger.With("game", g.variant)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	bc, err := config.Load(g.variant, configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
	}
	config.ApplyPreset(&bc, difficultyPreset)
	g.cfg = bc
	if bc.Title != "" {
		g.title = bc.Title
	}

	board, err := g.buildBoard()
	if err != nil {
		// Config validation makes this unreachable for loaded configs.
		g.logger.Error("cannot build board, using built-in dice", "err", err)
		g.cfg.Dice = nil
		g.cfg.Board = config.BoardConfig{Rows: 4, Cols: 4}
		board, _ = g.buildBoard()
	}
	g.board = board
	g.board.Reshuffle(g.rng)

	g.layout = g.buildLayout()
	g.cursor = Pos{}

	lex := words
	if lex == nil {
		lex = lexicon.Embedded()
	}
	g.machine = NewMachine(g.board.Grid, g.board, lex, g.rng,
		WithPalette(g.palette()),
		WithMinWordLength(g.cfg.Rules.MinWordLength),
		WithLogger(g.logger),
	)

	g.logger.Debug("new game", "seed", cfg.Seed, "board", g.board.Letters())
	g.checkScreenSize()
}

// buildBoard creates the dice and grid from the config.
func (g *Game) buildBoard() (*Board, error) {
	faces := g.cfg.Dice
	if len(faces) == 0 {
		faces = builtinDice(g.cfg.Board.Rows * g.cfg.Board.Cols)
	}
	dice, err := NewDice(faces)
	if err != nil {
		return nil, err
	}
	text, fill, err := g.cfg.Colors.Default.Parse()
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(g.cfg.Board.Rows, g.cfg.Board.Cols, dice, ColorPair{Text: text, Fill: fill})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.variant, err)
	}
	return NewBoard(grid), nil
}

// builtinDice picks the built-in set matching a board of n cells.
func builtinDice(n int) [][]string {
	if n == len(BigDice()) {
		return BigDice()
	}
	return ClassicDice()
}

func (g *Game) buildLayout() Layout {
	l := g.cfg.Layout
	return Layout{
		XInset: l.XInset,
		YInset: l.YInset,
		CellW:  l.CellWidth,
		CellH:  l.CellHeight,
		Rows:   g.board.Rows(),
		Cols:   g.board.Cols(),
		Reset:  l.Reset,
		Exit:   l.Exit,
	}.WithDefaults()
}

func (g *Game) palette() Palette {
	p := DefaultPalette()
	if text, fill, err := g.cfg.Colors.Current.Parse(); err == nil {
		p.Current = ColorPair{Text: text, Fill: fill}
	}
	if text, fill, err := g.cfg.Colors.Settled.Parse(); err == nil {
		p.Settled = ColorPair{Text: text, Fill: fill}
	}
	return p
}

// checkScreenSize checks if the screen is large enough to show every
// clickable region.
func (g *Game) checkScreenSize() {
	grid := g.layout.GridRect()
	minW := core.Max(grid.Right(), g.layout.Exit.Right()) + 1
	minH := core.Max(grid.Bottom(), core.Max(g.layout.Reset.Bottom(), g.layout.Exit.Bottom())) + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step feeds the frame's input to the machine: keyboard actions first,
// then clicks in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.machine.Over() {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range g.keyboardEvents(in) {
		g.handle(ev)
	}
	for _, p := range in.Clicks {
		g.handle(g.layout.Resolve(p))
	}

	return core.StepResult{State: g.State()}
}

// keyboardEvents moves the cursor and turns key actions into events.
func (g *Game) keyboardEvents(in core.InputFrame) []Event {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	var events []Event
	if in.Has(core.ActionConfirm) {
		events = append(events, CellClicked(g.cursor.Row, g.cursor.Col))
	}
	if in.Has(core.ActionBack) {
		events = append(events, Miscellaneous())
	}
	if in.Has(core.ActionReset) {
		events = append(events, ResetClicked())
	}
	if in.Has(core.ActionQuit) {
		events = append(events, ExitClicked())
	}
	return events
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, g.board.Rows()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, g.board.Cols()-1)
}

func (g *Game) handle(ev Event) Result {
	res := g.machine.Handle(ev)
	if ev.Kind == EventCell && res.Outcome != OutcomeIgnored {
		g.cursor = Pos{Row: ev.Row, Col: ev.Col}
	}
	return res
}

// Handle applies one already-resolved event. Used by tests and replays.
func (g *Game) Handle(ev Event) Result {
	return g.handle(ev)
}

// Board returns the board being played.
func (g *Game) Board() *Board {
	return g.board
}

// Layout returns the screen layout used for rendering and hit-testing.
func (g *Game) Layout() Layout {
	return g.layout
}

// Found returns the words found so far.
func (g *Game) Found() []string {
	return g.machine.Found()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    len(g.machine.found),
		GameOver: g.machine.Over(),
	}
}
