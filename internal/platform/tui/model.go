package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the UI layer.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// resultSource is implemented by games that can describe a finished game
// for the results store.
type resultSource interface {
	Found() []string
	BoardString() string
}

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	newBestStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// GameModel is the Bubble Tea model for one running game. Input is
// delivered to the game as soon as it arrives; there is no tick loop.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	gameState   core.GameState
	fromMenu    bool // Back returns to the menu instead of quitting
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for current game over
	newBest     bool // The saved result beat every earlier one
}

// NewGameModel creates a model for game. When fromMenu is set, leaving a
// finished game returns to the menu.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, fromMenu bool) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		fromMenu:  fromMenu,
	}
	m.help.Width = cfg.ScreenW

	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return m
}

// gameHeight leaves the last row for the help line.
func gameHeight(h int) int {
	return core.Max(h-1, 0)
}

func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.gameState.GameOver {
		switch {
		case key.Matches(msg, keys.NewBoard):
			m.restart()
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.End):
			if m.fromMenu {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// The board is hidden behind full help.
	if m.help.ShowAll {
		return m, nil
	}

	frame := core.NewInputFrame()
	m.keyMapper.MapKeyToFrame(msg, &frame)
	if frame.Empty() {
		return m, nil
	}
	m.step(frame)
	return m, nil
}

// handleMouse forwards left-button presses to the game while the board
// is on screen.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver || m.help.ShowAll {
		return m, nil
	}
	frame := core.NewInputFrame()
	if m.keyMapper.MapMouseToFrame(msg, &frame) {
		m.step(frame)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	// Keep the board when the game can adapt; otherwise start over.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	m.gameState = m.game.State()

	return m, nil
}

// step runs one input frame through the game.
func (m *GameModel) step(frame core.InputFrame) {
	result := m.game.Step(frame)
	m.gameState = result.State

	// Save result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}
}

// restart begins a new game on a new board.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.resultSaved = false
	m.newBest = false
}

// saveResult records the finished game if any word was found.
func (m *GameModel) saveResult() {
	logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		m.newBest = m.gameState.Score > best
	}

	r := storage.Result{GameID: m.game.ID(), Score: m.gameState.Score}
	if src, ok := m.game.(resultSource); ok {
		r.Words = src.Found()
		r.Board = src.BoardString()
	}
	if _, err := m.store.SaveResult(r); err != nil {
		// Best-effort save, the player keeps going regardless
		logger.Warn("could not save result", "game", r.GameID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".boggle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var helpLine string
	if m.gameState.GameOver {
		helpLine = m.help.ShortHelpView([]key.Binding{
			m.keyMapper.Keys().NewBoard, m.keyMapper.Keys().Back, m.keyMapper.Keys().Quit,
		})
		if m.newBest {
			helpLine = newBestStyle.Render("New best!") + "  " + helpLine
		}
	} else {
		helpLine = m.help.View(m.keyMapper.Keys())
	}
	if m.help.ShowAll && !m.gameState.GameOver {
		// Full help replaces the board until toggled off.
		return helpLine
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpLine)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cells are picked by clicking
	)

	_, err := p.Run()
	return err
}
