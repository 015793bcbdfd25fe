package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boggle/internal/config"
	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

const menuBanner = "BOGGLE"

var (
	bannerDieStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("153")).Bold(true).Padding(0, 1)
	menuRowStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).PaddingLeft(2)
	menuInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem is one board variant in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Rows   int // 0 when the variant has no board config
	Cols   int
	MinLen int
	Best   int // most words found in one game
	Games  int // games recorded
}

// Board describes the grid and word rule, e.g. "4x4, 3+ letters".
func (it MenuItem) Board() string {
	if it.Rows == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d, %d+ letters", it.Cols, it.Rows, it.MinLen)
}

// Record describes the stored results, e.g. "best 12 words in 5 games".
func (it MenuItem) Record() string {
	if it.Games == 0 {
		return "not played yet"
	}
	return fmt.Sprintf("best %d words in %d games", it.Best, it.Games)
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered variant with its board and record.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, menuItem(g, store))
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func menuItem(g registry.GameInfo, store *storage.Store) MenuItem {
	item := MenuItem{GameID: g.ID, Title: g.Title}
	if bc, err := config.Default(g.ID); err == nil {
		item.Rows, item.Cols = bc.Board.Rows, bc.Board.Cols
		item.MinLen = bc.Rules.MinWordLength
	}
	if store != nil {
		if stats, err := store.GetGameStats(g.ID); err == nil {
			item.Best, item.Games = stats.HighScore, stats.GamesCount
		}
	}
	return item
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) > 0 {
			picked := m.items[m.cursor]
			m.selected = &picked
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	dice := make([]string, 0, len(menuBanner))
	for _, r := range menuBanner {
		dice = append(dice, bannerDieStyle.Render(string(r)))
	}

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, len(it.Title))
	}
	rows := make([]string, len(m.items))
	for i, it := range m.items {
		line := fmt.Sprintf("%-*s  %-16s  %s", titleW, it.Title, it.Board(), menuInfoStyle.Render(it.Record()))
		if i == m.cursor {
			rows[i] = menuPickStyle.Render("> " + line)
		} else {
			rows[i] = menuRowStyle.Render("  " + line)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, dice...),
		"",
		"Pick a board",
		"",
		strings.Join(rows, "\n"),
		"",
		helpStyle.Render("↑/↓ move  enter play  tab best games  q quit"),
	)
	return lipgloss.Place(max(m.width, lipgloss.Width(body)), max(m.height, lipgloss.Height(body)),
		lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the picked item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the picker and reports what the user chose.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
