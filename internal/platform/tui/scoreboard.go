package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

const (
	maxResults       = 100 // results loaded per variant
	minWidthForSplit = 72  // below this the replay pane goes under the table
	wordRows         = 8   // found words per column in the replay pane
)

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	sbPaneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbFaceStyle   = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).Bold(true)
	sbMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev game")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next game")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next board")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev board")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the best games of each variant. The highlighted
// game is replayed beside the table: its board and the words found on it.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	results   []storage.Result
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	height := m.height - 9
	if m.width < minWidthForSplit {
		height = (m.height - 9) / 2
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Words", Width: 6},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches the results of the current variant into the table.
func (m *ScoreboardModel) load() {
	m.results = nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		results, err := m.store.TopResults(id, maxResults)
		if err != nil {
			logger.Warn("could not load results", "game", id, "error", err)
		}
		m.results = results
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the highlighted result, if any.
func (m ScoreboardModel) Selected() (storage.Result, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return storage.Result{}, false
	}
	return m.results[i], true
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.newTable()
		m.load()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchVariant(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.variants)) % len(m.variants)
	m.load()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(sbTitleStyle.Render(centerText("BEST GAMES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	list := sbPaneStyle.Render(m.renderTable())
	replay := sbPaneStyle.Render(m.renderReplay())
	if m.width >= minWidthForSplit {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", replay))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, list, replay))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = sbActiveStyle.Render(v.Title)
		} else {
			tabs[i] = sbTabStyle.Render(v.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderTable() string {
	if len(m.results) == 0 {
		return sbMutedStyle.Render("No games recorded yet.\nFind a word to get on the board!")
	}
	return m.table.View()
}

// renderReplay draws the highlighted game's board with its words beside it.
func (m ScoreboardModel) renderReplay() string {
	r, ok := m.Selected()
	if !ok {
		return sbMutedStyle.Render("Nothing to show")
	}

	board := renderBoardGrid(parseBoard(r.Board))
	if board == "" {
		board = sbMutedStyle.Render("(no board saved)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", renderWordColumns(r.Words, wordRows))
}

// parseBoard splits a stored board ("A B/C QU") into rows of faces.
func parseBoard(s string) [][]string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var rows [][]string
	for _, line := range strings.Split(s, "/") {
		if faces := strings.Fields(line); len(faces) > 0 {
			rows = append(rows, faces)
		}
	}
	return rows
}

func renderBoardGrid(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, face := range row {
			cells[j] = sbFaceStyle.Render(strings.ToUpper(face[:1]) + strings.ToLower(face[1:]))
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return strings.Join(lines, "\n")
}

// renderWordColumns lays words out top to bottom, perCol to a column.
func renderWordColumns(words []string, perCol int) string {
	if len(words) == 0 {
		return sbMutedStyle.Render("no words")
	}
	var cols []string
	for start := 0; start < len(words); start += perCol {
		end := min(start+perCol, len(words))
		cols = append(cols, strings.Join(words[start:end], "\n"))
	}
	for i := 0; i < len(cols)-1; i++ {
		cols[i] = lipgloss.NewStyle().PaddingRight(2).Render(cols[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the user wants to go back to the menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
