package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

const (
	boardRunLimit   = 50 // Runs loaded per variant
	statsPanelWidth = 24
	wideBoardWidth  = 76 // Below this the stats panel moves under the table
	detailMinWidth  = 46 // Below this only rank, score and date are shown
)

// scoreboardExit records how the player left the scoreboard.
type scoreboardExit int

const (
	boardOpen scoreboardExit = iota
	boardBack
	boardQuit
)

// BoardKeyMap defines the scoreboard key bindings.
type BoardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBoardKeyMap returns the default scoreboard bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Variant: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "variant")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded runs per variant.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    *storage.Store
	runs     []storage.ScoreEntry
	stats    *storage.GameStats
	board    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	exit     scoreboardExit
}

// NewScoreboardModel creates a scoreboard showing the first registered variant.
// store may be nil, in which case every variant is empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     DefaultBoardKeyMap(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.board = newBoardTable(width, height)
	m.reload()
	return m
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	boardStatLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// boardColumns picks the table columns that fit width.
func boardColumns(width int) []table.Column {
	if width < detailMinWidth {
		return []table.Column{
			{Title: "#", Width: 3},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 12},
		}
	}
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Score", Width: 7},
		{Title: "Words", Width: 6},
		{Title: "Streak", Width: 7},
		{Title: "Lvl", Width: 4},
		{Title: "Date", Width: 12},
	}
}

func newBoardTable(width, height int) table.Model {
	avail := width - 4
	if width >= wideBoardWidth {
		avail -= statsPanelWidth + 4
	}

	t := table.New(
		table.WithColumns(boardColumns(avail)),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22"))
	t.SetStyles(s)
	return t
}

// reload fetches runs and aggregates for the current variant.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopScores(id, boardRunLimit); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	detail := len(m.board.Columns()) > 3
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		date := r.CreatedAt.Format("Jan 02 15:04")
		row := table.Row{strconv.Itoa(i + 1), strconv.Itoa(r.Score)}
		if detail {
			row = append(row, strconv.Itoa(r.Words), strconv.Itoa(r.BestStreak), strconv.Itoa(r.Level))
		}
		rows = append(rows, append(row, date))
	}
	m.board.SetRows(rows)
	m.board.GotoTop()
}

// switchVariant moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) switchVariant(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
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
			m.exit = boardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = boardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Variant):
			delta := 1
			if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
				delta = -1
			}
			m.switchVariant(delta)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.board = newBoardTable(msg.Width, msg.Height)
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.exit != boardOpen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	runs := boardFrameStyle.Render(m.runsView())
	stats := boardFrameStyle.Width(statsPanelWidth).Render(m.statsView())
	if m.width >= wideBoardWidth {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", stats)))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, stats))
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the variant switcher, collapsing to "< title >" when the
// titles do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return boardTabStyle.Render("no variants")
	}
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = boardActiveTab.Render(v.Title)
		} else {
			parts[i] = boardTabStyle.Render(v.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-2 {
		return boardActiveTab.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) runsView() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("No runs recorded yet.\nSpell some words to get on the board!")
	}
	return m.board.View()
}

// statsView summarizes every recorded run of the current variant.
func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardStatLabel.Render("No statistics")
	}
	type stat struct{ label, value string }
	rows := []stat{
		{"Best", strconv.Itoa(m.stats.HighScore)},
		{"Runs", strconv.Itoa(m.stats.GamesCount)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
		{"Words", strconv.FormatInt(m.stats.TotalWords, 10)},
		{"Best streak", strconv.Itoa(m.stats.BestStreak)},
		{"Max level", strconv.Itoa(m.stats.MaxLevel)},
	}
	if !m.stats.LastPlayed.IsZero() {
		rows = append(rows, stat{"Last", m.stats.LastPlayed.Format("Jan 02")})
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(boardStatLabel.Render(fmt.Sprintf("%-12s", r.label)))
		b.WriteString(r.value)
	}
	return b.String()
}

// Variant returns the ID of the variant on display.
func (m ScoreboardModel) Variant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the player went back to the menu, false if they quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.exit == boardBack, nil
}
