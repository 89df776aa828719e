package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

// variantBlurbs describes each variant under its title in the menu.
var variantBlurbs = map[string]string{
	"wordsnake":          "Walls are deadly. Five words per level.",
	"wordsnake_missions": "Wrap-around field with obstacles. One objective per level.",
}

// MenuItem is one playable variant.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
	Best   int
}

// MenuResult is what the player chose in the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	result    MenuResult
	done      bool
}

// NewMenuModel lists every registered variant with its best score. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, Blurb: variantBlurbs[g.ID]}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionSelect:
			if len(m.items) > 0 {
				return m.finish(MenuResult{GameID: m.items[m.cursor].GameID})
			}
		case MenuActionScoreboard:
			return m.finish(MenuResult{WantsScoreboard: true})
		case MenuActionQuit, MenuActionBack:
			return m.finish(MenuResult{Quit: true})
		}
	}
	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	return m, tea.Quit
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(1, 3)
)

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("W O R D   S N A K E"),
		menuHintStyle.Render("Collect letters, spell words, keep moving"),
		"",
	}
	for i, item := range m.items {
		title := "  " + item.Title
		style := menuItemStyle
		if i == m.cursor {
			title = "> " + item.Title
			style = menuCursorStyle
		}
		best := menuHintStyle.Render("best " + strconv.Itoa(item.Best))
		lines = append(lines, style.Render(title)+"  "+best)
		if item.Blurb != "" {
			lines = append(lines, menuHintStyle.Render("    "+item.Blurb))
		}
	}

	card := menuCardStyle.Render(strings.Join(lines, "\n"))
	controls := menuHintStyle.Render("↑/↓ choose  enter play  tab scores  q quit")
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", controls)

	return lipgloss.Place(m.config.ScreenW, max(m.config.ScreenH, 1), lipgloss.Center, lipgloss.Center, body)
}

// Result returns the player's choice once the menu has closed.
func (m MenuModel) Result() MenuResult {
	r := m.result
	r.Config = m.config
	if !m.done {
		r.Quit = true
	}
	return r
}

// centerText left-pads a single line so it sits centered in width cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the variant picker until the player chooses something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
