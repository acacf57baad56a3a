package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	pack           *levels.Pack
	best           map[int]int // level -> best move count
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	search         textinput.Model
	searching      bool
	notice         string
	embedded       bool
	quitting       bool
	selected       int // level number, 0 until chosen
	chosen         bool
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The cursor starts on the configured
// start level. store may be nil.
func NewMenuModel(pack *levels.Pack, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "level number or name"
	ti.Prompt = "/"
	ti.CharLimit = 64

	m := MenuModel{
		pack:      pack,
		best:      bestMoves(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		search:    ti,
	}
	m.moveTo(cfg.StartLevel)
	return m
}

// bestMoves collects the best move count of every solved level.
func bestMoves(store *storage.Store) map[int]int {
	best := make(map[int]int)
	if store == nil {
		return best
	}
	stats, err := store.SolvedLevels()
	if err != nil {
		return best
	}
	for _, st := range stats {
		best[st.Level] = st.BestMoves
	}
	return best
}

// moveTo puts the cursor on level n if the pack has it.
func (m *MenuModel) moveTo(n int) {
	for i, l := range m.pack.Levels {
		if l.Number == n {
			m.cursor = i
			return
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	if msg.String() == "/" {
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.pack.Levels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.pack.Levels) > 0 {
			return m.choose(m.pack.Levels[m.cursor].Number)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// handleSearchKey feeds the search field; enter looks the query up.
func (m MenuModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		lvl, err := m.pack.Find(m.search.Value())
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.moveTo(lvl.Number)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// choose records the selection and ends the menu.
func (m MenuModel) choose(level int) (tea.Model, tea.Cmd) {
	m.selected = level
	m.chosen = true
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit // Exit menu to start playing
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText("  S O K O B A N  ", m.width))
	b.WriteString("\n\n")

	subtitle := "Select a level"
	if m.pack.Name != "" {
		subtitle = fmt.Sprintf("%s: select a level", m.pack.Name)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Level list, windowed around the cursor
	first, last := core.Window(m.cursor, len(m.pack.Levels), max(m.height-10, 3))

	for i := first; i < last; i++ {
		lvl := m.pack.Levels[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "      -"
		if moves, ok := m.best[lvl.Number]; ok {
			best = solvedStyle.Render(fmt.Sprintf("%7d", moves))
		}

		line := fmt.Sprintf("%s%3d. %-24s %s", cursor, lvl.Number, truncate(lvl.Title(), 24), best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.searching:
		b.WriteString(centerText(m.search.View(), m.width))
	case m.notice != "":
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
	}
	b.WriteString("\n")

	// Footer with controls
	controls := "Up/Down: Navigate  |  Enter: Play  |  /: Find  |  Tab: Best  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level number.
func (m MenuModel) Selected() (int, bool) {
	return m.selected, m.chosen
}

// Cursor returns the level number under the cursor.
func (m MenuModel) Cursor() int {
	if len(m.pack.Levels) == 0 {
		return 0
	}
	return m.pack.Levels[m.cursor].Number
}

// Notice returns the message from the last failed search.
func (m MenuModel) Notice() string {
	return m.notice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int
	Cursor          int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(pack *levels.Pack, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(pack, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		Cursor: m.Cursor(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if level, ok := m.Selected(); ok {
		result.Level = level
	} else {
		result.Quit = true
	}

	return result, nil
}
