package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// maxRepeat caps the ctrl+u repeat count.
const maxRepeat = 1 << 16

// helpStyle renders the key help bar.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// PlayOptions configures a PlayModel.
type PlayOptions struct {
	Loader *levels.Loader
	Store  *storage.Store // optional; solves are not recorded without it
	Logger *log.Logger    // optional
	Config core.RuntimeConfig
	RunID  string

	// Embedded makes quit hand control back to an enclosing model instead
	// of ending the program.
	Embedded bool

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// PlayModel is the Bubble Tea model for playing a level pack.
type PlayModel struct {
	pack      *levels.Pack
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	runID     string
	embedded  bool
	now       func() time.Time
	session   *sokoban.Session
	screen    *core.Screen
	renderer  BoardRenderer
	keyMapper *KeyMapper
	help      help.Model
	clock     time.Time
	repeat    int
	overlay   overlay
	message   string
	saved     bool // solve recorded for the current level
	finished  bool // last level solved and dismissed
	err       error
	quitting  bool
	back      bool
}

// NewPlayModel creates a play model positioned at the configured start level.
func NewPlayModel(opts PlayOptions) (PlayModel, error) {
	if opts.Loader == nil {
		opts.Loader = levels.NewLoader("")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RunID == "" {
		opts.RunID = storage.NewRunID()
	}
	if opts.Config.RepeatFactor < 2 {
		opts.Config.RepeatFactor = core.DefaultConfig().RepeatFactor
	}

	pack, err := opts.Loader.Pack()
	if err != nil {
		return PlayModel{}, err
	}

	h := help.New()
	h.Width = opts.Config.ScreenW

	m := PlayModel{
		pack:      pack,
		store:     opts.Store,
		logger:    opts.Logger,
		config:    opts.Config,
		runID:     opts.RunID,
		embedded:  opts.Embedded,
		now:       opts.Now,
		screen:    core.NewScreen(opts.Config.ScreenW, playHeight(opts.Config.ScreenH)),
		renderer:  BoardRenderer{SimpleWalls: opts.Config.SimpleWalls},
		keyMapper: NewKeyMapper(),
		help:      h,
	}

	if err := m.loadLevel(opts.Config.StartLevel); err != nil {
		return PlayModel{}, err
	}
	m.message = WelcomeMessage
	return m, nil
}

// playHeight is the screen buffer height: one row is left for the help bar.
func playHeight(screenH int) int {
	return max(screenH-1, 3)
}

// loadLevel replaces the session with a fresh one for level n.
func (m *PlayModel) loadLevel(n int) error {
	lvl, err := m.pack.Level(n)
	if err != nil {
		return err
	}
	b, err := lvl.Board()
	if err != nil {
		return err
	}

	m.clock = m.now()
	m.session = sokoban.NewSession(b, m.clock)
	m.repeat = 0
	m.overlay = overlayNone
	m.message = ""
	m.saved = false

	m.logger.Debug("level loaded", "level", n, "title", lvl.Title(), "rows", b.Rows(), "cols", b.Cols())
	return nil
}

// Init starts the clock.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.clock = m.now()
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.clock = m.now()
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleKey processes one key press.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	// Any key dismisses the help and boss pages.
	if m.overlay != overlayNone {
		m.overlay = overlayNone
		if action != core.ActionQuit {
			return m, nil
		}
	}

	if action == core.ActionQuit {
		return m.quit()
	}

	if action == core.ActionRepeat {
		if m.repeat < 1 {
			m.repeat = m.config.RepeatFactor
		} else {
			m.repeat = min(m.repeat*m.config.RepeatFactor, maxRepeat)
		}
		return m, nil
	}

	count := max(m.repeat, 1)
	if !action.Repeatable() {
		count = 1
	}
	m.repeat = 0

	switch action {
	case core.ActionNorth, core.ActionEast, core.ActionSouth, core.ActionWest:
		dir, _ := directionFor(action)
		m.repeatCommand(count, func() bool {
			return m.session.Move(dir).OK()
		})

	case core.ActionUndo:
		m.repeatCommand(count, m.session.Undo)

	case core.ActionHelp:
		m.overlay = overlayHelp

	case core.ActionBoss:
		m.overlay = overlayBoss

	case core.ActionRestart:
		if err := m.loadLevel(m.session.Level()); err != nil {
			m.logger.Error("could not restart level", "level", m.session.Level(), "error", err)
		}
		return m, nil

	case core.ActionNextLevel:
		if m.session.Won() {
			return m.advance()
		}
	}

	if m.session.CheckWin() {
		m.message = ""
		if !m.saved {
			m.recordSolve()
		}
	}
	return m, nil
}

// repeatCommand runs op up to count times, stopping at the first failure
// or as soon as the level is solved.
func (m *PlayModel) repeatCommand(count int, op func() bool) {
	m.session.Repeat(count, func() bool {
		if !op() {
			return false
		}
		return !m.session.CheckWin()
	})
}

// advance loads the next level, or finishes after the last one. A level that
// fails to load ends play with its error.
func (m PlayModel) advance() (tea.Model, tea.Cmd) {
	next, ok := m.pack.Next(m.session.Level())
	if !ok {
		m.finished = true
		return m.quit()
	}
	if err := m.loadLevel(next); err != nil {
		m.logger.Error("could not load level", "level", next, "error", err)
		m.err = fmt.Errorf("loading level %d: %w", next, err)
		return m.quit()
	}
	return m, nil
}

// quit ends play, or hands control back when embedded.
func (m PlayModel) quit() (tea.Model, tea.Cmd) {
	if m.embedded {
		m.back = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// recordSolve logs the solve and saves it to the store, once per level.
func (m *PlayModel) recordSolve() {
	m.saved = true
	st := m.session.Stats(m.clock)
	m.logger.Info("level solved",
		"level", st.Level,
		"moves", st.Moves,
		"pushes", st.Pushes,
		"elapsed", st.Elapsed,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveSolve(storage.Solve{
		RunID:    m.runID,
		Level:    st.Level,
		Moves:    st.Moves,
		Pushes:   st.Pushes,
		Duration: st.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save solve", "level", st.Level, "error", err)
	}
}

// topMessage is the text on the first row.
func (m PlayModel) topMessage() string {
	if m.session.Won() {
		if _, ok := m.pack.Next(m.session.Level()); ok {
			return WinMessage
		}
		return LastMessage
	}
	return m.message
}

// draw paints the current state into the screen buffer.
func (m PlayModel) draw() {
	s := m.screen
	s.Clear()

	switch m.overlay {
	case overlayHelp:
		DrawHelp(s)
		return
	case overlayBoss:
		DrawBoss(s)
		return
	}

	s.DrawTextCentered(0, m.topMessage())
	if m.repeat > 0 {
		s.DrawStyledText(0, 0, fmt.Sprintf("C-u %d-", m.repeat), core.ColorGray, 0)
	}

	statsRow := s.Height() - 2
	b := m.session.Board()
	area := Placement(b, s.Width(), statsRow-1)
	m.renderer.Draw(s, b, area.X, area.Y+1)

	s.DrawTextCentered(statsRow, FormatStats(m.session.Stats(m.clock)))
	if m.config.ShowBiometrics {
		s.DrawTextCentered(statsRow+1, Biorhythms(m.config.Birthday, m.clock).String())
	}
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.draw()

	// The boss page must not show a key bar.
	footer := ""
	if m.overlay != overlayBoss {
		footer = helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Session returns the current level's session.
func (m PlayModel) Session() *sokoban.Session {
	return m.session
}

// Message returns the text currently shown on the top row.
func (m PlayModel) Message() string {
	return m.topMessage()
}

// RepeatCount returns the pending ctrl+u count.
func (m PlayModel) RepeatCount() int {
	return m.repeat
}

// Screen returns the screen buffer as last drawn by View.
func (m PlayModel) Screen() *core.Screen {
	return m.screen
}

// Finished reports whether the last level was solved and dismissed.
func (m PlayModel) Finished() bool {
	return m.finished
}

// Err returns the error that ended play, if any.
func (m PlayModel) Err() error {
	return m.err
}

// IsQuitting returns true if the user ended play.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded model wants to return to its menu.
func (m PlayModel) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a play session and returns the
// final model.
func Run(opts PlayOptions) (PlayModel, error) {
	model, err := NewPlayModel(opts)
	if err != nil {
		return PlayModel{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(PlayModel); ok {
		return fm, fm.err
	}
	return model, nil
}
