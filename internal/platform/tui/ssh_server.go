package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.sokoban/host_key.
	HostKeyPath string

	// DBPath is the path to the solves database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Loader supplies the level pack. Nil means the built-in pack.
	Loader *levels.Loader

	// Play holds the display and play settings every session starts with.
	// Screen size comes from each client's PTY.
	Play core.RuntimeConfig

	// Logger overrides the default stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.sokoban/scores.db",
		IdleTimeout: 30 * time.Minute,
		Play:        core.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server that serves Sokoban sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	pack   *levels.Pack
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sokoban-ssh",
		})
	}

	if cfg.Loader == nil {
		cfg.Loader = levels.NewLoader("")
	}
	pack, err := cfg.Loader.Pack()
	if err != nil {
		return nil, fmt.Errorf("cannot load levels: %w", err)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		pack:   pack,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".sokoban", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	logger.Info("levels loaded", "pack", pack.Name, "count", pack.Count())
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Per-session settings, sized to the client's terminal
	cfg := s.config.Play
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	model := NewSessionModel(SessionOptions{
		Loader:   s.config.Loader,
		Pack:     s.pack,
		Store:    s.store,
		Logger:   s.logger.With("user", sshSession.User()),
		Config:   cfg,
		Username: sshSession.User(),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(started).Truncate(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionMode is the screen a SessionModel is showing.
type sessionMode int

const (
	modeMenu sessionMode = iota
	modePlay
	modeScores
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Loader   *levels.Loader
	Pack     *levels.Pack
	Store    *storage.Store
	Logger   *log.Logger
	Config   core.RuntimeConfig
	Username string
}

// SessionModel manages the full session flow: menu -> play -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	config   core.RuntimeConfig
	runID    string
	mode     sessionMode
	menu     MenuModel
	play     PlayModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Loader == nil {
		opts.Loader = levels.NewLoader("")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sokoban"})
	}
	if opts.Pack == nil {
		pack, err := opts.Loader.Pack()
		if err != nil {
			opts.Logger.Error("could not load levels", "error", err)
			pack = &levels.Pack{}
		}
		opts.Pack = pack
	}

	m := SessionModel{
		opts:   opts,
		config: opts.Config,
		runID:  storage.NewRunID(),
	}
	m.menu = m.newMenu(opts.Config.StartLevel)
	return m
}

// newMenu builds an embedded menu with the cursor on level start.
func (m SessionModel) newMenu(start int) MenuModel {
	cfg := m.config
	cfg.StartLevel = start
	menu := NewMenuModel(m.opts.Pack, m.opts.Store, cfg)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modePlay:
		return m.updatePlay(msg)
	case modeScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stray clock ticks from a finished level stop here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Pack, m.menu.Cursor(), m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.mode = modeScores
		return m, m.scores.Init()
	}

	// Check if a level was selected
	if level, ok := m.menu.Selected(); ok {
		cfg := m.config
		cfg.StartLevel = level

		play, err := NewPlayModel(PlayOptions{
			Loader:   m.opts.Loader,
			Store:    m.opts.Store,
			Logger:   m.opts.Logger,
			Config:   cfg,
			RunID:    m.runID,
			Embedded: true,
		})
		if err != nil {
			m.opts.Logger.Error("could not start level", "level", level, "error", err)
			m.menu = m.newMenu(level)
			m.menu.notice = fmt.Sprintf("Could not start level %d.", level)
			return m, nil
		}

		m.play = play
		m.mode = modePlay
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when playing.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = playModel
	}

	// Quit from play goes back to the menu
	if m.play.BackToMenu() {
		m.mode = modeMenu
		m.menu = m.newMenu(m.play.Session().Level())
		if err := m.play.Err(); err != nil {
			m.menu.notice = err.Error()
		}
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when showing the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.mode = modeMenu
		start := m.menu.Cursor()
		if lvl, ok := m.scores.Selected(); ok {
			start = lvl.Number
		}
		m.menu = m.newMenu(start)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modePlay:
		return m.play.View()
	case modeScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunID returns the identifier shared by every solve of this session.
func (m SessionModel) RunID() string {
	return m.runID
}
