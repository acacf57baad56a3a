package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// logFile is where interactive commands log; the terminal belongs to the UI.
const logFile = "sokoban.log"

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the config file named by --config, or the first one found.
func loadConfig() config.SokobanConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// newLoader returns the level loader for --levels, falling back to play.levels.
func newLoader(cfg config.SokobanConfig) *levels.Loader {
	root := flagLevels
	if root == "" {
		root = cfg.Play.Levels
	}
	root, err := config.ExpandHome(root)
	if err != nil {
		fail("%v", err)
	}
	return levels.NewLoader(root)
}

// loadPack loads the level pack or exits.
func loadPack(loader *levels.Loader) *levels.Pack {
	pack, err := loader.Pack()
	if err != nil {
		fail("%v", err)
	}
	return pack
}

// openStore opens the solves database. Failure is not fatal: play goes on
// without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		return nil
	}
	return store
}

// newLogger builds a logger at --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.sokoban/sokoban.log. The returned closer must be
// called on exit.
func fileLogger() (*log.Logger, func()) {
	dir := config.HomeDir()
	if dir == "" {
		return newLogger(io.Discard, "sokoban"), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "sokoban"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard, "sokoban"), func() {}
	}
	return newLogger(f, "sokoban"), func() { f.Close() }
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// runtimeConfig turns the loaded config into the play loop settings.
// A start level missing from the pack falls back to the pack's first level.
func runtimeConfig(cfg config.SokobanConfig, pack *levels.Pack) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = terminalSize()
	rc.SimpleWalls = cfg.Display.SimpleWalls
	rc.ShowBiometrics = cfg.Display.ShowBiometrics
	if birthday, err := cfg.Display.BirthdayTime(); err == nil {
		rc.Birthday = birthday
	}
	rc.RepeatFactor = cfg.Play.RepeatFactor
	rc.StartLevel = cfg.Play.StartLevel
	if _, err := pack.Level(rc.StartLevel); err != nil {
		rc.StartLevel = pack.First()
	}
	return rc
}
