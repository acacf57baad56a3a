package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// twoLevelPack is a pack where each level is won with one push east.
const twoLevelPack = `name: Pair
levels:
  - id: one
    rows:
      - "#####"
      - "#@$.#"
      - "#####"
  - id: two
    rows:
      - "######"
      - "# @$.#"
      - "######"
`

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyCtrlU = tea.KeyMsg{Type: tea.KeyCtrlU}
	keyCtrlG = tea.KeyMsg{Type: tea.KeyCtrlG}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

// runes builds a key message for typed characters.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fakeClock is a settable time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

// writePack writes a pack file into a temp dir and returns a loader for it.
func writePack(t *testing.T, yaml string) *levels.Loader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return levels.NewLoader(path)
}

// testConfig returns a runtime config for an 80x24 terminal starting at level.
func testConfig(level int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.StartLevel = level
	return cfg
}

// newPlay creates a play model over loader with a fake clock.
func newPlay(t *testing.T, loader *levels.Loader, cfg core.RuntimeConfig, clock *fakeClock) PlayModel {
	t.Helper()
	m, err := NewPlayModel(PlayOptions{
		Loader: loader,
		Config: cfg,
		RunID:  "run-test",
		Now:    clock.Now,
	})
	require.NoError(t, err)
	return m
}

// send feeds messages to a play model in order and returns the result of
// the last one.
func send(t *testing.T, m PlayModel, msgs ...tea.Msg) (PlayModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		pm, ok := next.(PlayModel)
		require.True(t, ok, "Update returned %T", next)
		m = pm
	}
	return m, cmd
}

// boardFrom parses a map for renderer tests.
func boardFrom(t *testing.T, text string) *sokoban.Board {
	t.Helper()
	b, err := levels.ParseMap(1, text)
	require.NoError(t, err)
	return b
}
