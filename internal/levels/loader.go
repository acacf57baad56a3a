package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// MaxLevel is the highest screen file ordinal a directory pack may hold.
const MaxLevel = 90

// PackFile is the name of a YAML pack inside a level directory.
const PackFile = "levels.yaml"

//go:embed defaults/levels.yaml
var defaultPackYAML []byte

// Loader reads a level pack.
//
// Root may be empty (the built-in pack), a directory holding levels.yaml or
// screen.N files, or a path to a YAML pack. The pack is read once and
// cached; a Loader is safe for concurrent use.
type Loader struct {
	Root string

	once sync.Once
	pack *Pack
	err  error
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Pack returns the loaded pack.
func (l *Loader) Pack() (*Pack, error) {
	l.once.Do(func() {
		l.pack, l.err = l.load()
	})
	return l.pack, l.err
}

// List returns every level in ordinal order.
func (l *Loader) List() ([]Level, error) {
	p, err := l.Pack()
	if err != nil {
		return nil, err
	}
	return p.Levels, nil
}

// LoadLevel parses level n into a fresh board.
func (l *Loader) LoadLevel(n int) (*sokoban.Board, error) {
	p, err := l.Pack()
	if err != nil {
		return nil, err
	}
	lvl, err := p.Level(n)
	if err != nil {
		return nil, err
	}
	return lvl.Board()
}

// Find looks a level up by ordinal, id or name.
func (l *Loader) Find(query string) (Level, error) {
	p, err := l.Pack()
	if err != nil {
		return Level{}, err
	}
	return p.Find(query)
}

// load reads the pack and parses every map so a malformed level fails here
// rather than when play reaches it.
func (l *Loader) load() (*Pack, error) {
	p, err := l.read()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (l *Loader) read() (*Pack, error) {
	if l.Root == "" {
		return packFromYAML(defaultPackYAML, "")
	}

	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	if !info.IsDir() {
		return loadPackFile(l.Root)
	}

	packPath := filepath.Join(l.Root, PackFile)
	if _, err := os.Stat(packPath); err == nil {
		return loadPackFile(packPath)
	}
	return loadScreens(l.Root)
}

// loadPackFile reads a YAML pack from disk.
func loadPackFile(path string) (*Pack, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("levels: unsupported pack file %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	p, err := packFromYAML(data, path)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	return p, nil
}

func packFromYAML(data []byte, path string) (*Pack, error) {
	name, lvls, err := ParsePackYAML(data)
	if err != nil {
		return nil, err
	}
	for i := range lvls {
		lvls[i].FilePath = path
	}
	return &Pack{Name: name, Levels: lvls}, nil
}

// loadScreens reads screen.0 through screen.MaxLevel from dir. Gaps are
// allowed; the level ordinal is the file suffix.
func loadScreens(dir string) (*Pack, error) {
	p := &Pack{Name: filepath.Base(dir)}

	for n := 0; n <= MaxLevel; n++ {
		path := filepath.Join(dir, fmt.Sprintf("screen.%d", n))
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", path, err)
		}
		p.Levels = append(p.Levels, Level{
			Number:   n,
			ID:       fmt.Sprintf("screen.%d", n),
			Map:      string(data),
			FilePath: path,
		})
	}

	if len(p.Levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	return p, nil
}
