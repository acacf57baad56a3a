package levels

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Level is one entry of a level pack. The map is kept as text and parsed
// into a board on demand.
type Level struct {
	Number   int
	ID       string
	Name     string
	Map      string
	FilePath string
}

// Title returns the display name of the level.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Level %d", l.Number)
}

// Board parses the level map into a fresh board.
func (l Level) Board() (*sokoban.Board, error) {
	b, err := ParseMap(l.Number, l.Map)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.Title(), err)
	}
	return b, nil
}

// YAMLPack is the on-disk form of a level pack.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level of a YAML pack. Either Map (a block of text) or
// Rows (one string per row) holds the layout.
type YAMLLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Map  string   `yaml:"map,omitempty"`
	Rows []string `yaml:"rows,omitempty"`
}

// ParsePackYAML parses a YAML level pack. Levels are numbered from 1 in
// file order.
func ParsePackYAML(data []byte) (string, []Level, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return "", nil, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if len(yp.Levels) == 0 {
		return yp.Name, nil, ErrNoLevels
	}

	out := make([]Level, 0, len(yp.Levels))
	for i, yl := range yp.Levels {
		text := yl.Map
		if len(yl.Rows) > 0 {
			text = strings.Join(yl.Rows, "\n")
		}
		out = append(out, Level{
			Number: i + 1,
			ID:     yl.ID,
			Name:   yl.Name,
			Map:    text,
		})
	}
	return yp.Name, out, nil
}

// Pack is an ordered set of levels.
type Pack struct {
	Name   string
	Levels []Level
}

// Count returns the number of levels.
func (p *Pack) Count() int {
	return len(p.Levels)
}

// Level returns the level with ordinal n.
func (p *Pack) Level(n int) (Level, error) {
	for _, l := range p.Levels {
		if l.Number == n {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrLevelOutOfRange, n)
}

// Validate parses every level map and returns the first failure.
func (p *Pack) Validate() error {
	for _, l := range p.Levels {
		if _, err := l.Board(); err != nil {
			return err
		}
	}
	return nil
}

// First returns the lowest level ordinal.
func (p *Pack) First() int {
	if len(p.Levels) == 0 {
		return 0
	}
	return p.Levels[0].Number
}

// Next returns the ordinal after n, or false if n is the last level.
func (p *Pack) Next(n int) (int, bool) {
	for _, l := range p.Levels {
		if l.Number > n {
			return l.Number, true
		}
	}
	return 0, false
}

// Find looks a level up by ordinal, id or name (case-insensitive).
// When nothing matches, the error lists the closest names.
func (p *Pack) Find(query string) (Level, error) {
	q := strings.TrimSpace(query)
	if n, err := strconv.Atoi(q); err == nil {
		return p.Level(n)
	}

	for _, l := range p.Levels {
		if strings.EqualFold(l.ID, q) || strings.EqualFold(l.Name, q) {
			return l, nil
		}
	}

	if s := p.Suggest(q, 3); len(s) > 0 {
		return Level{}, fmt.Errorf("%w: %q (did you mean %s?)", ErrLevelNotFound, q, strings.Join(s, ", "))
	}
	return Level{}, fmt.Errorf("%w: %q", ErrLevelNotFound, q)
}

// Suggest returns up to limit level ids or names close to query, nearest first.
func (p *Pack) Suggest(query string, limit int) []string {
	type candidate struct {
		name string
		dist int
	}

	q := strings.ToLower(query)
	maxDist := max(2, len(q)/3)

	var cands []candidate
	seen := make(map[string]bool)
	for _, l := range p.Levels {
		for _, name := range []string{l.ID, l.Name} {
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true
			d := levenshtein.ComputeDistance(q, strings.ToLower(name))
			if d <= maxDist {
				cands = append(cands, candidate{name: name, dist: d})
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})

	out := make([]string, 0, min(limit, len(cands)))
	for _, c := range cands {
		if len(out) == limit {
			break
		}
		out = append(out, c.name)
	}
	return out
}
