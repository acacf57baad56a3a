// Package levels loads Sokoban level maps from screen files, YAML level
// packs, or the built-in pack.
package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// ParseMap builds a board from a text map.
//
// Map alphabet:
//
//	#  wall           @  worker
//	$  box            +  worker on storage
//	.  storage        *  box on storage
//	   floor (also '-' and '_')
//
// Rows may differ in length. Trailing blank lines and carriage returns are
// ignored.
func ParseMap(level int, text string) (*sokoban.Board, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}
	if len(lines) > sokoban.MaxRows {
		return nil, fmt.Errorf("%w: %d rows (limit %d)", ErrTooLarge, len(lines), sokoban.MaxRows)
	}

	rows := make([][]sokoban.Cell, len(lines))
	var worker sokoban.Position
	workers := 0

	for r, line := range lines {
		glyphs := []rune(line)
		if len(glyphs) > sokoban.MaxCols {
			return nil, fmt.Errorf("%w: row %d has %d columns (limit %d)", ErrTooLarge, r+1, len(glyphs), sokoban.MaxCols)
		}

		row := make([]sokoban.Cell, len(glyphs))
		for c, ch := range glyphs {
			cell, ok := cellFor(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownGlyph, ch, r+1, c+1)
			}
			if cell.HasWorker() {
				workers++
				worker = sokoban.P(r, c)
			}
			row[c] = cell
		}
		rows[r] = row
	}

	switch {
	case workers == 0:
		return nil, ErrNoWorker
	case workers > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleWorkers, workers)
	}

	b, err := sokoban.NewBoard(level, rows, worker)
	if err != nil {
		return nil, fmt.Errorf("levels: level %d: %w", level, err)
	}
	return b, nil
}

// cellFor maps one map character to a cell.
func cellFor(ch rune) (sokoban.Cell, bool) {
	switch ch {
	case '#':
		return sokoban.Wall(), true
	case ' ', '-', '_':
		return sokoban.Floor(), true
	case '.':
		return sokoban.StoreCell(), true
	case '$':
		return sokoban.BoxCell(false), true
	case '*':
		return sokoban.BoxCell(true), true
	case '@':
		return sokoban.WorkerCell(false), true
	case '+':
		return sokoban.WorkerCell(true), true
	default:
		return sokoban.Cell{}, false
	}
}
