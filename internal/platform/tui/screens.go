package tui

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

//go:embed screens/help.txt
var helpText string

//go:embed screens/work.txt
var workText string

// bossStatus is the editor mode line shown under the boss screen.
const bossStatus = "-uu-:---F1 gdc.c        All L11     (C-wizard Abbrev)---"

// overlay is a full-screen page drawn instead of the board.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayBoss
)

// DrawHelp paints the help page.
func DrawHelp(s *core.Screen) {
	s.Clear()
	for i, line := range strings.Split(strings.TrimRight(helpText, "\n"), "\n") {
		if i >= s.Height() {
			break
		}
		s.DrawText(0, i, line)
	}
}

// DrawBoss paints a harmless-looking editor session: source text above a
// reverse-video mode line on the second-to-last row.
func DrawBoss(s *core.Screen) {
	s.Clear()
	status := s.Height() - 2
	if status < 0 {
		return
	}

	lines := strings.Split(workText, "\n")
	for i := 0; i < status && i < len(lines); i++ {
		s.DrawText(0, i, strings.Map(blankSpace, lines[i]))
	}

	mode := []rune(bossStatus)
	for x := 0; x < s.Width(); x++ {
		r := '-'
		if x < len(mode) {
			r = mode[x]
		}
		s.SetCell(x, status, core.Cell{Rune: r, Attr: core.AttrReverse})
	}
}

// blankSpace turns tabs and other whitespace into plain spaces.
func blankSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}
