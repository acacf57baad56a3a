package tui

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

func TestWallPattern(t *testing.T) {
	b := boardFrom(t, "#####\n#@$.#\n#####")

	tests := []struct {
		r, c     int
		expected int
	}{
		{0, 0, wallEast | wallSouth},
		{0, 2, wallEast | wallWest},
		{1, 0, wallNorth | wallSouth},
		{2, 4, wallNorth | wallWest},
	}

	for _, tt := range tests {
		if got := WallPattern(b, tt.r, tt.c); got != tt.expected {
			t.Errorf("WallPattern(%d, %d) = %d, expected %d", tt.r, tt.c, got, tt.expected)
		}
	}
}

func TestGlyphWallArt(t *testing.T) {
	b := boardFrom(t, "#####\n#@$.#\n#####")
	br := BoardRenderer{}

	tests := []struct {
		r, c     int
		expected rune
	}{
		{0, 0, '┌'},
		{0, 2, '─'},
		{0, 4, '┐'},
		{1, 0, '│'},
		{2, 0, '└'},
		{2, 4, '┘'},
	}

	for _, tt := range tests {
		got := br.Glyph(b, tt.r, tt.c)
		if got.Rune != tt.expected {
			t.Errorf("Glyph(%d, %d) = %q, expected %q", tt.r, tt.c, got.Rune, tt.expected)
		}
		if got.Color != wallColor {
			t.Errorf("Glyph(%d, %d) color = %v, expected %v", tt.r, tt.c, got.Color, wallColor)
		}
	}
}

func TestGlyphSimpleWalls(t *testing.T) {
	b := boardFrom(t, "#####\n#@$.#\n#####")
	br := BoardRenderer{SimpleWalls: true}

	for c := 0; c < 5; c++ {
		if got := br.Glyph(b, 0, c).Rune; got != '#' {
			t.Errorf("Glyph(0, %d) = %q, expected '#'", c, got)
		}
	}
}

func TestGlyphPieces(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		c        int
		expected rune
		color    core.Color
	}{
		{"worker", "#@ #", 1, '@', workerColor},
		{"box", "#@$ #", 2, '$', boxColor},
		{"store", "#@. #", 2, '.', storeColor},
		{"stored box", "#@* #", 2, '*', storedBoxColor},
		{"worker on store", "#+ #", 1, '+', workerDoneColor},
		{"floor", "#@ #", 2, ' ', core.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.text)
			got := BoardRenderer{}.Glyph(b, 0, tt.c)
			if got.Rune != tt.expected || got.Color != tt.color {
				t.Errorf("Glyph = %q/%v, expected %q/%v", got.Rune, got.Color, tt.expected, tt.color)
			}
			if got.Attr.Has(core.AttrReverse) {
				t.Error("unexpected highlight")
			}
		})
	}
}

func TestGlyphHighlight(t *testing.T) {
	b := boardFrom(t, "#@$.#")
	s := sokoban.NewSession(b, newClock().Now())
	s.Move(sokoban.East)
	if !s.CheckWin() {
		t.Fatal("expected win")
	}

	got := BoardRenderer{}.Glyph(b, 0, 3)
	if got.Rune != '*' || !got.Attr.Has(core.AttrReverse) {
		t.Errorf("Glyph(stored box after win) = %q attr %v, expected reversed '*'", got.Rune, got.Attr)
	}
}

func TestDrawLeavesShortRowsUntouched(t *testing.T) {
	b := boardFrom(t, "#####\n#@$.#\n###")
	s := core.NewScreen(10, 5)
	s.SetCell(4, 2, core.Cell{Rune: 'x'})

	BoardRenderer{SimpleWalls: true}.Draw(s, b, 1, 0)

	if got := s.Row(1); got != " #@$.#    " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.GetCell(4, 2).Rune; got != 'x' {
		t.Errorf("Get(4, 2) = %q, expected 'x' past the short row", got)
	}
}

func TestPlacementCentersBoard(t *testing.T) {
	b := boardFrom(t, "#####\n#@$.#\n#####")
	r := Placement(b, 25, 13)

	if r.X != 10 || r.Y != 5 || r.W != 5 || r.H != 3 {
		t.Errorf("Placement = %+v, expected {10 5 5 3}", r)
	}
}
