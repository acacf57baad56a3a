package sokoban

import (
	"errors"
	"testing"
)

func TestPositionCodecRoundTrip(t *testing.T) {
	for row := 0; row < MaxRows; row++ {
		for col := 0; col < MaxCols; col++ {
			v, err := Encode(row, col)
			if err != nil {
				t.Fatalf("Encode(%d, %d) failed: %v", row, col, err)
			}
			if v&PullMarker != 0 {
				t.Fatalf("Encode(%d, %d) = %#x overlaps the pull marker", row, col, v)
			}
			got := Decode(v)
			if got.Row != row || got.Col != col {
				t.Fatalf("Decode(Encode(%d, %d)) = %v", row, col, got)
			}
		}
	}
}

func TestPositionCodecLayout(t *testing.T) {
	v, err := Encode(2, 5)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if v != 2<<6|5 {
		t.Errorf("Encode(2, 5) = %#x, expected %#x", v, 2<<6|5)
	}
	if PullMarker != 1<<12 {
		t.Errorf("PullMarker = %#x, expected %#x", PullMarker, 1<<12)
	}
}

func TestPositionOverflow(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"row at limit", 64, 0},
		{"col at limit", 0, 64},
		{"negative row", -1, 3},
		{"negative col", 3, -1},
		{"both large", 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.row, tc.col); !errors.Is(err, ErrPositionOverflow) {
				t.Errorf("Encode(%d, %d) error = %v, expected ErrPositionOverflow", tc.row, tc.col, err)
			}
			if _, err := NewPosition(tc.row, tc.col); !errors.Is(err, ErrPositionOverflow) {
				t.Errorf("NewPosition(%d, %d) error = %v, expected ErrPositionOverflow", tc.row, tc.col, err)
			}
		})
	}
}

func TestUndoEntryPacking(t *testing.T) {
	entries := []UndoEntry{
		{From: P(0, 0)},
		{From: P(63, 63)},
		{From: P(7, 12), Pull: true},
		{From: P(63, 0), Pull: true},
	}

	for _, e := range entries {
		v, err := e.Pack()
		if err != nil {
			t.Fatalf("Pack(%+v) failed: %v", e, err)
		}
		if got := UnpackEntry(v); got != e {
			t.Errorf("UnpackEntry(Pack(%+v)) = %+v", e, got)
		}
		if (v&PullMarker != 0) != e.Pull {
			t.Errorf("Pack(%+v) pull marker = %v, expected %v", e, v&PullMarker != 0, e.Pull)
		}
	}

	if _, err := (UndoEntry{From: P(64, 0)}).Pack(); !errors.Is(err, ErrPositionOverflow) {
		t.Errorf("Pack of row 64 error = %v, expected ErrPositionOverflow", err)
	}
}

func TestPositionStep(t *testing.T) {
	p := P(5, 5)
	expected := map[Direction]Position{
		North: P(4, 5),
		East:  P(5, 6),
		South: P(6, 5),
		West:  P(5, 4),
	}
	for d, want := range expected {
		if got := p.Step(d); got != want {
			t.Errorf("Step(%s) = %v, expected %v", d, got, want)
		}
		if back := p.Step(d).Step(d.Opposite()); back != p {
			t.Errorf("Step(%s) then opposite = %v, expected %v", d, back, p)
		}
	}
}

func TestParseLURD(t *testing.T) {
	dirs, err := ParseLURD("lUrD r")
	if err != nil {
		t.Fatalf("ParseLURD failed: %v", err)
	}
	expected := []Direction{West, North, East, South, East}
	if len(dirs) != len(expected) {
		t.Fatalf("ParseLURD returned %d moves, expected %d", len(dirs), len(expected))
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("move %d = %s, expected %s", i, dirs[i], expected[i])
		}
	}

	if _, err := ParseLURD("lx"); err == nil {
		t.Error("ParseLURD should reject unknown letters")
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"north": North, "N": North, "up": North,
		"east": East, "right": East,
		"s": South, "down": South,
		"West": West, "left": West,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %s, expected %s", in, got, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
