package sokoban

import "testing"

func TestIsWon(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"all stored", []string{"#####", "#@**#", "#####"}, true},
		{"one loose box", []string{"######", "#@*$.#", "######"}, false},
		{"no boxes", []string{"####", "#@.#", "####"}, true},
		{"worker on store, box stored", []string{"#####", "#+* #", "#####"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.rows...)
			if got := IsWon(b); got != tc.want {
				t.Errorf("IsWon() = %v, expected %v", got, tc.want)
			}

			for r := 0; r < b.Rows(); r++ {
				for c := 0; c < b.Cols(); c++ {
					cell := b.CellAt(r, c)
					switch {
					case !tc.want && cell.Highlight:
						t.Errorf("losing scan highlighted (%d,%d)", r, c)
					case tc.want && cell.HasBox() && !cell.Highlight:
						t.Errorf("box at (%d,%d) not highlighted after win", r, c)
					case cell.Highlight && !cell.HasBox():
						t.Errorf("non-box cell (%d,%d) highlighted", r, c)
					}
				}
			}
		})
	}
}

func TestHighlightDoesNotAffectPlay(t *testing.T) {
	b := mustBoard(t,
		"######",
		"#@$ .#",
		"######",
	)
	b.SetHighlight(1, 2)
	b.SetHighlight(1, 3)

	if res, _ := AttemptMove(b, East); res != MovePushed {
		t.Fatalf("AttemptMove(East) = %s, expected Pushed", res)
	}
	if IsWon(b) {
		t.Error("highlight must not count toward a win")
	}

	ClearHighlights(b)
	for c := 0; c < b.Cols(); c++ {
		if b.CellAt(1, c).Highlight {
			t.Errorf("ClearHighlights left (1,%d) highlighted", c)
		}
	}
}
