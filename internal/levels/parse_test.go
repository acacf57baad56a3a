package levels

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

func TestParseMapGlyphs(t *testing.T) {
	b, err := ParseMap(3, "#+*$. -_#")
	require.NoError(t, err)

	require.Equal(t, 3, b.Level())
	require.Equal(t, sokoban.P(0, 1), b.Worker())

	tests := []struct {
		col  int
		want sokoban.Flag
	}{
		{0, sokoban.FlagWall},
		{1, sokoban.FlagWorker | sokoban.FlagStore},
		{2, sokoban.FlagBox | sokoban.FlagStore},
		{3, sokoban.FlagBox},
		{4, sokoban.FlagSpace | sokoban.FlagStore},
		{5, sokoban.FlagSpace},
		{6, sokoban.FlagSpace},
		{7, sokoban.FlagSpace},
		{8, sokoban.FlagWall},
	}
	for _, tc := range tests {
		if got := b.CellAt(0, tc.col).Flags(); got != tc.want {
			t.Errorf("column %d flags = %b, expected %b", tc.col, got, tc.want)
		}
	}
}

func TestParseMapJaggedRows(t *testing.T) {
	b, err := ParseMap(1, "  ####\r\n###  #\r\n#@$  #\r\n#  .#\r\n#####\r\n\r\n")
	require.NoError(t, err)

	require.Equal(t, 5, b.Rows())
	require.Equal(t, 6, b.Cols())
	require.Equal(t, 5, b.RowLen(3))
	require.True(t, b.CellAt(3, 5).IsSpace(), "past a short row reads as floor")
	require.Equal(t, "  ####\n###  #\n#@$  #\n#  .#\n#####", b.String())
}

func TestParseMapRoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"    #####",
		"    #   #",
		"    #$  #",
		"  ###  $##",
		"  #  $ $ #",
		"### # ## #   ######",
		"#   # ## #####  ..#",
		"# $  $          ..#",
		"##### ### #@##  ..#",
		"    #     #########",
		"    #######",
	}, "\n")

	b, err := ParseMap(1, text)
	require.NoError(t, err)
	require.Equal(t, text, b.String())
	require.Len(t, b.Boxes(), 6)
	require.Len(t, b.Stores(), 6)
	require.NoError(t, b.Validate())
}

func TestParseMapErrors(t *testing.T) {
	wide := strings.Repeat("#", sokoban.MaxCols+1)
	tall := strings.Repeat("#\n", sokoban.MaxRows) + "@"

	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyMap},
		{"blank lines only", "\n\n  \n", ErrEmptyMap},
		{"no worker", "#####\n#$ .#\n#####", ErrNoWorker},
		{"two workers", "#####\n#@@.#\n#####", ErrMultipleWorkers},
		{"worker and worker on store", "#@+#", ErrMultipleWorkers},
		{"unknown glyph", "#@x#", ErrUnknownGlyph},
		{"tab", "#@\t#", ErrUnknownGlyph},
		{"too wide", "@\n" + wide, ErrTooLarge},
		{"too tall", tall, ErrTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap(1, tc.text)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseMapTooLargeIsOverflow(t *testing.T) {
	_, err := ParseMap(1, "@"+strings.Repeat(" ", sokoban.MaxCols))
	if !errors.Is(err, sokoban.ErrPositionOverflow) {
		t.Errorf("ParseMap() error = %v, expected it to wrap ErrPositionOverflow", err)
	}
}

func TestParseMapLimits(t *testing.T) {
	// A full 64x64 map is still loadable.
	rows := make([]string, sokoban.MaxRows)
	for i := range rows {
		rows[i] = strings.Repeat(" ", sokoban.MaxCols)
	}
	rows[sokoban.MaxRows-1] = strings.Repeat(" ", sokoban.MaxCols-1) + "@"

	b, err := ParseMap(1, strings.Join(rows, "\n"))
	require.NoError(t, err)
	require.Equal(t, sokoban.P(sokoban.MaxRows-1, sokoban.MaxCols-1), b.Worker())
}
