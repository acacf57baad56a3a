package tui

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name     string
		stats    sokoban.Stats
		expected string
	}{
		{
			name:     "fresh level",
			stats:    sokoban.Stats{Level: 1},
			expected: "Level: 1    Moves: 0    Time: +0 0:00:00    Speed:  0.00000 mph",
		},
		{
			name: "over a day",
			stats: sokoban.Stats{
				Level:    12,
				Moves:    10,
				Elapsed:  25*time.Hour + time.Minute + time.Second,
				SpeedMPH: 0.5,
			},
			expected: "Level: 12    Moves: 10    Time: +1 1:01:01    Speed:  0.50000 mph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStats(tt.stats); got != tt.expected {
				t.Errorf("FormatStats() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBiorhythmsAtBirth(t *testing.T) {
	birthday := time.Date(1960, time.December, 15, 0, 0, 0, 0, time.UTC)
	got := Biorhythms(birthday, birthday)

	expected := "Physical: +0.000000  Emotional: +0.000000  Mental: +0.000000"
	if got.String() != expected {
		t.Errorf("Biorhythm.String() = %q, expected %q", got.String(), expected)
	}
}

func TestBiorhythmsCycles(t *testing.T) {
	birthday := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := func(d float64) time.Time {
		return birthday.Add(time.Duration(d * 24 * float64(time.Hour)))
	}

	// A quarter of each cycle is a peak
	require.InDelta(t, 1.0, Biorhythms(birthday, days(physicalCycle/4)).Physical, 1e-9)
	require.InDelta(t, 1.0, Biorhythms(birthday, days(emotionalCycle/4)).Emotional, 1e-9)
	require.InDelta(t, 1.0, Biorhythms(birthday, days(mentalCycle/4)).Mental, 1e-9)

	// A whole number of cycles returns to zero
	b := Biorhythms(birthday, days(physicalCycle*emotionalCycle*mentalCycle))
	for name, v := range map[string]float64{"physical": b.Physical, "emotional": b.Emotional, "mental": b.Mental} {
		if math.Abs(v) > 1e-6 {
			t.Errorf("%s = %f after whole cycles, expected 0", name, v)
		}
	}
}
