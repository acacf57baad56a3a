package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Messages shown on the top line.
const (
	WelcomeMessage = "Welcome to Sokoban -- type '?' for help, '^G' to quit."
	WinMessage     = "YOU WIN! (Press 'g' for next level.)"
	LastMessage    = "YOU WIN! That was the last level. (Press 'q' to quit.)"
)

// Biorhythm cycle lengths in days.
const (
	physicalCycle  = 23.0
	emotionalCycle = 28.0
	mentalCycle    = 33.0
)

// FormatStats renders the statistics line.
func FormatStats(st sokoban.Stats) string {
	secs := int64(st.Elapsed / time.Second)
	days := secs / 86400
	hours := (secs / 3600) % 24
	minutes := (secs / 60) % 60
	seconds := secs % 60

	return fmt.Sprintf("Level: %d    Moves: %d    Time: %+d %d:%02d:%02d    Speed: %8.5f mph",
		st.Level, st.Moves, days, hours, minutes, seconds, st.SpeedMPH)
}

// Biorhythm holds the three biorhythm readings, each in [-1, 1].
type Biorhythm struct {
	Physical  float64
	Emotional float64
	Mental    float64
}

// Biorhythms computes the readings for someone born at birthday, at now.
func Biorhythms(birthday, now time.Time) Biorhythm {
	days := now.Sub(birthday).Hours() / 24
	return Biorhythm{
		Physical:  math.Sin(days / physicalCycle * 2 * math.Pi),
		Emotional: math.Sin(days / emotionalCycle * 2 * math.Pi),
		Mental:    math.Sin(days / mentalCycle * 2 * math.Pi),
	}
}

// String renders the biometrics line.
func (b Biorhythm) String() string {
	return fmt.Sprintf("Physical: %+8.6f  Emotional: %+8.6f  Mental: %+8.6f",
		b.Physical, b.Emotional, b.Mental)
}
