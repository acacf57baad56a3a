package core

import "time"

// RuntimeConfig contains the settings the play loop starts with.
type RuntimeConfig struct {
	ScreenW        int       // Screen width in characters
	ScreenH        int       // Screen height in characters
	SimpleWalls    bool      // Draw walls as '#'
	ShowBiometrics bool      // Show the biorhythm line
	Birthday       time.Time // Biorhythm origin
	RepeatFactor   int       // ctrl+u multiplier
	StartLevel     int       // First level to play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		ShowBiometrics: true,
		Birthday:       time.Date(1960, time.December, 15, 0, 0, 0, 0, time.Local),
		RepeatFactor:   4,
		StartLevel:     1,
	}
}
