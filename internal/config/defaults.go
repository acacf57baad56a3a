package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() SokobanConfig {
	return SokobanConfig{
		Display: DisplayConfig{
			SimpleWalls:    false,
			ShowBiometrics: true,
			Birthday:       "1960-12-15",
		},
		Play: PlayConfig{
			RepeatFactor: 4,
			StartLevel:   1,
			Levels:       "",
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKeyPath: "",
			IdleMinutes: 30,
		},
	}
}
