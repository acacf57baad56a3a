// Package config provides YAML-based configuration loading for the
// Sokoban player and server.
package config

import (
	"fmt"
	"time"
)

// birthdayLayout is the date format of display.birthday.
const birthdayLayout = "2006-01-02"

// SokobanConfig contains all configuration for the game.
type SokobanConfig struct {
	Display DisplayConfig `yaml:"display"`
	Play    PlayConfig    `yaml:"play"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig controls how the board and status lines are drawn.
type DisplayConfig struct {
	SimpleWalls    bool   `yaml:"simple_walls"`    // '#' instead of line-drawing walls
	ShowBiometrics bool   `yaml:"show_biometrics"` // biorhythm line under the stats
	Birthday       string `yaml:"birthday"`        // YYYY-MM-DD, biorhythm origin
}

// PlayConfig controls the input loop and level selection.
type PlayConfig struct {
	RepeatFactor int    `yaml:"repeat_factor"` // ctrl+u multiplier
	StartLevel   int    `yaml:"start_level"`
	Levels       string `yaml:"levels"` // directory or YAML pack; empty = built-in
}

// ServerConfig defines SSH server defaults for "sokoban serve".
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// BirthdayTime parses the configured birthday.
func (d DisplayConfig) BirthdayTime() (time.Time, error) {
	t, err := time.ParseInLocation(birthdayLayout, d.Birthday, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid birthday %q: %w", d.Birthday, err)
	}
	return t, nil
}

// IdleTimeout returns the server idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleMinutes) * time.Minute
}

// Validate fills zero values from the defaults and checks the rest.
func (c *SokobanConfig) Validate() error {
	def := DefaultConfig()

	if c.Play.RepeatFactor == 0 {
		c.Play.RepeatFactor = def.Play.RepeatFactor
	}
	if c.Play.RepeatFactor < 2 {
		return fmt.Errorf("config: play.repeat_factor must be at least 2, got %d", c.Play.RepeatFactor)
	}
	if c.Play.StartLevel < 0 {
		return fmt.Errorf("config: play.start_level must not be negative, got %d", c.Play.StartLevel)
	}

	if c.Display.Birthday == "" {
		c.Display.Birthday = def.Display.Birthday
	}
	if _, err := c.Display.BirthdayTime(); err != nil {
		return err
	}

	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.IdleMinutes <= 0 {
		c.Server.IdleMinutes = def.Server.IdleMinutes
	}
	return nil
}
