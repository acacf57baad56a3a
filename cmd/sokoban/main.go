// sokoban is a terminal Sokoban player.
//
// Usage:
//
//	sokoban play [level]     - Play, starting at a level number or name
//	sokoban menu             - Pick levels interactively
//	sokoban list             - List the levels of the pack
//	sokoban show <level>     - Print a level map
//	sokoban scores [level]   - Show best solves
//	sokoban serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.sokoban/configs, ./configs)
//	--levels <path>     - Screen directory or YAML level pack (default: built-in)
//	--db <path>         - Set database path (default: ~/.sokoban/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes around a warehouse in your terminal",
	Long: `Sokoban is the warehouse puzzle: push every box onto a storage spot.
Boxes can be pushed but never pulled, one at a time.

Available commands:
  play     - Play from a level
  menu     - Interactive level picker
  list     - Show the levels of the pack
  show     - Print a level map
  scores   - View best solves
  serve    - Start SSH server for remote play

Examples:
  sokoban play
  sokoban play 3
  sokoban play --levels ~/xsokoban/screens 12
  sokoban menu
  sokoban serve --ssh :2222
  sokoban scores 1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Screen directory or YAML level pack (overrides play.levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/scores.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
