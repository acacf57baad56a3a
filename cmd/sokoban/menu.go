package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the level under the cursor.
Quitting a level returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  /            - Find a level by number, id or name
  Tab          - Best solves
  Q            - Quit

Examples:
  sokoban menu
  sokoban menu --levels ./levels.yaml
  sokoban menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	loader := newLoader(cfg)
	pack := loadPack(loader)
	rc := runtimeConfig(cfg, pack)

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	runID := storage.NewRunID()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(pack, store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config
		rc.StartLevel = menuResult.Cursor

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, pack, menuResult.Cursor, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		play := rc
		play.StartLevel = menuResult.Level
		final, err := tui.Run(tui.PlayOptions{
			Loader: loader,
			Store:  store,
			Logger: logger,
			Config: play,
			RunID:  runID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}

		// Come back to the level the player left off at
		if s := final.Session(); s != nil {
			rc.StartLevel = s.Level()
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
