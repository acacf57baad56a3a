package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagSimpleWalls  bool
	flagNoBiometrics bool
	flagRepeatFactor int
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play Sokoban",
	Long: `Start playing at the given level (number, id or name), or at
play.start_level from the config.

Controls:
  ^P ^N ^B ^F / arrows / hjkl  - Move north, south, west, east
  ^_ / u                       - Undo
  ^U                           - Repeat the next command 4 times (again: 16, 64...)
  g                            - Next level, once solved
  r                            - Restart the level
  ?                            - Help
  Space                        - Boss screen
  ^G / q                       - Quit

Examples:
  sokoban play
  sokoban play 2
  sokoban play the-yard
  sokoban play --simple-walls
  sokoban play --levels ./screens 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSimpleWalls, "simple-walls", false, "Draw walls as '#'")
	playCmd.Flags().BoolVar(&flagNoBiometrics, "no-biometrics", false, "Hide the biorhythm line")
	playCmd.Flags().IntVar(&flagRepeatFactor, "repeat", 0, "^U repeat multiplier (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	loader := newLoader(cfg)
	pack := loadPack(loader)

	rc := runtimeConfig(cfg, pack)
	if flagSimpleWalls {
		rc.SimpleWalls = true
	}
	if flagNoBiometrics {
		rc.ShowBiometrics = false
	}
	if cmd.Flags().Changed("repeat") {
		if flagRepeatFactor < 2 {
			fail("--repeat must be at least 2")
		}
		rc.RepeatFactor = flagRepeatFactor
	}

	if len(args) == 1 {
		lvl, err := pack.Find(args[0])
		if err != nil {
			fail("%v", err)
		}
		rc.StartLevel = lvl.Number
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	runID := storage.NewRunID()
	logger.Info("play started", "run", runID, "pack", pack.Name, "level", rc.StartLevel)

	final, runErr := tui.Run(tui.PlayOptions{
		Loader: loader,
		Store:  store,
		Logger: logger,
		Config: rc,
		RunID:  runID,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}

	if s := final.Session(); s != nil {
		if final.Finished() {
			fmt.Println("You solved every level. Well done!")
		} else {
			fmt.Printf("Stopped at level %d after %d moves.\n", s.Level(), s.Moves())
		}
	}
}
