package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best solves",
	Long: `Display the 10 best solves of a level, fewest moves first.
Without a level, opens the interactive scoreboard (or prints a summary of
every solved level when output is not a terminal).

Examples:
  sokoban scores
  sokoban scores 2
  sokoban scores the-yard
  sokoban scores --clear 2     # Forget every solve of level 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the recorded solves of the given level")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	pack := loadPack(newLoader(cfg))

	// Open solves storage
	store := openStore(newLogger(io.Discard, "sokoban"))
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			store.Close()
			fail("--clear needs a level")
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			w, h := terminalSize()
			if _, err := tui.RunScoreboard(store, pack, runtimeConfig(cfg, pack).StartLevel, w, h); err != nil {
				store.Close()
				fail("%v", err)
			}
			return
		}
		printSummary(pack.Count(), store)
		return
	}

	lvl, err := pack.Find(args[0])
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	if flagClearScores {
		if err := store.ClearLevel(lvl.Number); err != nil {
			store.Close()
			fail("clearing solves: %v", err)
		}
		fmt.Printf("Cleared the solves of level %d. %s\n", lvl.Number, lvl.Title())
		return
	}

	solves, err := store.BestSolves(lvl.Number, 10)
	if err != nil {
		store.Close()
		fail("retrieving solves: %v", err)
	}

	// Display solves
	fmt.Printf("Best Solves - %d. %s\n", lvl.Number, lvl.Title())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %d' to set the first record!\n", lvl.Number)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Moves", "Pushes", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")

	for i, s := range solves {
		secs := int64(s.Duration.Seconds())
		elapsed := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %s\n", i+1, s.Moves, s.Pushes, elapsed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show best
	fmt.Println()
	if best, ok, err := store.BestMoves(lvl.Number); err == nil && ok {
		fmt.Printf("Best: %d moves\n", best)
	}
}

// printSummary lists every solved level.
func printSummary(total int, store *storage.Store) {
	stats, err := store.SolvedLevels()
	if err != nil {
		fail("retrieving solves: %v", err)
	}

	fmt.Printf("Solved %d of %d levels\n", len(stats), total)
	if len(stats) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %5s  %-6s  %-6s  %-6s  %s\n", "Level", "Solves", "Moves", "Pushes", "Last")
	fmt.Printf("  %5s  %-6s  %-6s  %-6s  %s\n", "-----", "------", "-----", "------", "----")
	for _, st := range stats {
		fmt.Printf("  %5d  %-6d  %-6d  %-6d  %s\n", st.Level, st.Solves, st.BestMoves, st.BestPushes, st.LastSolved.Format("2006-01-02 15:04"))
	}
}
