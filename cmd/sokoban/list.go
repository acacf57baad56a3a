package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the pack",
	Long:  `Shows every level of the level pack with its size and your best move count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	pack := loadPack(newLoader(cfg))

	best := map[int]int{}
	if store := openStore(newLogger(io.Discard, "sokoban")); store != nil {
		if stats, err := store.SolvedLevels(); err == nil {
			for _, st := range stats {
				best[st.Level] = st.BestMoves
			}
		}
		store.Close()
	}

	name := pack.Name
	if name == "" {
		name = "Levels"
	}
	fmt.Printf("%s (%d levels):\n", name, pack.Count())
	fmt.Println()

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, l := range pack.Levels {
		if n := len([]rune(l.Title())); n > maxTitleLen {
			maxTitleLen = n
		}
	}

	// Print header
	fmt.Printf("  %5s  %-*s  %-7s  %5s  %s\n", "Level", maxTitleLen, "Title", "Size", "Boxes", "Best")
	fmt.Printf("  %5s  %-*s  %-7s  %5s  %s\n", "-----", maxTitleLen, "-----", "----", "-----", "----")

	for _, l := range pack.Levels {
		b, err := l.Board()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: level %d: %v\n", l.Number, err)
			continue
		}

		bestStr := "-"
		if moves, ok := best[l.Number]; ok {
			bestStr = fmt.Sprintf("%d", moves)
		}
		size := fmt.Sprintf("%dx%d", b.Cols(), b.Rows())
		fmt.Printf("  %5d  %-*s  %-7s  %5d  %s\n", l.Number, maxTitleLen, l.Title(), size, len(b.Boxes()), bestStr)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <level>' to play a level.")
}
