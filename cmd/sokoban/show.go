package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Print a level map",
	Long: `Parse a level and print it in the map alphabet:

  #  wall     @  worker     +  worker on storage
  $  box      .  storage    *  box on storage

Examples:
  sokoban show 1
  sokoban show loading-dock`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	pack := loadPack(newLoader(cfg))

	lvl, err := pack.Find(args[0])
	if err != nil {
		fail("%v", err)
	}
	b, err := lvl.Board()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Level %d: %s\n", lvl.Number, lvl.Title())
	if lvl.FilePath != "" {
		fmt.Printf("From %s\n", lvl.FilePath)
	}
	fmt.Println()
	fmt.Println(b.String())
	fmt.Println()
	fmt.Printf("%d x %d, %d boxes, %d storage spots\n", b.Cols(), b.Rows(), len(b.Boxes()), len(b.Stores()))
}
