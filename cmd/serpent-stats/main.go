package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/serpent/internal/store"
)

func main() {
	dataDir := flag.String("data", "data", "Data directory written by serpent or serpent-term")
	flag.Parse()

	archiveDir := filepath.Join(*dataDir, store.ArchiveDir)
	rows, err := store.ReadAll(archiveDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.OpenHighScores(filepath.Join(*dataDir, store.HighScoreFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := store.Summarize(rows)
	fmt.Println("Serpent session archive")
	fmt.Println("=======================")
	fmt.Printf("High score:   %d\n", scores.Best())
	fmt.Printf("Runs:         %d\n", s.Runs)
	fmt.Printf("Sessions:     %d\n", s.Sessions)
	fmt.Printf("Best session: %d\n", s.BestScore)
	fmt.Printf("Mean score:   %.1f\n", s.MeanScore())
	fmt.Printf("Food eaten:   %d\n", s.TotalFood)

	if s.Sessions == 0 {
		fmt.Println()
		fmt.Printf("No archives in %s yet.\n", archiveDir)
		return
	}

	fmt.Println()
	fmt.Println("Game over causes:")
	for _, c := range s.Causes() {
		fmt.Printf("  %-20s %d\n", c, s.ByCause[c])
	}
}
