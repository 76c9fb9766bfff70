package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chosenoffset.com/serpent/internal/audio"
	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/simulation"
	"chosenoffset.com/serpent/internal/store"
	"chosenoffset.com/serpent/internal/ui/term"
)

func main() {
	configPath := flag.String("config", "serpent.json", "Path to the game config (missing file uses defaults)")
	dataDir := flag.String("data", "data", "Directory for the high score file, session archives and the log")
	mute := flag.Bool("mute", false, "Disable the terminal bell")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logFile, err := tea.LogToFile(filepath.Join(*dataDir, "serpent-term.log"), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cfg, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	scores, archive, err := store.OpenDataDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}
	eng.SetHighScore(scores.Best())
	// Turns stay silent; the bell has a single pitch.
	var player audio.Player = audio.NewBell(os.Stderr, audio.FoodTone, audio.GameOverTone)
	if *mute {
		player = audio.Silent{}
	}
	eng.Subscribe(audio.NewCues(player).Listen)
	eng.Subscribe(scores.Listen)
	eng.Subscribe(archive.Listen)

	log.Printf("Starting terminal game (seed %d, run %s)", *seed, archive.RunID())
	final, runErr := tea.NewProgram(term.New(eng), tea.WithAltScreen()).Run()

	if path, err := archive.Close(); err != nil {
		log.Printf("Warning: failed to write session archive: %v", err)
	} else if path != "" {
		log.Printf("Sessions saved to %s", path)
	}

	if runErr == nil {
		if m, ok := final.(term.Model); ok {
			runErr = m.Err()
		}
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
