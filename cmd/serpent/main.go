package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/serpent/internal/audio"
	"chosenoffset.com/serpent/internal/engine"
	"chosenoffset.com/serpent/internal/game"
	ebitenrender "chosenoffset.com/serpent/internal/render/ebiten"
	"chosenoffset.com/serpent/internal/simulation"
	"chosenoffset.com/serpent/internal/store"
)

func main() {
	configPath := flag.String("config", "serpent.json", "Path to the game config (missing file uses defaults)")
	dataDir := flag.String("data", "data", "Directory for the high score file and session archives")
	mute := flag.Bool("mute", false, "Disable sound")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	flag.Parse()

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

	var player audio.Player = audio.Silent{}
	if !*mute {
		player = audio.NewEbitenPlayer()
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	window := ebitenrender.NewEngine()

	gameManager := game.NewManager(eng, renderer, inputMgr, nil)
	gameManager.Attach(audio.NewCues(player).Listen, scores.Listen, archive.Listen)

	window.SetWindowSize(gameManager.ScreenWidth, gameManager.ScreenHeight)
	window.SetWindowTitle("Serpent")
	window.SetWindowResizable(true)

	log.Printf("Starting game (seed %d, run %s)...", *seed, archive.RunID())
	runErr := window.RunGame(gameManager)

	if path, err := archive.Close(); err != nil {
		log.Printf("Warning: failed to write session archive: %v", err)
	} else if path != "" {
		log.Printf("Sessions saved to %s", path)
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
