package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ride against an AI program",
	Long: `Start a session of rounds against the configured AI program.

Controls:
  Arrows / h j k l / w a s d  - Steer
  R / Space / Enter           - Next round
  Ctrl+S                      - Save a screenshot
  Q / Ctrl+C                  - Quit

Programs:
  rinzler  - Rides straight, turns at random when blocked
  clu      - Chases you down

Examples:
  lightcycle play
  lightcycle play --program clu
  lightcycle play --speed 5 --color white
  lightcycle play --tps 45 --seed 42
  lightcycle play --config ./my-lightcycle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	settings, cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newLogger(cfg.Log, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	width, height := terminalSize()

	// Open round history
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(settings, store, logger, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
