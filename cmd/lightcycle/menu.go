package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick opponent, colour and speed interactively",
	Long: `Start lightcycle in interactive menu mode.

Pick the opponent program, your trail colour and the speed level, then ride.
After a round, press B to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change value
  Enter/Space     - Select
  Tab             - Round history
  Q               - Quit

Examples:
  lightcycle menu
  lightcycle menu --speed 4
  lightcycle menu --db ./rounds.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
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

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	runErr := tui.RunSession(settings, store, logger, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
