package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

// loadSettings merges the config file with command-line flags.
// Flags win over the file.
func loadSettings(cmd *cobra.Command) (tui.Settings, config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Settings{}, cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("program") {
		cfg.AI.Program = flagProgram
	}
	if flags.Changed("color") {
		cfg.Player.Color = flagColor
	}
	if flags.Changed("speed") {
		cfg.Speed.Level = flagSpeed
		cfg.Speed.Preset = ""
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	program := strings.ToLower(cfg.AI.Program)
	if !registry.Exists(program) {
		return tui.Settings{}, cfg, fmt.Errorf("unknown program %q (run 'lightcycle list')", cfg.AI.Program)
	}

	color, err := core.ParseColor(cfg.Player.Color)
	if err != nil {
		return tui.Settings{}, cfg, err
	}
	if !slices.Contains(core.HumanColors, color) {
		return tui.Settings{}, cfg, fmt.Errorf("colour %q is not available to riders (white, cyan, blue)", cfg.Player.Color)
	}

	tickRate := cfg.Speed.EffectiveTickRate()
	if flags.Changed("tps") {
		if flagTPS <= 0 {
			return tui.Settings{}, cfg, fmt.Errorf("--tps must be positive, got %d", flagTPS)
		}
		tickRate = flagTPS
	}

	return tui.Settings{
		Program:  program,
		Color:    color,
		TickRate: tickRate,
		Seed:     flagSeed,
		Width:    cfg.Grid.Width,
		Height:   cfg.Grid.Height,
	}, cfg, nil
}

// newLogger builds the logger described by the config. Interactive commands
// own the terminal, so without a log file they discard output; others log to
// stderr. The returned closer releases the log file.
func newLogger(cfg config.LogConfig, interactive bool) (*log.Logger, io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lightcycle",
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			closer.Close()
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
