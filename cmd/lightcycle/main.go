// lightcycle is a light cycle duel against rule-based AI programs, played
// in the terminal.
//
// Usage:
//
//	lightcycle play          - Ride against the configured program
//	lightcycle menu          - Pick opponent, colour and speed interactively
//	lightcycle list          - List the AI programs
//	lightcycle scores [id]   - Show round history against a program
//	lightcycle serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.lightcycle, ./configs)
//	--program <id>    - AI program (rinzler, clu)
//	--color <name>    - Trail colour (white, cyan, blue)
//	--speed <level>   - Speed level, ticks per second = level * 10
//	--tps <rate>      - Exact tick rate, overrides --speed
//	--seed <value>    - Set RNG seed for reproducible rounds
//	--db <path>       - Set database path (default: ~/.lightcycle/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its programs
	_ "github.com/vovakirdan/lightcycle/internal/games/lightcycle"
)

// version is reported by --version.
const version = "0.1.0"

var (
	// Global flags
	flagConfig   string
	flagProgram  string
	flagColor    string
	flagSpeed    int
	flagTPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "lightcycle",
	Short:   "Lightcycle - Outlast the programs on the grid",
	Version: version,
	Long: `Lightcycle is a terminal light cycle duel. You and an AI program each
leave a permanent wall behind you; the first to hit a wall, the boundary or
a trail loses the round.

Available commands:
  play     - Ride against the configured program
  menu     - Interactive opponent, colour and speed picker
  list     - Show all AI programs
  scores   - View round history
  serve    - Start SSH server for remote play

Examples:
  lightcycle play
  lightcycle play --program clu --speed 5
  lightcycle menu
  lightcycle serve --ssh :2222
  lightcycle scores clu`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagProgram, "program", "", "AI program to ride against (see 'lightcycle list')")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Trail colour: white, cyan, blue")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Speed level (ticks per second = level * 10)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Exact tick rate, overrides --speed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to rounds database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
