package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/registry"
	"github.com/vovakirdan/lightcycle/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [program]",
	Short: "Show round history",
	Long: `Display totals for every program, or the most recent rounds against
one program.

Examples:
  lightcycle scores
  lightcycle scores clu
  lightcycle scores rinzler --limit 25
  lightcycle scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history in an interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dbPath := cfg.Storage.Path
	if cmd.Flags().Changed("db") {
		dbPath = flagDBPath
	}

	var program registry.Program
	if len(args) == 1 {
		program, err = registry.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown program %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'lightcycle list' to see available programs.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, program.ID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if program.ID == "" {
		printTotals(store)
		return
	}
	printRounds(store, program)
}

// printTotals prints lifetime results against every program.
func printTotals(store *storage.Store) {
	all, err := store.GetAllProgramStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Round totals")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lightcycle play' to start a history!")
		return
	}

	fmt.Printf("  %-10s  %6s  %4s  %4s  %8s  %s\n", "Program", "Rounds", "Won", "Lost", "Win rate", "Last played")
	fmt.Printf("  %-10s  %6s  %4s  %4s  %8s  %s\n", "-------", "------", "---", "----", "--------", "-----------")
	for _, p := range registry.List() {
		s, ok := all[p.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %6d  %4d  %4d  %7.0f%%  %s\n",
			p.Title, s.Rounds, s.HumanWins, s.AIWins, s.WinRate()*100, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printRounds prints the most recent rounds against one program.
func printRounds(store *storage.Store, program registry.Program) {
	rounds, err := store.RecentRounds(program.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Round history - vs %s\n", program.Title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lightcycle play --program %s' to start a history!\n", program.ID)
		return
	}

	fmt.Printf("  %-8s  %-7s  %5s  %6s  %s\n", "Winner", "Score", "Ticks", "Time", "Date")
	fmt.Printf("  %-8s  %-7s  %5s  %6s  %s\n", "------", "-----", "-----", "----", "----")
	for _, r := range rounds {
		winner := "You"
		if r.Winner != "human" {
			winner = program.Title
		}
		fmt.Printf("  %-8s  %-7s  %5d  %5.1fs  %s\n",
			winner,
			fmt.Sprintf("%d : %d", r.HumanScore, r.AIScore),
			r.Ticks,
			r.Duration.Seconds(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if stats, err := store.GetProgramStats(program.ID); err == nil && stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Lifetime: %d rounds, %d won, longest %d ticks\n",
			stats.Rounds, stats.HumanWins, stats.LongestTick)
	}
}
