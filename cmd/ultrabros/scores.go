package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ultrabros/internal/config"
	"github.com/vovakirdan/ultrabros/internal/platform/tui"
	"github.com/vovakirdan/ultrabros/internal/storage"
)

var (
	flagRecent    bool
	flagLimit     int
	flagScoresTUI bool
	flagClearRuns bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs, ranked by coins.

Examples:
  ultrabros scores
  ultrabros scores --recent --limit 20
  ultrabros scores --tui
  ultrabros scores --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete every stored run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	tickRate := config.DefaultTuning().Screen.TickRate
	if t, _, err := config.LoadSource(flagConfig); err == nil {
		tickRate = t.Screen.TickRate
	}
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height, tickRate)
		return err
	}

	var runs []storage.Run
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - Ultra Bros\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ultrabros play' to set the first record!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-9s  %-4s  %-4s  %-8s  %-10s  %s\n", "Rank", "Coins", "Result", "Lvls", "Boss", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-9s  %-4s  %-4s  %-8s  %-10s  %s\n", "----", "-----", "------", "----", "----", "----", "------", "----")

	for i, r := range tui.RunRows(runs, tickRate) {
		fmt.Printf("  %-4d  %-5s  %-9s  %-4s  %-4s  %-8s  %-10s  %s\n", i+1, r[1], r[2], r[3], r[4], r[5], r[6], runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if st, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Victories: %d  Best: %d coins  Bosses: %d\n", st.Runs, st.Victories, st.BestCoins, st.Bosses)
	}
	return nil
}
