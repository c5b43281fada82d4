package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-monsters/internal/platform/tui"
	"github.com/vovakirdan/snake-monsters/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
	flagRun   string
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and high scores",
	Long: `Display run statistics, the best scores and the most recent runs.

With --board the results open in an interactive table instead. --run
prints one run in full, --clear deletes the whole history.

Examples:
  monsters scores
  monsters scores --limit 20
  monsters scores --board
  monsters scores --run 3f2c9a41-...
  monsters scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive results board")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(defaultGameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	case flagRun != "":
		return printRun(store, flagRun)
	}

	if flagBoard {
		cfg := terminalConfig()
		return tui.RunScoreboard(store, defaultGameID, "Snake & Monsters", cfg.ScreenW, cfg.ScreenH)
	}
	if flagLimit <= 0 {
		return errors.New("--limit must be positive")
	}

	stats, err := store.RunStats(defaultGameID)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(defaultGameID, flagLimit)
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(defaultGameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Snake & Monsters")
	fmt.Println()

	if stats.Runs == 0 && len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'monsters play' to record the first one!")
		return nil
	}

	fmt.Printf("Runs: %d   Won: %d   Lost: %d   Best: %d   Contacts: %d   Avg time: %.0fs\n",
		stats.Runs, stats.Wins, stats.Losses, stats.BestScore, stats.TotalContacts, stats.AvgElapsed)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if len(scores) > 0 {
		fmt.Println()
		fmt.Println("High scores")
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs")
		fmt.Printf("  %-8s  %-9s  %-5s  %-8s  %-6s  %-6s  %s\n", "Run", "Outcome", "Score", "Contacts", "Time", "Length", "Date")
		fmt.Printf("  %-8s  %-9s  %-5s  %-8s  %-6s  %-6s  %s\n", "---", "-------", "-----", "--------", "----", "------", "----")
		for _, r := range runs {
			fmt.Printf("  %-8s  %-9s  %-5d  %-8d  %-6s  %-6d  %s\n",
				shortID(r.RunID), r.Outcome, r.Score, r.Contacts,
				fmt.Sprintf("%ds", r.ElapsedSecs), r.Length, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Printf("Run       %s\n", run.RunID)
	fmt.Printf("Outcome   %s\n", run.Outcome)
	fmt.Printf("Score     %d\n", run.Score)
	fmt.Printf("Contacts  %d\n", run.Contacts)
	fmt.Printf("Time      %ds\n", run.ElapsedSecs)
	fmt.Printf("Length    %d\n", run.Length)
	fmt.Printf("Seed      %d\n", run.Seed)
	fmt.Printf("Played    %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay the same arena with: monsters play --seed %d\n", run.Seed)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
