package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"falling-sand/internal/storage"
)

var (
	flagRunsDB    string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `List the most recent runs recorded with --db.

Examples:
  sandbox runs --db ~/.sandbox/runs.db
  sandbox runs --db runs.db --limit 50`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsDB, "db", "~/.sandbox/runs.db", "Path to the runs database")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagRunsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-19s  %-10s  %-11s  %6s  %7s  %6s  %6s  %6s\n",
		"ID", "When", "Scene", "Mode", "Seed", "Size", "Ticks", "Sand", "Water")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-19s  %-10s  %-11s  %6d  %7s  %6d  %6d  %6d\n",
			r.ID[:min(8, len(r.ID))],
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Scene,
			r.Mode,
			r.Seed,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Ticks,
			r.Sand,
			r.Water,
		)
	}
	return nil
}
