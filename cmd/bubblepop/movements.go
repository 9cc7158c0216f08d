package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/storage"
)

var (
	flagMovementSession string
	flagMovementLimit   int
)

var movementsCmd = &cobra.Command{
	Use:   "movements",
	Short: "List recorded movement telemetry",
	Long: `List movements stored by the sqlite telemetry sink, newest first.
A movement links two consecutive hits: how far the cursor travelled and
how long it took.

Examples:
  bubblepop movements
  bubblepop movements --session local-1718000000000000000 --limit 50`,
	Args: cobra.NoArgs,
	Run:  runMovements,
}

func init() {
	movementsCmd.Flags().StringVar(&flagMovementSession, "session", "", "Only show movements of this session key")
	movementsCmd.Flags().IntVar(&flagMovementLimit, "limit", 20, "Number of movements to show")
}

func runMovements(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	records, err := store.RecentMovements(flagMovementSession, flagMovementLimit)
	if err != nil {
		fail("retrieving movements: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No movements recorded yet.")
		fmt.Println("Play with '--telemetry sqlite' to collect them.")
		return
	}

	fmt.Printf("  %-28s  %-9s  %-8s  %-5s  %-5s  %s\n", "Session", "Distance", "Elapsed", "Side", "Speed", "Date")
	for _, r := range records {
		fmt.Printf("  %-28s  %-9.1f  %-8.2f  %-5d  %-5d  %s\n",
			r.SessionKey, r.Distance(), r.Elapsed, r.Side, r.Speed,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
