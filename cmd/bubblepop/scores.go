package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubblepop/internal/platform/tui"
	"github.com/vovakirdan/bubblepop/internal/storage"
)

var (
	flagPlain       bool
	flagScoresLimit int
	flagClear       bool
	flagScoreKey    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the session scoreboard",
	Long: `Display the best finished sessions. Opens an interactive table with
Sessions and Movements tabs unless --plain is given.

Examples:
  bubblepop scores
  bubblepop scores --plain --limit 5
  bubblepop scores --session local-1718000000000000000
  bubblepop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the interactive view")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all sessions and movements")
	scoresCmd.Flags().StringVar(&flagScoreKey, "session", "", "Show a single session by its key")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Scoreboard cleared.")
		return
	}

	if flagScoreKey != "" {
		showSession(store, flagScoreKey)
		return
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	sessions, err := store.TopSessions(flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - BubblePop")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bubblepop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Acc", "Date")
	fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "---", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-16s  %-7d  %-5d  %-5s  %s\n",
			i+1, s.Player, s.Score, s.Level,
			fmt.Sprintf("%.0f%%", s.Accuracy()*100),
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Average: %.1f  Sessions: %d  Movements: %d\n",
			stats.HighScore, stats.AvgScore, stats.Sessions, stats.Movements)
	}
}

func showSession(store *storage.Store, key string) {
	s, err := store.SessionByKey(key)
	if err != nil {
		fail("retrieving session: %v", err)
	}
	if s == nil {
		fail("no session with key %q", key)
	}

	fmt.Printf("Session %s\n", s.Key)
	fmt.Println()
	fmt.Printf("  Player:    %s\n", s.Player)
	fmt.Printf("  Score:     %d\n", s.Score)
	fmt.Printf("  Level:     %d\n", s.Level)
	fmt.Printf("  Clicks:    %d hits, %d misses (%.0f%%)\n", s.Hits, s.Misses, s.Accuracy()*100)
	fmt.Printf("  Duration:  %s\n", s.Duration.Round(time.Second))
	fmt.Printf("  Played:    %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
}
