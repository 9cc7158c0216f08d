// bubblepop is a bubble popping arcade game for the terminal.
//
// Usage:
//
//	bubblepop play             - Play in this terminal
//	bubblepop serve            - Start SSH server for remote play
//	bubblepop scores           - Show the session scoreboard
//	bubblepop movements        - List recorded movement telemetry
//	bubblepop sinks            - List telemetry sinks
//	bubblepop config           - Print the game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bubblepop/bubblepop.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--telemetry <sink>    - Where movement events go (default: none)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubblepop/internal/storage"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagTelemetry     string
	flagTelemetryPath string
	flagMute          bool
	flagLogLevel      string
	flagLogFile       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblepop",
	Short: "BubblePop - pop drifting bubbles in your terminal",
	Long: `BubblePop fills the screen with drifting bubbles. Click them to score;
smaller and faster bubbles are worth more, and every miss costs a point.
Chain hits to build a bonus that slows everything down for a few seconds.

Available commands:
  play       - Play in this terminal
  serve      - Start SSH server for remote play
  scores     - View the session scoreboard
  movements  - List recorded movement telemetry
  sinks      - List telemetry sinks
  config     - Print the game configuration

Examples:
  bubblepop play
  bubblepop play --difficulty easy --telemetry csv
  bubblepop serve --ssh :2222
  bubblepop scores --plain`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagTelemetry, "telemetry", "none", "Movement telemetry sink (see 'bubblepop sinks')")
	rootCmd.PersistentFlags().StringVar(&flagTelemetryPath, "telemetry-path", ".", "Directory for file-based telemetry sinks")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.bubblepop/bubblepop.log for play, stderr for serve; - for stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(movementsCmd)
	rootCmd.AddCommand(sinksCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
