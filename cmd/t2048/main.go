// t2048 is a terminal 2048 with an Expectimax AI opponent, coach and autopilot.
//
// Usage:
//
//	t2048 play                - Play with AI hints and watch mode
//	t2048 autoplay            - Let a strategy play complete games
//	t2048 hint <grid>         - Explain the AI's choice for a position
//	t2048 bench               - Time the search at every tier
//	t2048 results             - Browse human scores and AI runs
//	t2048 strategies          - List available strategies
//	t2048 serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.t2048/t2048.db)
//	--config <path>     - Custom AI config YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"

	// Import strategies to register them
	_ "github.com/vovakirdan/tui-2048/internal/strategies"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal, with an Expectimax AI",
	Long: `t2048 is a terminal 2048 with a built-in Expectimax AI. The AI can
coach you with hints, play the board while you watch, or run batches of
games on its own at four difficulty tiers.

Available commands:
  play        - Play a game (hints, watch mode, campaign levels)
  autoplay    - Let a strategy play complete games
  hint        - Explain the AI's choice for a given grid
  bench       - Time the search at every tier
  results     - Browse saved scores and AI runs
  strategies  - List available strategies
  serve       - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --level 3 --difficulty adaptive
  t2048 autoplay --strategy expectimax --difficulty hard --games 20
  t2048 hint "2,2,0,0/0,4,0,0/0,0,0,0/0,0,0,2"
  t2048 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom AI config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(serveCmd)
}
