// gridsnake is a terminal snake game played on a configurable grid.
//
// Usage:
//
//	gridsnake play     - Play the game
//	gridsnake scores   - Show high scores
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.gridsnake/scores.db)
//	--config <path>  - Set custom config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake in your terminal",
	Long: `gridsnake is a terminal snake game. Steer the snake around a grid,
eat food to grow, and avoid the walls and your own tail. The game
speeds up as the snake grows.

Available commands:
  play     - Play the game
  scores   - View high scores

Examples:
  gridsnake play
  gridsnake play --config ./my-config.yaml
  gridsnake play --seed 42
  gridsnake scores
  gridsnake scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
