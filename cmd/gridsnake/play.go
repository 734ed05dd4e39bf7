package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/raywen/gridsnake/internal/config"
	"github.com/raywen/gridsnake/internal/platform/tui"
	"github.com/raywen/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer the snake
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

The first direction key starts the game. Only one direction change
takes effect per tick; the reverse of the current direction is ignored.

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	score, runErr := tui.Run(cfg, store, flagSeed, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", score)
}
