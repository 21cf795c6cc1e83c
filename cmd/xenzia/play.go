package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xenzia/internal/core"
	"github.com/vovakirdan/xenzia/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Steer (each press also moves one step)
  R                - New game (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, speeds up as the snake grows
  normal - The classic 50ms start
  hard   - Fast start
  fixed  - No speed-up, stays at the configured interval

Examples:
  xenzia play
  xenzia play --difficulty easy
  xenzia play --config ./my-snake.yaml --log-file xenzia.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	opts, err := loadOptions(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(flagLogFile, nil, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	if runErr := tui.Run(opts, cfg, logger); runErr != nil {
		logger.Error("game exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog() //nolint:errcheck // os.Exit skips the deferred close
		os.Exit(1)
	}
}
