package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xenzia/internal/games/snake"
)

var (
	flagTicks uint64
	flagMoves string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game on a virtual clock",
	Long: `Run a game without a terminal UI. Ticks fire on a virtual clock, so a
run takes no real time and the same seed and moves always give the same
result. Moves are delivered just before the tick they name.

Examples:
  xenzia sim --seed 7 --ticks 500
  xenzia sim --seed 7 --moves 12:up,30:left,45:down --debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Stop after this many ticks")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Scripted turns as <tick>:<direction>, comma separated")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, os.Stderr, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	opts, err := loadOptions(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	moves, err := snake.ParseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation started", "seed", opts.Seed, "ticks", flagTicks, "moves", len(moves))

	session := snake.NewSession(opts, newLogPresenter(logger))
	clock := snake.NewVirtualClock()
	snap := snake.Simulate(session, clock, moves, flagTicks)

	logger.Info("simulation finished", "state", snap.State, "score", snap.Score, "elapsed", clock.Now())
	fmt.Fprintln(cmd.OutOrStdout(), snap.String())
}
