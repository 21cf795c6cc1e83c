// xenzia is Snake Xenzia in the terminal.
//
// Usage:
//
//	xenzia play              - Play in the terminal (default)
//	xenzia sim               - Run a headless game on a virtual clock
//
// Global flags:
//
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Path to a custom snake YAML config
//	--difficulty <preset>   - easy, normal, hard, fixed
//	--log-file <path>       - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xenzia",
	Short: "Snake Xenzia - the wrap-around snake in your terminal",
	Long: `Xenzia is the classic wrap-around snake. The snake leaves one edge
and comes back on the other, grows with every food and speeds up as it
grows. The game ends when the head runs into the body.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless game and print the final state

Examples:
  xenzia
  xenzia play --difficulty hard
  xenzia sim --seed 7 --ticks 200 --moves 12:up,30:left`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
