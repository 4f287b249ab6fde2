// blockbreaker is a single-screen block breaker for the terminal and the desktop.
//
// Usage:
//
//	blockbreaker play      - Play in the terminal
//	blockbreaker window    - Play in a desktop window
//	blockbreaker config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: from config, 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load a YAML or TOML config file
//	--difficulty <preset>   - easy, normal or hard
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - Break every block with a paddle and a ball",
	Long: `Block Breaker is a single-screen arcade game: move the paddle to keep
the ball in play and clear the 5x8 grid of blocks. Each cleared grid
starts a faster level.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  blockbreaker play
  blockbreaker play --difficulty hard --seed 42
  blockbreaker window --config ./my-blockbreaker.toml
  blockbreaker config --format toml > blockbreaker.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
