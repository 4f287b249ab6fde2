package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Block Breaker in an 800x600 desktop window.

Controls:
  Left/Right, A/D  - Move paddle
  Mouse            - Move paddle, click buttons
  Space            - Launch ball
  Enter            - Start / play again
  Esc              - Main menu (after game over)
  P                - Pause
  Q                - Quit

Set window.scale in the config to enlarge the window and window.font_path
to use a specific TrueType font.

Examples:
  blockbreaker window
  blockbreaker window --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	w, closeLog, err := openLog(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger, err := newLogger(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, cfg, runtime, err := newGame(logger, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runtime.ScreenW = int(cfg.Screen.Width)
	runtime.ScreenH = int(cfg.Screen.Height)

	if err := window.Run(game, cfg, runtime, logger); err != nil {
		logger.Error("window closed with error", "error", err)
		os.Exit(1)
	}
}
