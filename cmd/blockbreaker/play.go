package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Block Breaker in the terminal.

Controls:
  Left/Right, H/L, A/D  - Move paddle
  Mouse                 - Move paddle, click buttons
  Space                 - Launch ball
  Enter                 - Start / play again
  Esc                   - Main menu (after game over)
  P                     - Pause
  Q/Ctrl+C              - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  blockbreaker play
  blockbreaker play --difficulty easy
  blockbreaker play --seed 7 --log-file /tmp/blockbreaker.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	w, closeLog, err := openLog(io.Discard)
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

	// Get terminal size
	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	game, cfg, runtime, err := newGame(logger, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, runtime, logger); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
