package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
search path, --config and --difficulty are applied.

Config search order:
  1. --config <path>
  2. ~/.blockbreaker/blockbreaker.yaml (or .toml)
  3. ./configs/blockbreaker.yaml (or .toml)
  4. Embedded defaults

Examples:
  blockbreaker config
  blockbreaker config --difficulty hard
  blockbreaker config --format toml > ~/.blockbreaker/blockbreaker.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml, toml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		w, closeLog, openErr := openLog(io.Discard)
		if openErr != nil {
			return openErr
		}
		defer closeLog() //nolint:errcheck // Best-effort close on exit
		if logger, err = newLogger(w); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if err := config.Encode(cmd.OutOrStdout(), cfg, format); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
