package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"restless/internal/config"
	"restless/internal/tui"
)

var (
	version = "0.1.0"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "restless",
	Short: "Restless - keyboard-driven HTTP client for the terminal",
	Long: `Restless is an interactive terminal HTTP client.

Compose requests (method, URL, headers, query parameters, body) across
independent tabs, send them without blocking the UI, and inspect the
responses. Everything is keyboard driven; press ? inside the app for
the full keymap.

Configuration is read from ~/.restless/config.yaml and can be
overridden through RESTLESS_* environment variables.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		if err := checkTerminalSize(cfg); err != nil {
			return err
		}

		closeLog, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		return tui.Run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
}

// checkTerminalSize rejects terminals smaller than the configured
// minimum before the alternate screen is entered, so the message stays
// visible.
func checkTerminalSize(cfg *config.Config) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Not a terminal (e.g. piped); let the TUI library complain.
		return nil
	}
	if width < cfg.Terminal.MinWidth {
		return fmt.Errorf("terminal too narrow: %d columns, need at least %d", width, cfg.Terminal.MinWidth)
	}
	if height < cfg.Terminal.MinHeight {
		return fmt.Errorf("terminal too short: %d rows, need at least %d", height, cfg.Terminal.MinHeight)
	}
	return nil
}

// setupLogging sends logs to the configured file. The TUI owns the
// terminal, so stderr logging would corrupt the display.
func setupLogging(cfg *config.Config) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(parseLogLevel(cfg.Log.Level))
	log.SetReportTimestamp(true)

	return func() { f.Close() }, nil
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
