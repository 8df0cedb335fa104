// tankjump is a single-screen platformer for the terminal.
//
// Usage:
//
//	tankjump play            - Play in the terminal
//	tankjump sim             - Run a scripted game headless and print the final state
//	tankjump layout          - Print the classic level, or check a level file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 24)
//	--config <path>      - Use a custom config YAML
//	--level <path>       - Play a level file instead of the classic level
//	--log-file <path>    - Write diagnostics to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/level"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevel    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tankjump",
	Short: "Tank Jump - a tiny platformer in your terminal",
	Long: `Tank Jump is a single-screen platformer: steer the tank across the
floors, use the spring, avoid the spikes and reach the goal.

Available commands:
  play     - Play in the terminal
  sim      - Run a scripted game without a terminal
  layout   - Print or check level layouts

Examples:
  tankjump play
  tankjump play --level ./levels/tiny.yaml
  tankjump sim --script "start@0,right@1-30,release@31-60" --fast
  tankjump layout > classic.yaml`,
	// main prints the error once; usage is only for flag mistakes
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 24)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Path to a level YAML (default: classic level)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(layoutCmd)
}

// newLogger builds the diagnostics logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tankjump",
		Level:           level,
	})
	return logger, closer, nil
}

// loadSetup loads the configuration and the level selected by the flags.
func loadSetup() (config.Config, level.Level, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, level.Level{}, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}

	if flagLevel == "" {
		return cfg, level.Classic(cfg), nil
	}
	lvl, err := level.Load(flagLevel)
	if err != nil {
		return config.Config{}, level.Level{}, err
	}
	return cfg, lvl, nil
}
