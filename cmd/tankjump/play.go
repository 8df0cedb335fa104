package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tankjump/internal/game"
	"github.com/vovakirdan/tankjump/internal/loop"
	"github.com/vovakirdan/tankjump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/A     - Drive left (hold)
  Right/D    - Drive right (hold)
  Down/S     - Brake
  Enter      - Start / Restart
  Q/Ctrl+C   - Quit

Terminals do not report key releases: a direction stays held while its key
auto-repeats and is released after controls.release_after_ticks ticks
without a repeat.

Examples:
  tankjump play
  tankjump play --fps 30
  tankjump play --level ./levels/tiny.yaml --log-file tankjump.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI; logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, lvl, err := loadSetup()
	if err != nil {
		return err
	}

	g, err := game.New(lvl.Entities, cfg, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting", "level", lvl.Name, "tick_rate", cfg.Loop.TickRate, "width", width, "height", height)

	pacer := loop.NewPacer(cfg.Loop.TickRate, logger)
	if err := tui.Run(g, lvl.Bounds(), cfg.Controls, pacer, width, height); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	stats := g.Stats()
	logger.Info("finished",
		"ticks", stats.Ticks,
		"unresolved_collisions", stats.Unresolved,
		"missed_deadlines", pacer.Missed(),
	)
	return nil
}
