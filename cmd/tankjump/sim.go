package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
	"github.com/vovakirdan/tankjump/internal/loop"
)

var (
	flagScript string
	flagTicks  int
	flagFast   bool
)

// simResult is the YAML document printed by the sim command.
type simResult struct {
	Level           string        `yaml:"level"`
	Ticks           int           `yaml:"ticks"`
	MissedDeadlines uint64        `yaml:"missed_deadlines"`
	Hash            uint64        `yaml:"hash"`
	Snapshot        game.Snapshot `yaml:"snapshot"`
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game headless",
	Long: `Run the simulation without a terminal, feeding it a scripted input
sequence, and print the final state as YAML.

A script is a comma-separated list of action@tick or action@from-to steps;
actions are left, right, release and start. Ranges are inclusive.

Examples:
  tankjump sim
  tankjump sim --script "start@0,left@1-12,release@13-40" --fast
  tankjump sim --ticks 500 --fast`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "start@0,right@1-30,release@31-60", "Input script")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = until the script ends)")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Run as fast as possible instead of at the tick rate")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, lvl, err := loadSetup()
	if err != nil {
		return err
	}

	script, err := core.ParseScript(flagScript)
	if err != nil {
		return fmt.Errorf("--script: %w", err)
	}
	total := flagTicks
	if total <= 0 {
		total = script.LastTick() + 1
	}

	g, err := game.New(lvl.Entities, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pacer := loop.NewPacer(cfg.Loop.TickRate, logger)
	ran := 0
	err = loop.NewRunner(pacer, flagFast).Run(ctx, func(tick int) bool {
		if tick >= total {
			return false
		}
		g.Step(script.Frame(tick))
		ran++
		return true
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run: %w", err)
	}

	snap := g.Snapshot()
	result := simResult{
		Level:           lvl.Name,
		Ticks:           ran,
		MissedDeadlines: pacer.Missed(),
		Hash:            snap.Hash(),
		Snapshot:        snap,
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}
