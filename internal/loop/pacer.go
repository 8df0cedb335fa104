// Package loop paces the simulation at a fixed tick rate.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Pacer computes the wait between ticks for a fixed cadence.
// A tick that overruns its budget is followed immediately by the next one;
// ticks are never merged or dropped.
type Pacer struct {
	budget time.Duration
	logger *log.Logger
	ticks  uint64
	missed uint64
}

// NewPacer creates a pacer for tickRate ticks per second.
// A nil logger discards diagnostics.
func NewPacer(tickRate int, logger *log.Logger) *Pacer {
	if tickRate <= 0 {
		tickRate = 1
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pacer{
		budget: time.Second / time.Duration(tickRate),
		logger: logger,
	}
}

// Budget returns the time available to one tick.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Wait records a finished tick that took elapsed and returns how long to
// sleep before the next one. It returns zero when the budget was used up.
func (p *Pacer) Wait(elapsed time.Duration) time.Duration {
	p.ticks++

	wait := p.budget - elapsed
	if wait > 0 {
		return wait
	}

	p.missed++
	p.logger.Warn("target tick rate missed",
		"tick", p.ticks,
		"elapsed", elapsed,
		"budget", p.budget,
	)
	return 0
}

// Missed returns how many ticks overran their budget.
func (p *Pacer) Missed() uint64 {
	return p.missed
}
