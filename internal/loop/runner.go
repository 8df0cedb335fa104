package loop

import (
	"context"
	"time"
)

// StepFunc runs one tick and reports whether the loop should continue.
type StepFunc func(tick int) bool

// Runner drives a StepFunc at the pacer's cadence.
type Runner struct {
	pacer *Pacer
	fast  bool

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewRunner creates a runner. In fast mode ticks run back to back without
// sleeping; the tick sequence is the same either way.
func NewRunner(pacer *Pacer, fast bool) *Runner {
	return &Runner{
		pacer: pacer,
		fast:  fast,
		now:   time.Now,
		sleep: sleepContext,
	}
}

// Run calls step once per tick until it returns false or ctx is done.
func (r *Runner) Run(ctx context.Context, step StepFunc) error {
	for tick := 0; ; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := r.now()
		more := step(tick)
		if !more {
			return nil
		}

		if r.fast {
			continue
		}
		if wait := r.pacer.Wait(r.now().Sub(start)); wait > 0 {
			if err := r.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
