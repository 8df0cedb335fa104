package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ScriptStep holds one action over an inclusive tick range.
type ScriptStep struct {
	Action Action
	From   int
	To     int
}

// Script is a deterministic input sequence, used for headless runs and
// replay tests.
type Script []ScriptStep

// ParseScript parses a comma-separated list of "action@from[-to]" steps,
// e.g. "start@0,right@1-30,release@31-40".
func ParseScript(src string) (Script, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	var script Script
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		name, ticks, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("script: step %q: missing '@'", part)
		}

		action, ok := ParseAction(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("script: step %q: unknown action %q", part, name)
		}

		from, to, err := parseTickRange(ticks)
		if err != nil {
			return nil, fmt.Errorf("script: step %q: %w", part, err)
		}

		script = append(script, ScriptStep{Action: action, From: from, To: to})
	}
	return script, nil
}

func parseTickRange(s string) (int, int, error) {
	lo, hi, isRange := strings.Cut(strings.TrimSpace(s), "-")
	from, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("bad tick %q", lo)
	}
	to := from
	if isRange {
		if to, err = strconv.Atoi(hi); err != nil {
			return 0, 0, fmt.Errorf("bad tick %q", hi)
		}
	}
	if from < 0 || to < from {
		return 0, 0, fmt.Errorf("invalid range %d-%d", from, to)
	}
	return from, to, nil
}

// Frame returns the input frame for the given tick.
func (s Script) Frame(tick int) InputFrame {
	frame := NewInputFrame()
	for _, step := range s {
		if tick >= step.From && tick <= step.To {
			frame.Set(step.Action)
		}
	}
	return frame
}

// LastTick returns the last tick any step covers, or -1 for an empty script.
func (s Script) LastTick() int {
	last := -1
	for _, step := range s {
		last = Max(last, step.To)
	}
	return last
}
