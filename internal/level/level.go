// Package level supplies level layouts to the simulation: the built-in
// classic layout and YAML level files.
package level

import (
	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
)

// Level is a named list of entity descriptors in insertion order.
type Level struct {
	Name     string
	Entities []game.Descriptor
}

// Validate checks the level with the simulation's layout rules.
func (l Level) Validate() error {
	return game.Validate(l.Entities)
}

// Bounds returns the smallest rectangle covering every entity.
func (l Level) Bounds() core.Rect {
	if len(l.Entities) == 0 {
		return core.Rect{}
	}

	first := l.Entities[0]
	minX, minY := first.X, first.Y
	maxX, maxY := first.X+first.W, first.Y+first.H
	for _, d := range l.Entities[1:] {
		minX = min(minX, d.X)
		minY = min(minY, d.Y)
		maxX = max(maxX, d.X+d.W)
		maxY = max(maxY, d.Y+d.H)
	}
	return core.NewRect(minX, minY, maxX-minX, maxY-minY)
}
