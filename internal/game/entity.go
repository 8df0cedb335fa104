// Package game implements the Tank Jump simulation: a fixed set of
// axis-aligned entities, a player physics integrator, exhaustive collision
// detection and per-kind collision resolution, driven one tick at a time.
//
// The package is pure: it never touches the terminal or the clock.
package game

import "github.com/vovakirdan/tankjump/internal/core"

// Kind tags an entity with its collision behaviour.
type Kind int

const (
	KindPlayer Kind = iota
	KindSolid       // Blocks movement on the axis the player entered from
	KindPit         // Kills the player when entered from above
	KindSpring      // Launches the player upwards
	KindGoal        // Wins the game on contact
)

var kindNames = [...]string{
	KindPlayer: "player",
	KindSolid:  "solid",
	KindPit:    "pit",
	KindSpring: "spring",
	KindGoal:   "goal",
}

// String returns the level-file name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// ParseKind maps a level-file name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Descriptor describes one entity of a level layout.
type Descriptor struct {
	Kind       Kind
	X, Y, W, H float64
}

// Bounds returns the descriptor's rectangle.
func (d Descriptor) Bounds() core.Rect {
	return core.NewRect(d.X, d.Y, d.W, d.H)
}

// Entity is an axis-aligned object in the world.
// Static entities never move; only the player is integrated.
type Entity struct {
	Kind       Kind
	X, Y, W, H float64

	// LastX and LastY hold the position before the current tick's integration.
	LastX, LastY float64
	VX, VY       float64

	// MonitorCollisions marks entities checked against every other entity.
	MonitorCollisions bool
}

func newEntity(d Descriptor) *Entity {
	return &Entity{
		Kind:  d.Kind,
		X:     d.X,
		Y:     d.Y,
		W:     d.W,
		H:     d.H,
		LastX: d.X,
		LastY: d.Y,
	}
}

// Bounds returns the entity's current rectangle.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Overlaps reports whether e and o overlap.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Bounds().Intersects(o.Bounds())
}
