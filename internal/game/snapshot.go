package game

import "math"

// EntityState is the drawable state of one entity.
type EntityState struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// PlayerState is the player's dynamic state.
type PlayerState struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	DeltaX     float64 `yaml:"delta_x"`
	Dead       bool    `yaml:"dead"`
	Won        bool    `yaml:"won"`
	FacingLeft bool    `yaml:"facing_left"`
}

// Snapshot is a copy of the game state after a completed tick.
// Renderers read snapshots only, never the live world.
type Snapshot struct {
	Status   string        `yaml:"status"`
	Player   PlayerState   `yaml:"player"`
	Entities []EntityState `yaml:"entities"`
	Stats    Stats         `yaml:"stats"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	entities := make([]EntityState, len(g.entities))
	for i, e := range g.entities {
		entities[i] = EntityState{Kind: e.Kind.String(), X: e.X, Y: e.Y, W: e.W, H: e.H}
	}

	p := g.player
	return Snapshot{
		Status: g.status.String(),
		Player: PlayerState{
			X:          p.X,
			Y:          p.Y,
			VX:         p.VX,
			VY:         p.VY,
			DeltaX:     p.DeltaX,
			Dead:       p.Dead,
			Won:        p.Won,
			FacingLeft: p.FacingLeft(),
		},
		Entities: entities,
		Stats:    g.stats,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Stats.Ticks
	h = h*31 + snap.Stats.Unresolved
	for _, c := range snap.Status {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	h = hashFloats(h, snap.Player.X, snap.Player.Y, snap.Player.VX, snap.Player.VY, snap.Player.DeltaX)
	h = h*31 + boolBit(snap.Player.Dead)
	h = h*31 + boolBit(snap.Player.Won)
	h = h*31 + boolBit(snap.Player.FacingLeft)

	for _, e := range snap.Entities {
		h = hashFloats(h, e.X, e.Y, e.W, e.H)
	}
	return h
}

func hashFloats(h uint64, vals ...float64) uint64 {
	for _, v := range vals {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
