package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/core"
)

// Stats counts noteworthy simulation events.
type Stats struct {
	Ticks      uint64 `yaml:"ticks"`
	Unresolved uint64 `yaml:"unresolved_collisions"`
}

// Game owns the world and the status state machine.
type Game struct {
	entities   []*Entity
	player     *Player
	collisions []Collision
	status     Status
	stats      Stats
	logger     *log.Logger
}

// New builds a game from a level layout. The layout is validated first;
// a malformed layout is rejected with a ValidationError.
// A nil logger discards diagnostics.
func New(layout []Descriptor, cfg config.Config, logger *log.Logger) (*Game, error) {
	if err := Validate(layout); err != nil {
		return nil, fmt.Errorf("game: invalid layout: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		entities: make([]*Entity, 0, len(layout)),
		status:   StatusStartScreen,
		logger:   logger,
	}

	for _, d := range layout {
		e := newEntity(d)
		if d.Kind == KindPlayer {
			g.player = newPlayer(e, cfg.Physics)
		}
		g.entities = append(g.entities, e)
	}

	return g, nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) {
	g.stats.Ticks++

	switch {
	case g.status == StatusStartScreen:
		if in.Has(core.ActionStart) {
			g.setStatus(StatusRunning)
		}

	case g.status == StatusRunning:
		// Flags raised during the previous tick end the run now
		switch {
		case g.player.Dead:
			g.setStatus(StatusGameOver)
		case g.player.Won:
			g.setStatus(StatusWon)
		default:
			g.applyInput(in)
			g.integrate()
			g.detect()
			g.resolve()
		}

	case g.status.Terminal():
		if in.Has(core.ActionStart) {
			g.player.Reset()
			g.setStatus(StatusStartScreen)
		}
	}
}

// applyInput forwards at most one control to the player.
// Left wins over right, and a held direction wins over a release.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.player.MoveLeft()
	case in.Has(core.ActionRight):
		g.player.MoveRight()
	case in.Has(core.ActionRelease):
		g.player.ReleaseMovementControl()
	}
}

// integrate moves the player, the only dynamic entity.
// Static entities have no update.
func (g *Game) integrate() {
	g.player.Integrate()
}

func (g *Game) detect() {
	g.collisions = Detect(g.entities, g.collisions[:0])
}

func (g *Game) resolve() {
	for _, c := range g.collisions {
		if c.Monitor != g.player.Entity {
			continue
		}
		if !g.player.Resolve(c.Other) {
			g.stats.Unresolved++
			g.logger.Warn("unresolved collision",
				"tick", g.stats.Ticks,
				"kind", c.Other.Kind,
				"x", g.player.X,
				"y", g.player.Y,
				"other_x", c.Other.X,
				"other_y", c.Other.Y,
			)
		}
	}
	g.collisions = g.collisions[:0]
}

func (g *Game) setStatus(s Status) {
	g.logger.Debug("status changed", "from", g.status, "to", s, "tick", g.stats.Ticks)
	g.status = s
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Entities returns all entities in insertion order.
func (g *Game) Entities() []*Entity {
	return g.entities
}

// Stats returns the event counters.
func (g *Game) Stats() Stats {
	return g.stats
}
