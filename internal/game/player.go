package game

import (
	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/core"
)

// Player is the single controllable entity.
type Player struct {
	*Entity

	Dead bool
	Won  bool

	// DeltaX and DeltaY are applied to the velocity every tick until the
	// horizontal velocity crosses zero.
	DeltaX, DeltaY float64

	MaxVelocityX, MaxVelocityY float64

	// Direction memory. A zero delta on an axis keeps the previous flags.
	MovingLeft, MovingRight bool
	MovingUp, MovingDown    bool

	phys           config.PhysicsConfig
	spawnX, spawnY float64
}

func newPlayer(e *Entity, phys config.PhysicsConfig) *Player {
	e.MonitorCollisions = true
	e.VY = phys.InitialFallSpeed

	return &Player{
		Entity:       e,
		MaxVelocityX: phys.MaxVelocityX,
		MaxVelocityY: phys.MaxVelocityY,
		MovingRight:  true,
		MovingDown:   true,
		phys:         phys,
		spawnX:       e.X,
		spawnY:       e.Y,
	}
}

// Integrate advances the player by one tick.
func (p *Player) Integrate() {
	p.LastX = p.X
	p.LastY = p.Y

	lastVX := p.VX
	p.VX += p.DeltaX
	p.VY += p.DeltaY

	// Braking stops at zero instead of reversing
	if (lastVX < 0 && p.VX >= 0) || (lastVX > 0 && p.VX <= 0) {
		p.VX = 0
		p.DeltaX = 0
	}

	if p.VY < p.MaxVelocityY {
		p.VY += p.phys.Gravity
	}

	p.VY = core.ClampF(p.VY, -p.MaxVelocityY, p.MaxVelocityY)
	p.VX = core.ClampF(p.VX, -p.MaxVelocityX, p.MaxVelocityX)

	p.X += p.VX
	p.Y += p.VY
}

// MoveLeft applies one leftward impulse.
func (p *Player) MoveLeft() {
	if p.VX > -p.MaxVelocityX {
		p.VX = core.ClampF(p.VX-p.phys.MoveImpulse, -p.MaxVelocityX, p.MaxVelocityX)
	}
}

// MoveRight applies one rightward impulse.
func (p *Player) MoveRight() {
	if p.VX < p.MaxVelocityX {
		p.VX = core.ClampF(p.VX+p.phys.MoveImpulse, -p.MaxVelocityX, p.MaxVelocityX)
	}
}

// ReleaseMovementControl starts braking against the current horizontal
// velocity. Calling it again while braking has no further effect.
func (p *Player) ReleaseMovementControl() {
	switch {
	case p.VX > 0:
		p.DeltaX = -p.phys.ReleaseImpulse
	case p.VX < 0:
		p.DeltaX = p.phys.ReleaseImpulse
	}
}

// Reset returns the player to the spawn point at rest.
// Direction memory is kept.
func (p *Player) Reset() {
	p.X = p.spawnX
	p.Y = p.spawnY
	p.VX, p.VY = 0, 0
	p.DeltaX, p.DeltaY = 0, 0
	p.Dead = false
	p.Won = false
}

// FacingLeft reports whether the sprite should be drawn mirrored.
func (p *Player) FacingLeft() bool {
	return p.MovingLeft
}
