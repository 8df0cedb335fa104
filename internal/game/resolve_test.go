package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(x, y, w, h float64) *Entity {
	return newEntity(Descriptor{Kind: KindSolid, X: x, Y: y, W: w, H: h})
}

func TestLandingSnapsAboveFloor(t *testing.T) {
	p := newTestPlayer(150, 130)
	p.VY = 40
	floor := solid(0, 200, 720, 40)

	p.Integrate() // VY 50, Y 180, bottom 240 sinks into the floor
	assert.True(t, p.Overlaps(floor))

	assert.True(t, p.Resolve(floor))
	assert.Equal(t, floor.Y-p.H-1, p.Y)
	assert.Equal(t, 139.0, p.Y)
	// Landing does not zero the fall speed
	assert.Equal(t, 50.0, p.VY)
}

func TestHittingCeilingSnapsBelow(t *testing.T) {
	p := newTestPlayer(150, 50)
	p.VY = -50
	ceiling := solid(0, 0, 1280, 40)

	p.Integrate() // VY -40, Y 10
	assert.True(t, p.Resolve(ceiling))
	assert.True(t, p.MovingUp)
	assert.Equal(t, 41.0, p.Y)
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	t.Run("right", func(t *testing.T) {
		p := newTestPlayer(1190, 300)
		p.VX = 20
		wall := solid(1240, 0, 40, 600)

		p.Integrate()
		assert.True(t, p.Resolve(wall))
		assert.Equal(t, wall.X-p.W-1, p.X)
		assert.Zero(t, p.VX)
	})

	t.Run("left", func(t *testing.T) {
		p := newTestPlayer(50, 300)
		p.VX = -20
		wall := solid(0, 0, 40, 600)

		p.Integrate()
		assert.True(t, p.Resolve(wall))
		assert.True(t, p.MovingLeft)
		assert.Equal(t, 41.0, p.X)
		assert.Zero(t, p.VX)
	})

	t.Run("braking ends at wall", func(t *testing.T) {
		p := newTestPlayer(1190, 300)
		p.VX = 40
		p.ReleaseMovementControl()
		wall := solid(1240, 0, 40, 600)

		p.Integrate()
		p.Resolve(wall)
		assert.Zero(t, p.DeltaX)

		p.Integrate()
		assert.Zero(t, p.VX, "no rebound from a leftover brake")
	})
}

func TestSpringLaunches(t *testing.T) {
	spring := newEntity(Descriptor{Kind: KindSpring, X: 360, Y: 520, W: 40, H: 40})

	t.Run("falling", func(t *testing.T) {
		p := newTestPlayer(360, 440)
		p.Integrate()
		assert.True(t, p.Resolve(spring))
		assert.Equal(t, -60.0, p.VY)
	})

	// The launch speed is absolute, whatever the player was doing.
	tests := []struct {
		name string
		vy   float64
	}{
		{"rising", -30},
		{"at rest", 0},
		{"fast fall", 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(360, 470)
			p.VY = tc.vy
			assert.True(t, p.Overlaps(spring))
			assert.True(t, p.Resolve(spring))
			assert.Equal(t, -60.0, p.VY)
		})
	}
}

func TestPitKillsOnlyWhenMovingDown(t *testing.T) {
	pit := newEntity(Descriptor{Kind: KindPit, X: 0, Y: 560, W: 1280, H: 40})

	t.Run("falling", func(t *testing.T) {
		p := newTestPlayer(100, 490)
		p.Integrate()
		assert.True(t, p.Resolve(pit))
		assert.True(t, p.Dead)
	})

	t.Run("rising", func(t *testing.T) {
		p := newTestPlayer(100, 560)
		p.VY = -50
		p.Integrate()
		assert.True(t, p.Resolve(pit), "pit contact is always resolved")
		assert.False(t, p.Dead)
	})
}

func TestPitGrazedWithoutVerticalMovement(t *testing.T) {
	// VY -10 cancels against gravity: the tick moves the player sideways
	// only, so the remembered vertical direction decides.
	pit := newEntity(Descriptor{Kind: KindPit, X: 0, Y: 100, W: 1280, H: 100})

	t.Run("last moved down", func(t *testing.T) {
		p := newTestPlayer(150, 120)
		p.VX, p.VY = 20, -10
		p.Integrate()
		assert.Equal(t, p.LastY, p.Y)
		assert.True(t, p.Resolve(pit))
		assert.True(t, p.Dead)
	})

	t.Run("last moved up", func(t *testing.T) {
		p := newTestPlayer(150, 120)
		p.MovingUp, p.MovingDown = true, false
		p.VX, p.VY = 20, -10
		p.Integrate()
		assert.Equal(t, p.LastY, p.Y)
		assert.True(t, p.Resolve(pit))
		assert.False(t, p.Dead)
		assert.True(t, p.MovingUp)
	})
}

func TestGoalWins(t *testing.T) {
	p := newTestPlayer(40, 450)
	goal := newEntity(Descriptor{Kind: KindGoal, X: 40, Y: 480, W: 40, H: 40})

	p.Integrate()
	assert.True(t, p.Resolve(goal))
	assert.True(t, p.Won)
}

func TestDirectionFlagsAreSticky(t *testing.T) {
	p := newTestPlayer(100, 100)
	goal := newEntity(Descriptor{Kind: KindGoal, X: 0, Y: 0, W: 1, H: 1})

	// Move left and up once
	p.LastX, p.LastY = 110, 120
	p.Resolve(goal)
	assert.True(t, p.MovingLeft)
	assert.False(t, p.MovingRight)
	assert.True(t, p.MovingUp)
	assert.False(t, p.MovingDown)

	// No movement at all: flags keep their previous values
	p.LastX, p.LastY = p.X, p.Y
	p.Resolve(goal)
	assert.True(t, p.MovingLeft)
	assert.True(t, p.MovingUp)

	// Vertical movement only: horizontal memory is untouched
	p.LastY = 90
	p.Resolve(goal)
	assert.True(t, p.MovingLeft)
	assert.True(t, p.MovingDown)
	assert.False(t, p.MovingUp)
}

func TestEmbeddedSolidIsUnresolved(t *testing.T) {
	p := newTestPlayer(150, 50)
	block := solid(140, 60, 100, 100)

	p.Integrate()
	assert.True(t, p.Overlaps(block))
	assert.False(t, p.Resolve(block), "no axis was crossed this tick")
}

func TestPlayerKindIsUnresolved(t *testing.T) {
	p := newTestPlayer(0, 0)
	other := newEntity(Descriptor{Kind: KindPlayer, X: 0, Y: 0, W: 10, H: 10})

	assert.False(t, p.Resolve(other))
}
