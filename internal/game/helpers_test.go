package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tankjump/internal/config"
)

// testLayout is a small level: the player above a floor, a goal far away.
func testLayout(extra ...Descriptor) []Descriptor {
	layout := []Descriptor{
		{Kind: KindPlayer, X: 150, Y: 50, W: 40, H: 60},
		{Kind: KindSolid, X: 0, Y: 200, W: 720, H: 40},
		{Kind: KindGoal, X: 40, Y: 480, W: 40, H: 40},
	}
	return append(layout, extra...)
}

func newTestGame(t *testing.T, layout []Descriptor) *Game {
	t.Helper()
	g, err := New(layout, config.Default(), nil)
	require.NoError(t, err)
	return g
}

// newTestPlayer returns a free-standing player with default physics.
func newTestPlayer(x, y float64) *Player {
	return newPlayer(newEntity(Descriptor{Kind: KindPlayer, X: x, Y: y, W: 40, H: 60}), config.Default().Physics)
}
