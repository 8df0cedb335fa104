package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
)

func TestClassicDefaultLayout(t *testing.T) {
	lvl := Classic(config.Default())
	require.NoError(t, lvl.Validate())

	want := []game.Descriptor{
		{Kind: game.KindPlayer, X: 150, Y: 50, W: 40, H: 60},
		{Kind: game.KindPit, X: 0, Y: 560, W: 1280, H: 40},
		{Kind: game.KindSolid, X: 0, Y: 0, W: 1280, H: 40},
		{Kind: game.KindSolid, X: 0, Y: 0, W: 40, H: 600},
		{Kind: game.KindSolid, X: 1240, Y: 0, W: 40, H: 600},
		{Kind: game.KindSolid, X: 0, Y: 200, W: 720, H: 40},
		{Kind: game.KindSolid, X: 920, Y: 200, W: 360, H: 40},
		{Kind: game.KindSolid, X: 0, Y: 520, W: 240, H: 40},
		{Kind: game.KindSolid, X: 360, Y: 520, W: 720, H: 40},
		{Kind: game.KindSpring, X: 360, Y: 520, W: 40, H: 40},
		{Kind: game.KindGoal, X: 40, Y: 480, W: 40, H: 40},
	}
	assert.Equal(t, ClassicName, lvl.Name)
	assert.Equal(t, want, lvl.Entities)
	assert.Equal(t, core.NewRect(0, 0, 1280, 600), lvl.Bounds())
}

func TestComputeEdgesSplitsPadding(t *testing.T) {
	e := ComputeEdges(config.LayoutConfig{
		ScreenWidth:      1300,
		ScreenHeight:     730,
		TileSize:         40,
		ControlBandTiles: 3,
	})

	assert.Equal(t, 10.0, e.Left)
	assert.Equal(t, 1290.0, e.Right)
	assert.Equal(t, 5.0, e.Top)
	assert.Equal(t, 725.0, e.Bottom)
	assert.Equal(t, 605.0, e.ControlTop)
}

func TestClassicWithPadding(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.ScreenWidth = 1300
	cfg.Layout.ScreenHeight = 730

	lvl := Classic(cfg)
	require.NoError(t, lvl.Validate())

	pit := lvl.Entities[1]
	assert.Equal(t, 10.0, pit.X)
	assert.Equal(t, 565.0, pit.Y)
	assert.Equal(t, 1280.0, pit.W)

	wallRight := lvl.Entities[4]
	assert.Equal(t, 1250.0, wallRight.X)

	floorThree := lvl.Entities[7]
	assert.Equal(t, 250.0, floorThree.W, "width includes the left padding")
}

func TestMarshalParseClassic(t *testing.T) {
	lvl := Classic(config.Default())

	data, err := Marshal(lvl)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: spring")

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, lvl, parsed)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
	}{
		{"unknown kind", "entities:\n  - {kind: lava, x: 0, y: 0, w: 1, h: 1}\n", game.CodeUnknownKind},
		{"no goal", "entities:\n  - {kind: player, x: 0, y: 0, w: 40, h: 60}\n", game.CodeNoGoal},
		{"zero size", "entities:\n  - {kind: player, x: 0, y: 0, w: 40, h: 60}\n  - {kind: goal, x: 0, y: 0, w: 0, h: 40}\n", game.CodeInvalidSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			var verr game.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.code, verr.Code)
		})
	}

	_, err := Parse([]byte("name: empty\n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("entities: {"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	src := `name: tiny
entities:
  - {kind: player, x: 10, y: 10, w: 40, h: 60}
  - {kind: solid, x: 0, y: 100, w: 200, h: 20}
  - {kind: goal, x: 150, y: 60, w: 20, h: 20}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	lvl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", lvl.Name)
	require.Len(t, lvl.Entities, 3)
	assert.Equal(t, game.KindSolid, lvl.Entities[1].Kind)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
