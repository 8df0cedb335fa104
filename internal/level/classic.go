package level

import (
	"math"

	"github.com/vovakirdan/tankjump/internal/config"
	"github.com/vovakirdan/tankjump/internal/game"
)

// ClassicName is the name of the built-in level.
const ClassicName = "classic"

// Edges is the tile-aligned play area inside the screen.
type Edges struct {
	Left, Right, Top, Bottom float64
	ControlTop               float64 // Top of the control band below the play area
}

// ComputeEdges aligns the play area to whole tiles. Leftover space is split
// evenly as padding on both sides of each axis.
func ComputeEdges(l config.LayoutConfig) Edges {
	var e Edges

	deadX := l.ScreenWidth - math.Floor(l.ScreenWidth/l.TileSize)*l.TileSize
	e.Left = deadX / 2
	e.Right = l.ScreenWidth - deadX/2

	deadY := l.ScreenHeight - math.Floor(l.ScreenHeight/l.TileSize)*l.TileSize
	e.Top = deadY / 2
	e.Bottom = l.ScreenHeight - deadY/2

	e.ControlTop = e.Bottom - float64(l.ControlBandTiles)*l.TileSize
	return e
}

// Classic builds the built-in level: a spike pit along the bottom, a
// ceiling, two walls, two upper floors with a gap, two lower floors with a
// spring on the right one and the goal above the left one.
func Classic(cfg config.Config) Level {
	e := ComputeEdges(cfg.Layout)
	tile := cfg.Layout.TileSize
	width := e.Right - e.Left

	d := func(k game.Kind, x, y, w, h float64) game.Descriptor {
		return game.Descriptor{Kind: k, X: x, Y: y, W: w, H: h}
	}

	return Level{
		Name: ClassicName,
		Entities: []game.Descriptor{
			d(game.KindPlayer, cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
			// Pit
			d(game.KindPit, e.Left, e.ControlTop-tile, width, tile),
			// Ceiling and walls
			d(game.KindSolid, e.Left, e.Top, width, tile),
			d(game.KindSolid, e.Left, e.Top, tile, e.ControlTop-e.Top),
			d(game.KindSolid, e.Right-tile, e.Top, tile, e.ControlTop-e.Top),
			// Upper floors
			d(game.KindSolid, e.Left, e.Top+5*tile, 18*tile, tile),
			d(game.KindSolid, e.Left+23*tile, e.Top+5*tile, width-23*tile, tile),
			// Lower floors; their widths include the left padding
			d(game.KindSolid, e.Left, e.ControlTop-2*tile, e.Left+6*tile, tile),
			d(game.KindSolid, e.Left+9*tile, e.ControlTop-2*tile, e.Left+18*tile, tile),
			// Spring sits inside the fourth floor
			d(game.KindSpring, e.Left+9*tile, e.ControlTop-2*tile, tile, tile),
			d(game.KindGoal, e.Left+tile, e.ControlTop-3*tile, tile, tile),
		},
	}
}
