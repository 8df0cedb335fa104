package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tankjump/internal/core"
	"github.com/vovakirdan/tankjump/internal/game"
)

// hudRows is the number of rows above the play area.
const hudRows = 1

// sprite is how an entity kind is drawn.
type sprite struct {
	r rune
	c core.Color
}

var sprites = map[string]sprite{
	game.KindSolid.String():  {'█', core.ColorBrick},
	game.KindPit.String():    {'^', core.ColorSpike},
	game.KindSpring.String(): {'≡', core.ColorSpring},
	game.KindGoal.String():   {'◆', core.ColorGoal},
}

// Draw renders a snapshot to the screen: a splash screen for every status
// except running, the scaled world otherwise.
func Draw(s *core.Screen, snap game.Snapshot, world core.Rect, missed uint64) {
	s.Clear()

	switch snap.Status {
	case game.StatusStartScreen.String():
		drawSplash(s, "Welcome to Tank Jump!", core.ColorTitle, "Press enter to start")
	case game.StatusGameOver.String():
		drawSplash(s, "Game Over :(", core.ColorWarn, "Press enter to restart")
	case game.StatusWon.String():
		drawSplash(s, "You Win!", core.ColorGoal, "Press enter to restart")
	default:
		drawHUD(s, snap, missed)
		drawWorld(s, snap, world)
	}
}

func drawSplash(s *core.Screen, title string, titleColor core.Color, prompt string) {
	w, h := s.Width(), s.Height()
	if w >= 6 && h >= 4 {
		s.DrawBox(2, 1, w-4, h-2, core.ColorDim)
	}
	s.DrawTextCentered(h/2-1, title, titleColor)
	s.DrawTextCentered(h/2+1, prompt, core.ColorHUD)
}

func drawHUD(s *core.Screen, snap game.Snapshot, missed uint64) {
	left := fmt.Sprintf(" TANK JUMP  tick %d", snap.Stats.Ticks)
	s.DrawText(0, 0, left, core.ColorTitle)

	right := fmt.Sprintf("vx %+.0f vy %+.0f  missed %d  unresolved %d ",
		snap.Player.VX, snap.Player.VY, missed, snap.Stats.Unresolved)
	color := core.ColorHUD
	if missed > 0 || snap.Stats.Unresolved > 0 {
		color = core.ColorWarn
	}
	s.DrawText(s.Width()-len(right), 0, right, color)
}

// drawWorld scales world coordinates into the rows below the HUD.
// The player is drawn last so it stays visible over static entities.
func drawWorld(s *core.Screen, snap game.Snapshot, world core.Rect) {
	if !world.Valid() {
		return
	}
	area := core.NewRect(0, hudRows, float64(s.Width()), float64(s.Height()-hudRows))
	if !area.Valid() {
		return
	}

	sx := area.W / world.W
	sy := area.H / world.H

	toCells := func(e game.EntityState) (x, y, w, h int) {
		x0 := int(math.Floor((e.X - world.X) * sx))
		x1 := int(math.Ceil((e.X + e.W - world.X) * sx))
		y0 := int(math.Floor((e.Y - world.Y) * sy))
		y1 := int(math.Ceil((e.Y + e.H - world.Y) * sy))
		return x0, y0 + hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1)
	}

	var player *game.EntityState
	for i := range snap.Entities {
		e := &snap.Entities[i]
		if e.Kind == game.KindPlayer.String() {
			player = e
			continue
		}
		sp, ok := sprites[e.Kind]
		if !ok {
			continue
		}
		x, y, w, h := toCells(*e)
		s.FillRect(x, y, w, h, sp.r, sp.c)
	}

	if player != nil {
		r := '▶'
		if snap.Player.FacingLeft {
			r = '◀'
		}
		x, y, w, h := toCells(*player)
		// Keep the HUD row clear when the player leaves the top of the world
		if y < hudRows {
			h -= hudRows - y
			y = hudRows
		}
		s.FillRect(x, y, w, h, r, core.ColorPlayer)
	}
}
