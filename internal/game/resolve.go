package game

// updateDirection refreshes direction memory from the last movement.
func (p *Player) updateDirection() {
	if p.LastX != p.X {
		p.MovingLeft = p.LastX > p.X
		p.MovingRight = p.LastX < p.X
	}
	if p.LastY != p.Y {
		p.MovingUp = p.LastY > p.Y
		p.MovingDown = p.LastY < p.Y
	}
}

// penetration reports which axes the player crossed into o during the
// last integration step.
func (p *Player) penetration(o *Entity) (fixX, fixY bool) {
	if p.MovingDown && p.LastY+p.H <= o.Y && p.Y+p.H > o.Y {
		fixY = true
	}
	if p.MovingUp && p.LastY >= o.Y+o.H && p.Y < o.Y+o.H {
		fixY = true
	}
	if p.MovingRight && p.LastX+p.W <= o.X && p.X+p.W > o.X {
		fixX = true
	}
	if p.MovingLeft && p.LastX >= o.X+o.W && p.X < o.X+o.W {
		fixX = true
	}
	return fixX, fixY
}

// Resolve applies the response to colliding with o and reports whether
// the collision was handled.
func (p *Player) Resolve(o *Entity) bool {
	p.updateDirection()
	fixX, fixY := p.penetration(o)
	buffer := p.phys.SurfaceBuffer

	switch o.Kind {
	case KindPit:
		if p.MovingDown {
			p.Dead = true
		}
		return true

	case KindGoal:
		p.Won = true
		return true

	case KindSolid:
		resolved := false
		if fixX {
			if p.MovingRight {
				p.X = o.X - p.W - buffer
			} else if p.MovingLeft {
				p.X = o.X + o.W + buffer
			}
			// A wall ends any braking too, or the leftover delta would
			// push the player back the other way.
			p.VX = 0
			p.DeltaX = 0
			resolved = true
		}
		if fixY {
			// Vertical velocity is left alone; gravity keeps the player
			// pressed against the floor.
			if p.MovingDown {
				p.Y = o.Y - p.H - buffer
			} else if p.MovingUp {
				p.Y = o.Y + o.H + buffer
			}
			resolved = true
		}
		return resolved

	case KindSpring:
		p.VY = p.phys.SpringImpulse
		return true
	}

	return false
}
