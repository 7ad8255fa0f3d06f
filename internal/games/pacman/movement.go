package pacman

// SetDirection turns e to dir and takes one tentative step. If the step
// lands on a wall it is undone, the previous facing is restored and
// SetDirection returns false.
func (w *World) SetDirection(e *Entity, dir Direction) bool {
	prev := e.Dir
	e.Dir = dir
	e.VX, e.VY = velocityFor(dir, w.tile)
	e.advance()

	if firstOverlap(e, &w.Walls) != nil {
		e.undo()
		e.Dir = prev
		e.VX, e.VY = velocityFor(prev, w.tile)
		return false
	}
	return true
}

// stepPlayer moves the player one step, wrapping on the tunnel row. A step
// into a wall is undone but the heading is kept, so the player presses
// against the wall until it turns.
func (w *World) stepPlayer() bool {
	p := w.Player
	p.advance()

	if p.Y == w.tunnelY() {
		if p.X < -p.W/2 {
			p.X = w.BoardWidth()
		} else if p.X > w.BoardWidth() {
			p.X = -p.W / 2
		}
	}

	if firstOverlap(p, &w.Walls) != nil {
		p.undo()
		return false
	}
	return true
}
