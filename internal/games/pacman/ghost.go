package pacman

// ghostBlocked reports whether g sits on a wall, a hidden wall or the board edge.
func (w *World) ghostBlocked(g *Entity) bool {
	if g.X <= 0 || g.X+g.W >= w.BoardWidth() {
		return true
	}
	return firstOverlap(g, &w.Walls) != nil || firstOverlap(g, &w.HiddenWalls) != nil
}

// stepGhost moves g one step. Ghosts on the tunnel row try to leave it
// upwards; a blocked ghost steps back and picks a random heading.
func (w *World) stepGhost(g *Entity) bool {
	if g.Y == w.tunnelY() && g.Dir != DirUp && g.Dir != DirDown {
		w.SetDirection(g, DirUp)
	}

	g.advance()

	if w.ghostBlocked(g) {
		g.undo()
		w.SetDirection(g, w.randomDirection())
		return false
	}
	return true
}
