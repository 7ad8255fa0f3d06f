package pacman

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Score     int
	Best      int
	Lives     int
	Level     int
	TileSize  float64
	Player    Point
	PlayerDir Direction
	Ghosts    []Point
	GhostDirs []Direction
	Food      int
	Cherries  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	s := Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Paused:    g.paused,
		Score:     g.score,
		Best:      g.best,
		Lives:     g.lives,
		Level:     g.level,
		TileSize:  w.TileSize(),
		Player:    Point{w.Player.X, w.Player.Y},
		PlayerDir: w.Player.Dir,
		Food:      w.Foods.Len(),
		Cherries:  w.Cherries.Len(),
	}
	for _, gh := range w.Ghosts.All() {
		s.Ghosts = append(s.Ghosts, Point{gh.X, gh.Y})
		s.GhostDirs = append(s.GhostDirs, gh.Dir)
	}
	return s
}
