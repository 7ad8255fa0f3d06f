package pacman

import (
	"math/rand"
	"testing"
)

func newTestWorld(seed int64) *World {
	return NewWorld(&Maze, 32, rand.New(rand.NewSource(seed)))
}

func TestSetDirectionTwiceMovesTwoSteps(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	x0, y0 := p.X, p.Y

	if !w.SetDirection(p, DirLeft) || !w.SetDirection(p, DirLeft) {
		t.Fatal("left from spawn should be open")
	}
	if p.X != x0-16 || p.Y != y0 {
		t.Errorf("after two steps at (%v,%v), want (%v,%v)", p.X, p.Y, x0-16, y0)
	}
	if p.Dir != DirLeft || p.VX != -8 || p.VY != 0 {
		t.Errorf("dir=%v v=(%v,%v)", p.Dir, p.VX, p.VY)
	}
}

func TestSetDirectionBlockedReverts(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	w.SetDirection(p, DirLeft)
	x0, y0 := p.X, p.Y

	// Row 14 above the spawn is wall
	if w.SetDirection(p, DirUp) {
		t.Fatal("up from spawn should be blocked")
	}
	if p.X != x0 || p.Y != y0 {
		t.Errorf("position moved to (%v,%v)", p.X, p.Y)
	}
	if p.Dir != DirLeft || p.VX != -8 || p.VY != 0 {
		t.Errorf("dir=%v v=(%v,%v), want Left (-8,0)", p.Dir, p.VX, p.VY)
	}
}

func TestStepPlayerUndoesWallStep(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	p.Dir, p.VX, p.VY = DirUp, 0, -8
	x0, y0 := p.X, p.Y

	if w.stepPlayer() {
		t.Error("step into wall should fail")
	}
	if p.X != x0 || p.Y != y0 {
		t.Errorf("player at (%v,%v), want (%v,%v)", p.X, p.Y, x0, y0)
	}
	// Heading survives the bump
	if p.Dir != DirUp || p.VY != -8 {
		t.Errorf("dir=%v vy=%v", p.Dir, p.VY)
	}
}

func TestStepPlayerTunnelWrap(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"left edge", -17, 0, 608},
		{"moving left", -16, -8, 608},
		{"right edge", 609, 0, -16},
		{"inside", -16, 0, -16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(1)
			p := w.Player
			p.X, p.Y = tt.x, 9*32
			p.VX, p.VY = tt.vx, 0
			w.stepPlayer()
			if p.X != tt.want {
				t.Errorf("X = %v, want %v", p.X, tt.want)
			}
		})
	}
}

func TestStepPlayerNoWrapOffTunnelRow(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	p.X, p.Y = -17, 19*32
	p.VX, p.VY = 0, 0
	w.stepPlayer()
	if p.X != -17 {
		t.Errorf("X = %v, want -17", p.X)
	}
}

func redGhost(t *testing.T, w *World) *Entity {
	t.Helper()
	for _, g := range w.Ghosts.All() {
		if g.Ghost == GhostRed {
			return g
		}
	}
	t.Fatal("red ghost not loaded")
	return nil
}

func TestGhostBlockedRedirects(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(seed)
		g := redGhost(t, w)

		// Red spawns at row 8, column 9 with walls left and right
		g.X, g.Y = 9*32, 8*32
		g.Dir, g.VX, g.VY = DirLeft, -8, 0

		if w.stepGhost(g) {
			t.Fatalf("seed %d: ghost step into wall should fail", seed)
		}

		// Left and right stay blocked, so the ghost either keeps its old
		// heading in place or takes one step up or down.
		switch g.Dir {
		case DirLeft:
			if g.X != 288 || g.Y != 256 {
				t.Errorf("seed %d: rejected turn left ghost at (%v,%v)", seed, g.X, g.Y)
			}
		case DirUp:
			if g.X != 288 || g.Y != 248 {
				t.Errorf("seed %d: up turn left ghost at (%v,%v)", seed, g.X, g.Y)
			}
		case DirDown:
			if g.X != 288 || g.Y != 264 {
				t.Errorf("seed %d: down turn left ghost at (%v,%v)", seed, g.X, g.Y)
			}
		default:
			t.Errorf("seed %d: unexpected direction %v", seed, g.Dir)
		}
		if firstOverlap(g, &w.Walls) != nil {
			t.Errorf("seed %d: ghost overlaps a wall", seed)
		}
	}
}

func TestGhostForcedUpOnTunnelRow(t *testing.T) {
	w := newTestWorld(1)
	g := redGhost(t, w)

	// Row 9, column 9 with an open tile above
	g.X, g.Y = 9*32, 9*32
	g.Dir, g.VX, g.VY = DirRight, 8, 0

	if !w.stepGhost(g) {
		t.Fatal("ghost should leave the tunnel row upwards")
	}
	if g.Dir != DirUp || g.X != 288 || g.Y != 9*32-16 {
		t.Errorf("ghost dir=%v at (%v,%v)", g.Dir, g.X, g.Y)
	}
}

func TestGhostBlockedByHiddenWall(t *testing.T) {
	w := newTestWorld(5)
	g := redGhost(t, w)

	// Row 3, column 5 moving left runs into the hidden wall at column 4
	g.X, g.Y = 5*32, 3*32
	g.Dir, g.VX, g.VY = DirLeft, -8, 0

	if w.stepGhost(g) {
		t.Error("hidden wall should block the ghost")
	}
	// Up and down are walls here; only a sideways turn can move it
	if g.Y != 3*32 {
		t.Errorf("ghost ended at y=%v, want %v", g.Y, 3*32)
	}
	if g.X != 160 && g.X != 152 && g.X != 168 {
		t.Errorf("ghost ended at x=%v", g.X)
	}
}

func TestGhostBlockedByBoardEdge(t *testing.T) {
	tests := []struct {
		name string
		x    func(w *World, g *Entity) float64
		dir  Direction
	}{
		{"left edge", func(*World, *Entity) float64 { return 0 }, DirLeft},
		{"right edge", func(w *World, g *Entity) float64 { return w.BoardWidth() - g.W }, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(2)
			w.Walls.Clear()
			w.HiddenWalls.Clear()
			g := redGhost(t, w)

			// Row 1 is off the tunnel row, so only the edge can block
			x0, y0 := tt.x(w, g), 32.0
			g.X, g.Y = x0, y0
			g.Dir = tt.dir
			g.VX, g.VY = velocityFor(tt.dir, w.TileSize())

			if w.stepGhost(g) {
				t.Fatal("step past the board edge should fail")
			}
			switch g.Dir {
			case DirUp, DirDown, DirLeft, DirRight:
			default:
				t.Fatalf("unexpected direction %v", g.Dir)
			}
			// Stepped back to the start, then took one step on the new heading
			if g.X != x0+g.VX || g.Y != y0+g.VY {
				t.Errorf("ghost at (%v,%v), want (%v,%v)", g.X, g.Y, x0+g.VX, y0+g.VY)
			}
		})
	}
}
