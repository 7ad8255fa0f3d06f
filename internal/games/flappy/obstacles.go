package flappy

import (
	"math/rand"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
)

// Pipe is one half of a pipe pair. Top pipes hang from above the board,
// bottom pipes rise from below the opening.
type Pipe struct {
	X, Y   float64
	W, H   float64
	Top    bool
	Passed bool // Whether the bird has cleared this pipe (for scoring)
}

// Rect returns the collision rectangle of the pipe.
func (p Pipe) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        *config.FlappyConfig
	boardW     float64
	boardH     float64
	sinceSpawn int // Ticks since the last pair spawned
}

// NewPipeManager creates a pipe manager for a board of the given pixel size.
func NewPipeManager(rng *rand.Rand, cfg *config.FlappyConfig, boardW, boardH float64) *PipeManager {
	pm := &PipeManager{
		pipes:  make([]Pipe, 0, 8),
		rng:    rng,
		cfg:    cfg,
		boardW: boardW,
		boardH: boardH,
	}
	return pm
}

// Reset clears all pipes and restarts the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.sinceSpawn = 0
}

// Resize rescales existing pipes to a new board size.
func (pm *PipeManager) Resize(boardW, boardH float64) {
	sx, sy := boardW/pm.boardW, boardH/pm.boardH
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X *= sx
		p.Y *= sy
		p.W *= sx
		p.H *= sy
	}
	pm.boardW, pm.boardH = boardW, boardH
}

// Update moves pipes left, spawns a pair every SpawnEveryTicks ticks and
// drops pipes that have left the board. Returns the number of pipes the
// bird cleared this tick.
func (pm *PipeManager) Update(birdX float64) int {
	passed := 0

	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X += pm.cfg.Physics.PipeVelocity
		if !p.Passed && birdX > p.X+p.W {
			p.Passed = true
			passed++
		}
	}

	// Pipes are appended in spawn order, so the oldest leave first
	drop := 0
	for drop < len(pm.pipes) && pm.pipes[drop].X < -pm.pipes[drop].W {
		drop++
	}
	if drop > 0 {
		pm.pipes = append(pm.pipes[:0], pm.pipes[drop:]...)
	}

	pm.sinceSpawn++
	if pm.sinceSpawn >= pm.cfg.Physics.SpawnEveryTicks {
		pm.sinceSpawn = 0
		pm.spawnPair()
	}

	return passed
}

// spawnPair places a top and bottom pipe at the right edge of the board
// with a random opening height.
func (pm *PipeManager) spawnPair() {
	w := pm.boardW * pm.cfg.Layout.PipeWidth
	h := pm.boardH * pm.cfg.Layout.PipeHeight
	opening := pm.boardH * pm.cfg.Layout.OpeningSpace

	topY := -h/4 - pm.rng.Float64()*(h/2)

	pm.pipes = append(pm.pipes,
		Pipe{X: pm.boardW, Y: topY, W: w, H: h, Top: true},
		Pipe{X: pm.boardW, Y: topY + h + opening, W: w, H: h},
	)
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(r core.RectF) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.Rect()) {
			return true
		}
	}
	return false
}
