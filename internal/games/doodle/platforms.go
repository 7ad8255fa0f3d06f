package doodle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
)

// Platform is a ledge the doodler can bounce off.
type Platform struct {
	X, Y float64
	W, H float64
}

// Rect returns the collision rectangle for this platform.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// PlatformManager handles placement, scrolling and recycling of platforms.
type PlatformManager struct {
	platforms []Platform
	rng       *rand.Rand
	cfg       *config.DoodleConfig
	boardW    float64
	boardH    float64
}

// NewPlatformManager creates a platform manager for a board of the given pixel size.
func NewPlatformManager(rng *rand.Rand, cfg *config.DoodleConfig, boardW, boardH float64) *PlatformManager {
	return &PlatformManager{
		platforms: make([]Platform, 0, 8),
		rng:       rng,
		cfg:       cfg,
		boardW:    boardW,
		boardH:    boardH,
	}
}

// size returns the platform dimensions for the current board.
func (pm *PlatformManager) size() (float64, float64) {
	return pm.boardW * pm.cfg.Layout.PlatformWidth, pm.boardH * pm.cfg.Layout.PlatformHeight
}

// randomX picks a whole-pixel x that keeps the platform on the board.
func (pm *PlatformManager) randomX() float64 {
	w, _ := pm.size()
	return math.Floor(pm.rng.Float64() * (pm.boardW - w))
}

// Reset places the start platform under the doodler and a ladder of
// random platforms above it.
func (pm *PlatformManager) Reset() {
	w, h := pm.size()
	l := pm.cfg.Layout

	pm.platforms = pm.platforms[:0]
	pm.platforms = append(pm.platforms, Platform{X: pm.boardW / 2, Y: pm.boardH - l.StartOffset, W: w, H: h})
	for i := 0; i < l.PlatformCount; i++ {
		pm.platforms = append(pm.platforms, Platform{
			X: pm.randomX(),
			Y: pm.boardH - l.PlatformSpacing*float64(i) - l.FirstOffset,
			W: w,
			H: h,
		})
	}
}

// Resize rescales existing platforms to a new board size.
func (pm *PlatformManager) Resize(boardW, boardH float64) {
	sx, sy := boardW/pm.boardW, boardH/pm.boardH
	for i := range pm.platforms {
		p := &pm.platforms[i]
		p.X *= sx
		p.Y *= sy
	}
	pm.boardW, pm.boardH = boardW, boardH
	w, h := pm.size()
	for i := range pm.platforms {
		pm.platforms[i].W, pm.platforms[i].H = w, h
	}
}

// Update scrolls platforms down while the doodler climbs above
// scrollLine and bounces it off any platform it falls onto. Platforms are
// handled in order, so a bounce starts scrolling the ones after it in the
// same tick. Returns the doodler's new vertical velocity.
func (pm *PlatformManager) Update(doodler core.RectF, vy, scrollLine float64) float64 {
	jump := pm.cfg.Physics.JumpVelocity
	for i := range pm.platforms {
		p := &pm.platforms[i]
		if vy < 0 && doodler.Y < scrollLine {
			p.Y -= jump
		}
		if vy >= 0 && doodler.Intersects(p.Rect()) {
			vy = jump
		}
	}
	return vy
}

// Recycle replaces platforms that scrolled off the bottom with new ones
// just above the top. Returns how many were replaced.
func (pm *PlatformManager) Recycle() int {
	n := 0
	for len(pm.platforms) > 0 && pm.platforms[0].Y >= pm.boardH {
		pm.platforms = append(pm.platforms[:0], pm.platforms[1:]...)
		w, h := pm.size()
		pm.platforms = append(pm.platforms, Platform{X: pm.randomX(), Y: -h, W: w, H: h})
		n++
	}
	return n
}

// Platforms returns the current platforms, oldest first.
func (pm *PlatformManager) Platforms() []Platform {
	return pm.platforms
}
