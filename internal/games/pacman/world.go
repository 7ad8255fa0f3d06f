package pacman

import (
	"math"
	"math/rand"
)

// World holds every entity on the board at one tile size.
type World struct {
	Walls       EntitySet
	Foods       EntitySet
	Cherries    EntitySet
	Ghosts      EntitySet
	HiddenWalls EntitySet
	Player      *Entity

	tile float64
	rng  *rand.Rand
}

// NewWorld creates a world loaded with layout. Random ghost turns draw from rng.
func NewWorld(layout *Layout, tile float64, rng *rand.Rand) *World {
	w := &World{rng: rng}
	w.Load(layout, tile)
	return w
}

// TileSize returns the current tile edge in pixels.
func (w *World) TileSize() float64 {
	return w.tile
}

// BoardWidth returns the board width in pixels.
func (w *World) BoardWidth() float64 {
	return Columns * w.tile
}

// BoardHeight returns the board height in pixels.
func (w *World) BoardHeight() float64 {
	return Rows * w.tile
}

// tunnelY is the y coordinate of the tunnel row.
func (w *World) tunnelY() float64 {
	return w.tile * TunnelRow
}

// Rescale resizes every entity in place for a new tile size.
func (w *World) Rescale(newTile float64) {
	old := w.tile
	if old == newTile || old <= 0 {
		w.tile = newTile
		return
	}
	for _, set := range []*EntitySet{&w.Walls, &w.Foods, &w.Cherries, &w.Ghosts, &w.HiddenWalls} {
		for _, e := range set.All() {
			e.Rescale(old, newTile)
		}
	}
	if w.Player != nil {
		w.Player.Rescale(old, newTile)
	}
	w.tile = newTile
}

// ResetPositions returns the player and ghosts to their anchors and gives
// every ghost a fresh random heading.
func (w *World) ResetPositions() {
	w.Player.Reset()
	for _, g := range w.Ghosts.All() {
		g.Reset()
		w.SetDirection(g, w.randomDirection())
	}
}

// RandomizeGhosts gives every ghost a fresh random heading.
func (w *World) RandomizeGhosts() {
	for _, g := range w.Ghosts.All() {
		w.SetDirection(g, w.randomDirection())
	}
}

func (w *World) randomDirection() Direction {
	return Directions[w.rng.Intn(len(Directions))]
}

// TileSizeFor returns the tile size fitting Columns tiles into a viewport
// width, never below minTile.
func TileSizeFor(viewportWidth, minTile float64) float64 {
	return math.Max(minTile, math.Floor(viewportWidth/Columns))
}
