package pacman

import (
	"math"

	"github.com/vovakirdan/trio-arcade/internal/core"
)

// Kind is the variant of an entity.
type Kind int

const (
	KindWall Kind = iota
	KindFood
	KindCherry
	KindGhost
	KindPlayer
	KindHiddenWall
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	case KindCherry:
		return "cherry"
	case KindGhost:
		return "ghost"
	case KindPlayer:
		return "player"
	case KindHiddenWall:
		return "hidden_wall"
	default:
		return "unknown"
	}
}

// Direction is an entity's facing.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every facing in the order random picks index into.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// directionFor maps a steering action to a facing.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}

// GhostColor identifies one of the four ghosts.
type GhostColor int

const (
	GhostNone GhostColor = iota
	GhostBlue
	GhostOrange
	GhostPink
	GhostRed
)

func ghostColorFor(t Tile) GhostColor {
	switch t {
	case TileGhostBlue:
		return GhostBlue
	case TileGhostOrange:
		return GhostOrange
	case TileGhostPink:
		return GhostPink
	case TileGhostRed:
		return GhostRed
	}
	return GhostNone
}

// Sprite returns the sprite handle for a ghost of this colour.
func (c GhostColor) Sprite() core.Sprite {
	switch c {
	case GhostBlue:
		return SpriteGhostBlue
	case GhostOrange:
		return SpriteGhostOrange
	case GhostPink:
		return SpriteGhostPink
	case GhostRed:
		return SpriteGhostRed
	}
	return ""
}

// Entity is anything placed on the board. Food and hidden walls have no sprite.
type Entity struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	VX, VY float64
	Dir    Direction

	// Reset anchor.
	StartX, StartY float64

	Sprite core.Sprite
	Ghost  GhostColor
}

// NewEntity creates an entity of kind k spawned on the tile whose top-left corner is (x, y).
func NewEntity(k Kind, x, y, tile float64) *Entity {
	e := &Entity{Kind: k, Dir: DirRight}
	size := sizeFor(k, tile)
	if k == KindFood {
		off := (tile - size) / 2
		x += off
		y += off
	}
	e.X, e.Y = x, y
	e.W, e.H = size, size
	e.StartX, e.StartY = x, y

	switch k {
	case KindWall:
		e.Sprite = SpriteWall
	case KindCherry:
		e.Sprite = SpriteCherry
	case KindPlayer:
		e.Sprite = SpritePlayerRight
	}
	return e
}

// sizeFor returns the edge length of kind k at the given tile size.
func sizeFor(k Kind, tile float64) float64 {
	if k == KindFood {
		return math.Max(1, math.Floor(tile/8))
	}
	return tile
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// velocityFor returns the quarter-tile velocity for a facing.
func velocityFor(d Direction, tile float64) (vx, vy float64) {
	step := tile / 4
	switch d {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	}
	return 0, 0
}

// Reset returns the entity to its anchor and stops it. The facing is kept.
func (e *Entity) Reset() {
	e.X, e.Y = e.StartX, e.StartY
	e.VX, e.VY = 0, 0
}

// Rescale moves the entity and its anchor to their proportional positions
// on a board of a new tile size.
func (e *Entity) Rescale(oldTile, newTile float64) {
	e.X = e.X / oldTile * newTile
	e.Y = e.Y / oldTile * newTile
	e.VX = e.VX / oldTile * newTile
	e.VY = e.VY / oldTile * newTile
	size := sizeFor(e.Kind, newTile)
	e.W, e.H = size, size
	e.StartX = e.StartX / oldTile * newTile
	e.StartY = e.StartY / oldTile * newTile
}

// undo reverses the last velocity step.
func (e *Entity) undo() {
	e.X -= e.VX
	e.Y -= e.VY
}

// advance applies one velocity step.
func (e *Entity) advance() {
	e.X += e.VX
	e.Y += e.VY
}

// EntitySet is an unordered collection with stable iteration between mutations.
type EntitySet struct {
	items []*Entity
}

// Add inserts e. Adding an entity already present is a no-op.
func (s *EntitySet) Add(e *Entity) {
	for _, it := range s.items {
		if it == e {
			return
		}
	}
	s.items = append(s.items, e)
}

// Remove deletes e if present and reports whether it was found.
func (s *EntitySet) Remove(e *Entity) bool {
	for i, it := range s.items {
		if it == e {
			last := len(s.items) - 1
			s.items[i] = s.items[last]
			s.items[last] = nil
			s.items = s.items[:last]
			return true
		}
	}
	return false
}

// Len returns the number of entities.
func (s *EntitySet) Len() int {
	return len(s.items)
}

// All returns the entities. The slice must not be modified.
func (s *EntitySet) All() []*Entity {
	return s.items
}

// Clear removes every entity.
func (s *EntitySet) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
