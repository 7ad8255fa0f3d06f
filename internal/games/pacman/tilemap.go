package pacman

import (
	"errors"
	"fmt"
)

// Board dimensions in tiles.
const (
	Rows    = 21
	Columns = 19

	// TunnelRow is the only row on which the player wraps horizontally.
	TunnelRow = 9
)

// ErrMalformedLayout is returned when a layout does not have Rows rows of Columns characters.
var ErrMalformedLayout = errors.New("pacman: malformed layout")

// Tile is the meaning of one layout character.
type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileFood
	TileFoodHidden // food with an invisible ghost barrier on the same tile
	TileCherry
	TilePlayer
	TileGhostBlue
	TileGhostOrange
	TileGhostPink
	TileGhostRed
)

// tileFor maps a layout character to its tile. Unknown characters are floor.
func tileFor(ch byte) Tile {
	switch ch {
	case 'X':
		return TileWall
	case ' ':
		return TileFood
	case 'i':
		return TileFoodHidden
	case 'c':
		return TileCherry
	case 'P':
		return TilePlayer
	case 'b':
		return TileGhostBlue
	case 'o':
		return TileGhostOrange
	case 'p':
		return TileGhostPink
	case 'r':
		return TileGhostRed
	default:
		return TileFloor
	}
}

// Layout is a validated Rows x Columns grid of tiles.
type Layout struct {
	tiles [Rows][Columns]Tile
}

// At returns the tile at (row, col).
func (l *Layout) At(row, col int) Tile {
	return l.tiles[row][col]
}

// Count returns how many tiles of kind t the layout contains.
func (l *Layout) Count(t Tile) int {
	n := 0
	for r := range l.tiles {
		for c := range l.tiles[r] {
			if l.tiles[r][c] == t {
				n++
			}
		}
	}
	return n
}

// ParseLayout validates and converts a character grid.
func ParseLayout(rows []string) (Layout, error) {
	var l Layout
	if len(rows) != Rows {
		return l, fmt.Errorf("%w: %d rows, want %d", ErrMalformedLayout, len(rows), Rows)
	}
	for r, row := range rows {
		if len(row) != Columns {
			return l, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedLayout, r, len(row), Columns)
		}
		for c := 0; c < Columns; c++ {
			l.tiles[r][c] = tileFor(row[c])
		}
	}
	return l, nil
}

func mustParseLayout(rows []string) Layout {
	l, err := ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return l
}

// mazeRows is the single shipped maze. 'O' marks out-of-bounds floor.
var mazeRows = []string{
	"XXXXXXXXXXXXXXXXXXX",
	"X        X       cX",
	"X XX XXX X XXX XX X",
	"X   i         i   X",
	"X XX X XXXXX X XX X",
	"X    Xc      X    X",
	"XXXX XXXX XXXX XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXrXX X XXXX",
	"O   i   bpo   i   O",
	"XXXX X XXXXX X XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXXXX X XXXX",
	"X   i    X    i   X",
	"X XX XXX X XXX XX X",
	"Xc X     P     X  X",
	"XX X X XXXXX X X XX",
	"X    X   X   X    X",
	"X XXXXXX X XXXXXX X",
	"X                 X",
	"XXXXXXXXXXXXXXXXXXX",
}

// Maze is the parsed shipped maze.
var Maze = mustParseLayout(mazeRows)

// Load clears every entity set and repopulates them from layout at the
// given tile size. The player keeps facing right.
func (w *World) Load(layout *Layout, tile float64) {
	w.Walls.Clear()
	w.Foods.Clear()
	w.Cherries.Clear()
	w.Ghosts.Clear()
	w.HiddenWalls.Clear()
	w.tile = tile
	w.Player = nil

	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			x, y := float64(c)*tile, float64(r)*tile
			switch t := layout.At(r, c); t {
			case TileWall:
				w.Walls.Add(NewEntity(KindWall, x, y, tile))
			case TileFood:
				w.Foods.Add(NewEntity(KindFood, x, y, tile))
			case TileFoodHidden:
				w.Foods.Add(NewEntity(KindFood, x, y, tile))
				w.HiddenWalls.Add(NewEntity(KindHiddenWall, x, y, tile))
			case TileCherry:
				w.Cherries.Add(NewEntity(KindCherry, x, y, tile))
			case TilePlayer:
				w.Player = NewEntity(KindPlayer, x, y, tile)
			case TileGhostBlue, TileGhostOrange, TileGhostPink, TileGhostRed:
				g := NewEntity(KindGhost, x, y, tile)
				g.Ghost = ghostColorFor(t)
				g.Sprite = g.Ghost.Sprite()
				w.Ghosts.Add(g)
			case TileFloor:
			}
		}
	}
}
