package pacman

import (
	"fmt"

	"github.com/vovakirdan/trio-arcade/internal/core"
)

// Sprite handles emitted by Draw.
const (
	SpriteWall        core.Sprite = "pacman/wall"
	SpriteCherry      core.Sprite = "pacman/cherry"
	SpriteGhostBlue   core.Sprite = "pacman/ghost_blue"
	SpriteGhostOrange core.Sprite = "pacman/ghost_orange"
	SpriteGhostPink   core.Sprite = "pacman/ghost_pink"
	SpriteGhostRed    core.Sprite = "pacman/ghost_red"
	SpritePlayerUp    core.Sprite = "pacman/player_up"
	SpritePlayerDown  core.Sprite = "pacman/player_down"
	SpritePlayerLeft  core.Sprite = "pacman/player_left"
	SpritePlayerRight core.Sprite = "pacman/player_right"
)

// FoodColor is the fill colour of food pellets.
const FoodColor = core.ColorWhite

// Sheet is how the terminal draws each sprite.
var Sheet = core.SpriteSheet{
	SpriteWall:        {Rune: '█', Color: core.ColorBlue},
	SpriteCherry:      {Rune: '%', Color: core.ColorBrightRed},
	SpriteGhostBlue:   {Rune: 'M', Color: core.ColorBrightCyan},
	SpriteGhostOrange: {Rune: 'M', Color: core.ColorOrange},
	SpriteGhostPink:   {Rune: 'M', Color: core.ColorBrightMagenta},
	SpriteGhostRed:    {Rune: 'M', Color: core.ColorRed},
	SpritePlayerUp:    {Rune: 'v', Color: core.ColorBrightYellow},
	SpritePlayerDown:  {Rune: '^', Color: core.ColorBrightYellow},
	SpritePlayerLeft:  {Rune: '>', Color: core.ColorBrightYellow},
	SpritePlayerRight: {Rune: '<', Color: core.ColorBrightYellow},
}

// playerSprite returns the player sprite for a facing.
func playerSprite(d Direction) core.Sprite {
	switch d {
	case DirUp:
		return SpritePlayerUp
	case DirDown:
		return SpritePlayerDown
	case DirLeft:
		return SpritePlayerLeft
	default:
		return SpritePlayerRight
	}
}

// HUD returns the status line.
func (g *Game) HUD() string {
	if g.phase == PhaseGameOver {
		return fmt.Sprintf("Game Over: %d  Best: %d", g.score, g.best)
	}
	return fmt.Sprintf("x%d %d Best: %d", g.lives, g.score, g.best)
}

// Draw emits the board to r in pixel coordinates. The HUD sits one tile
// above the board.
func (g *Game) Draw(r core.Renderer) {
	w := g.world
	r.Clear(w.BoardWidth(), w.BoardHeight())

	for _, e := range w.Walls.All() {
		r.DrawSprite(e.Sprite, e.X, e.Y, e.W, e.H)
	}
	for _, e := range w.Foods.All() {
		r.DrawRect(e.X, e.Y, e.W, e.H, FoodColor)
	}
	for _, e := range w.Cherries.All() {
		r.DrawSprite(e.Sprite, e.X, e.Y, e.W, e.H)
	}
	for _, e := range w.Ghosts.All() {
		r.DrawSprite(e.Sprite, e.X, e.Y, e.W, e.H)
	}
	p := w.Player
	r.DrawSprite(p.Sprite, p.X, p.Y, p.W, p.H)

	r.DrawText(g.HUD(), 0, -w.TileSize(), core.TextStyle{Color: core.ColorBrightWhite})
}

// Render draws the game to a terminal screen. A tile is two columns wide
// and one row tall; the board is centred below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	tile := g.world.TileSize()
	sr := core.NewScreenRenderer(dst, Sheet, tile/2, tile)
	sr.OffsetX = max(0, (dst.Width()-2*Columns)/2)
	sr.OffsetY = 1
	g.Draw(sr)

	switch {
	case g.phase == PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", "Press R to restart")
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to continue")
	}
}
