// Package doodle implements a Doodle Jump-style vertical platformer.
// The doodler bounces off platforms automatically; the player only steers.
package doodle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/registry"
)

// GameKey is the persisted best-score key.
const GameKey = "doodle"

// Sprite handles emitted by Draw.
const (
	SpriteDoodlerRight core.Sprite = "doodle/doodler_right"
	SpriteDoodlerLeft  core.Sprite = "doodle/doodler_left"
	SpritePlatform     core.Sprite = "doodle/platform"
)

// Sheet is how the terminal draws each sprite.
var Sheet = core.SpriteSheet{
	SpriteDoodlerRight: {Rune: '»', Color: core.ColorBrightGreen},
	SpriteDoodlerLeft:  {Rune: '«', Color: core.ColorBrightGreen},
	SpritePlatform:     {Rune: '▀', Color: core.ColorOrange},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Doodle Jump game logic.
type Game struct {
	runtime core.RuntimeConfig // Runtime config (screen size, tick rate)
	cfg     config.DoodleConfig
	rng     *rand.Rand
	store   core.ScoreStore

	boardW, boardH float64

	x, y      float64 // Doodler top-left
	size      float64 // Doodler is square
	vx, vy    float64
	sprite    core.Sprite
	platforms *PlatformManager

	score     int // Highest running total reached
	running   int // Running total; climbing adds, falling subtracts
	best      int
	started   bool
	gameOver  bool
	paused    bool
	tickCount int
}

// New creates a new Doodle Jump game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameKey
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doodle Jump"
}

// TickRate returns the simulation rate the physics constants are tuned for.
func (g *Game) TickRate() int {
	return 60
}

// AttachScores connects the best-score store and loads the stored best.
func (g *Game) AttachScores(store core.ScoreStore) {
	g.store = store
	g.best = max(g.best, core.ReadBestOrZero(store, GameKey))
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadDoodle(configPath)
	if err != nil {
		cfg = config.DefaultDoodleConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))

	g.boardW = float64(runtime.ScreenW) * cfg.Surface.PixelsPerColumn
	g.boardH = float64(runtime.ScreenH) * cfg.Surface.PixelsPerRow
	g.platforms = NewPlatformManager(g.rng, &g.cfg, g.boardW, g.boardH)
	g.restart()
}

// restart places the doodler above the start platform and lays out a
// fresh set of platforms.
func (g *Game) restart() {
	g.size = g.boardW * g.cfg.Layout.DoodlerWidth
	g.x = g.boardW/2 - g.size/2
	g.y = g.boardH*7/8 - g.size
	g.vx = 0
	g.vy = g.cfg.Physics.JumpVelocity
	g.sprite = SpriteDoodlerRight
	g.score = 0
	g.running = 0
	g.started = false
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.platforms.Reset()
}

// Resize rescales the board for a new terminal size.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	w := float64(runtime.ScreenW) * g.cfg.Surface.PixelsPerColumn
	h := float64(runtime.ScreenH) * g.cfg.Surface.PixelsPerRow
	if w == g.boardW && h == g.boardH {
		return
	}
	g.x = g.x / g.boardW * w
	g.y = g.y / g.boardH * h
	g.size = w * g.cfg.Layout.DoodlerWidth
	g.boardW, g.boardH = w, h
	g.platforms.Resize(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.restart()
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.started {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Steering sets a sideways drift that lasts until the other key is pressed
	if in.Has(core.ActionLeft) {
		g.vx = -g.cfg.Physics.StrafeSpeed
		g.sprite = SpriteDoodlerLeft
		g.started = true
	}
	if in.Has(core.ActionRight) {
		g.vx = g.cfg.Physics.StrafeSpeed
		g.sprite = SpriteDoodlerRight
		g.started = true
	}
	if in.Has(core.ActionJump) {
		g.started = true
	}
	if !g.started {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Horizontal movement wraps around the board edges
	g.x += g.vx
	if g.x > g.boardW {
		g.x = 0
	} else if g.x+g.size < 0 {
		g.x = g.boardW
	}

	g.vy += g.cfg.Physics.Gravity
	g.y += g.vy
	fell := g.y > g.boardH

	g.vy = g.platforms.Update(g.doodlerRect(), g.vy, g.boardH*3/4)
	g.platforms.Recycle()
	g.updateScore()

	if fell {
		g.endRun()
	}

	return core.StepResult{State: g.State()}
}

// updateScore adds a random burst while climbing and removes one while
// falling. The score is the best running total reached.
func (g *Game) updateScore() {
	points := 0
	if g.cfg.Physics.MaxScoreBurst > 0 {
		points = g.rng.Intn(g.cfg.Physics.MaxScoreBurst)
	}
	if g.vy < 0 {
		g.running += points
		g.score = max(g.score, g.running)
	} else {
		g.running -= points
	}
}

// endRun enters game over and persists a beaten best score.
func (g *Game) endRun() {
	g.gameOver = true
	// Another session may have raised the stored best since Reset
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))
	if g.score > g.best {
		g.best = g.score
		if g.store != nil {
			_ = g.store.WriteBest(GameKey, g.score)
		}
	}
}

// doodlerRect returns the doodler's collision rectangle.
func (g *Game) doodlerRect() core.RectF {
	return core.NewRectF(g.x, g.y, g.size, g.size)
}

// Draw emits the board to r in pixel coordinates.
func (g *Game) Draw(r core.Renderer) {
	r.Clear(g.boardW, g.boardH)

	for _, p := range g.platforms.Platforms() {
		r.DrawSprite(SpritePlatform, p.X, p.Y, p.W, p.H)
	}
	r.DrawSprite(g.sprite, g.x, g.y, g.size, g.size)

	style := core.TextStyle{Color: core.ColorBrightWhite}
	r.DrawText(fmt.Sprintf("Score: %d", g.score), 0, 0, style)
	r.DrawText(fmt.Sprintf("Best: %d", g.best), 0, g.cfg.Surface.PixelsPerRow, style)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScreenRenderer(dst, Sheet, g.cfg.Surface.PixelsPerColumn, g.cfg.Surface.PixelsPerRow))

	switch {
	case g.gameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  SPACE to restart", g.score, g.best))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case !g.started:
		dst.DrawMessageBox("DOODLE JUMP", "Press SPACE or steer with A/D")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      int
	X, Y      float64
	VX, VY    float64
	Score     int
	Running   int
	Platforms []Platform
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		X:         g.x,
		Y:         g.y,
		VX:        g.vx,
		VY:        g.vy,
		Score:     g.score,
		Running:   g.running,
		Platforms: append([]Platform(nil), g.platforms.Platforms()...),
		GameOver:  g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameKey, func() registry.Game {
		return New()
	})
}
