// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/registry"
)

// GameKey is the persisted best-score key.
const GameKey = "flappy"

// Sprite handles emitted by Draw.
const (
	SpriteBird       core.Sprite = "flappy/bird"
	SpritePipeTop    core.Sprite = "flappy/pipe_top"
	SpritePipeBottom core.Sprite = "flappy/pipe_bottom"
)

// Sheet is how the terminal draws each sprite.
var Sheet = core.SpriteSheet{
	SpriteBird:       {Rune: '▶', Color: core.ColorBrightYellow},
	SpritePipeTop:    {Rune: '█', Color: core.ColorGreen},
	SpritePipeBottom: {Rune: '█', Color: core.ColorBrightGreen},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	store   core.ScoreStore

	boardW, boardH float64 // Pixel surface size

	birdX, birdY float64 // Top-left of the bird hitbox
	birdW, birdH float64
	birdVel      float64 // Vertical velocity, positive is down
	pipes        *PipeManager
	halfPoints   int  // Each cleared pipe is half a point
	best         int  // Best whole score
	started      bool // Whether the first flap has happened
	gameOver     bool // Whether game has ended
	paused       bool // Whether game is paused
	tickCount    int  // Number of ticks since start
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameKey
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
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
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadFlappy(configPath)
	if err != nil {
		gameCfg = config.DefaultFlappyConfig()
	}
	g.cfg = gameCfg
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))

	g.boardW, g.boardH = g.surface(cfg)
	g.pipes = NewPipeManager(g.rng, &g.cfg, g.boardW, g.boardH)
	g.layoutBird()
	g.restart()
}

// surface converts the terminal size to the pixel board.
func (g *Game) surface(cfg core.RuntimeConfig) (float64, float64) {
	return float64(cfg.ScreenW) * g.cfg.Surface.PixelsPerColumn,
		float64(cfg.ScreenH) * g.cfg.Surface.PixelsPerRow
}

// layoutBird sizes and places the bird horizontally for the current board.
func (g *Game) layoutBird() {
	g.birdW = g.boardW * g.cfg.Layout.BirdWidth
	g.birdH = g.birdW * g.cfg.Layout.BirdAspect
	g.birdX = g.boardW * g.cfg.Layout.BirdX
}

// restart begins a new run without reloading config.
func (g *Game) restart() {
	g.birdY = g.boardH / 2
	g.birdVel = 0
	g.halfPoints = 0
	g.started = false
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.pipes.Reset()
}

// Resize rescales the board for a new terminal size.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	w, h := g.surface(cfg)
	if w == g.boardW && h == g.boardH {
		return
	}
	g.birdY = g.birdY / g.boardH * h
	g.boardW, g.boardH = w, h
	g.layoutBird()
	g.pipes.Resize(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.restart()
			g.flap()
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

	if in.Has(core.ActionJump) {
		g.flap()
	}
	if !g.started {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Apply physics; the ceiling stops the bird but does not kill it
	g.birdVel += g.cfg.Physics.Gravity
	g.birdY = math.Max(g.birdY+g.birdVel, 0)

	if g.birdY > g.boardH {
		g.endRun()
	}

	// Update pipes and check for scoring
	g.halfPoints += g.pipes.Update(g.birdX)

	if g.pipes.CheckCollision(g.birdRect()) {
		g.endRun()
	}

	return core.StepResult{State: g.State()}
}

// flap starts the run if needed and kicks the bird upwards.
func (g *Game) flap() {
	g.started = true
	g.birdVel = g.cfg.Physics.FlapVelocity
}

// endRun enters game over and persists a beaten best score.
func (g *Game) endRun() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	// Another session may have raised the stored best since Reset
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))
	if s := g.score(); s > g.best {
		g.best = s
		if g.store != nil {
			_ = g.store.WriteBest(GameKey, s)
		}
	}
}

// score is the whole-point score.
func (g *Game) score() int {
	return g.halfPoints / 2
}

// birdRect returns the bird's collision rectangle.
func (g *Game) birdRect() core.RectF {
	return core.NewRectF(g.birdX, g.birdY, g.birdW, g.birdH)
}

// Draw emits the board to r in pixel coordinates.
func (g *Game) Draw(r core.Renderer) {
	r.Clear(g.boardW, g.boardH)

	for _, p := range g.pipes.Pipes() {
		s := SpritePipeBottom
		if p.Top {
			s = SpritePipeTop
		}
		r.DrawSprite(s, p.X, p.Y, p.W, p.H)
	}

	r.DrawSprite(SpriteBird, g.birdX, g.birdY, g.birdW, g.birdH)

	pad := g.cfg.Surface.PixelsPerColumn
	r.DrawText(fmt.Sprintf("Score: %d", g.score()), pad, 0, core.TextStyle{Color: core.ColorBrightWhite})
	r.DrawText(fmt.Sprintf("Best: %d", g.best), g.boardW-pad, 0, core.TextStyle{Color: core.ColorBrightWhite, Align: core.AlignRight})
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScreenRenderer(dst, Sheet, g.cfg.Surface.PixelsPerColumn, g.cfg.Surface.PixelsPerRow))

	switch {
	case g.gameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press SPACE to fly again", g.score()))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case !g.started:
		dst.DrawMessageBox("FLAPPY BIRD", "Press SPACE to flap")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       int
	BirdY      float64
	BirdVel    float64
	HalfPoints int
	Pipes      []Pipe
	GameOver   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tickCount,
		BirdY:      g.birdY,
		BirdVel:    g.birdVel,
		HalfPoints: g.halfPoints,
		Pipes:      append([]Pipe(nil), g.pipes.Pipes()...),
		GameOver:   g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameKey, func() registry.Game {
		return New()
	})
}
