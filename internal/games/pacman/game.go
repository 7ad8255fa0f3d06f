// Package pacman implements the maze chase game: a player eating food in a
// fixed maze while four ghosts wander at random.
package pacman

import (
	"math/rand"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
	"github.com/vovakirdan/trio-arcade/internal/registry"
)

// GameKey is the persisted best-score key.
const GameKey = "pacman"

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the maze chase.
type Game struct {
	cfg     config.PacmanConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   *World
	store   core.ScoreStore

	phase  Phase
	paused bool
	tick   uint64
	lives  int
	score  int
	best   int
	level  int
}

// New creates a new maze chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameKey, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameKey
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// TickRate returns the fixed simulation rate in ticks per second.
// The platform asks before the first Reset, so the config is read here too.
func (g *Game) TickRate() int {
	if g.world == nil {
		g.cfg = loadConfig()
	}
	return g.cfg.Timing.TickRate()
}

// AttachScores connects the best-score store and loads the stored best.
func (g *Game) AttachScores(store core.ScoreStore) {
	g.store = store
	if stored := core.ReadBestOrZero(store, GameKey); stored > g.best {
		g.best = stored
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))
	g.world = &World{rng: g.rng}
	g.restart()
}

func loadConfig() config.PacmanConfig {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		return config.DefaultPacmanConfig()
	}
	return cfg
}

// restart begins a new run on a fresh maze.
func (g *Game) restart() {
	g.world.Load(&Maze, g.tileSize())
	g.world.RandomizeGhosts()
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.level = 1
	g.tick = 0
	g.phase = PhasePlaying
	g.paused = false
}

// tileSize derives the tile size from the terminal width.
func (g *Game) tileSize() float64 {
	viewport := float64(g.runtime.ScreenW) * g.cfg.Board.PixelsPerColumn
	return TileSizeFor(viewport, g.cfg.Board.MinTileSize)
}

// Resize rescales the board in place for a new terminal size.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	if g.world != nil {
		g.world.Rescale(g.tileSize())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	w := g.world

	// Only the latest direction request since the last tick counts
	if dir, ok := directionFor(in.LastSteering()); ok {
		w.SetDirection(w.Player, dir)
		w.Player.Sprite = playerSprite(w.Player.Dir)
	}

	w.stepPlayer()

	for _, ghost := range w.Ghosts.All() {
		if Overlaps(ghost, w.Player) {
			if g.loseLife() {
				return core.StepResult{State: g.State()}
			}
		}
		w.stepGhost(ghost)
	}

	if food := firstOverlap(w.Player, &w.Foods); food != nil {
		w.Foods.Remove(food)
		g.score += g.cfg.Gameplay.FoodPoints
	}
	if w.Foods.Len() == 0 {
		g.nextLevel()
	}

	if cherry := firstOverlap(w.Player, &w.Cherries); cherry != nil {
		w.Cherries.Remove(cherry)
		g.score += g.cfg.Gameplay.CherryPoints
	}

	return core.StepResult{State: g.State()}
}

// loseLife handles a ghost catching the player. It reports whether the
// run ended.
func (g *Game) loseLife() bool {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.recordBest()
		return true
	}
	g.world.ResetPositions()
	return false
}

// nextLevel reloads the maze once all food is gone. Score and lives carry over.
func (g *Game) nextLevel() {
	g.world.Load(&Maze, g.tileSize())
	g.world.ResetPositions()
	g.level++
}

// recordBest persists the score when it beats the best. Store failures are
// the store's concern; play continues regardless.
func (g *Game) recordBest() {
	// Another session may have raised the stored best since Reset
	g.best = max(g.best, core.ReadBestOrZero(g.store, GameKey))
	if g.score <= g.best {
		return
	}
	g.best = g.score
	if g.store != nil {
		_ = g.store.WriteBest(GameKey, g.score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// World exposes the board for rendering and inspection.
func (g *Game) World() *World {
	return g.world
}

var (
	_ registry.Game        = (*Game)(nil)
	_ registry.Resizer     = (*Game)(nil)
	_ registry.Pacer       = (*Game)(nil)
	_ registry.ScoreKeeper = (*Game)(nil)
)
