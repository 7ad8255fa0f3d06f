package flappy

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/trio-arcade/internal/config"
	"github.com/vovakirdan/trio-arcade/internal/core"
)

type memScores map[string]int

func (m memScores) ReadBest(key string) (int, error) { return m[key], nil }

func (m memScores) WriteBest(key string, score int) error {
	m[key] = score
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestBoardGeometry(t *testing.T) {
	g := newTestGame(t, 1)

	if g.boardW != 640 || g.boardH != 384 {
		t.Fatalf("board = %vx%v, want 640x384", g.boardW, g.boardH)
	}
	if g.birdX != 80 || g.birdY != 192 {
		t.Errorf("bird at (%v,%v), want (80,192)", g.birdX, g.birdY)
	}
	if g.birdH != g.birdW*0.7 {
		t.Errorf("bird %vx%v", g.birdW, g.birdH)
	}
}

func TestWaitsForFirstFlap(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.birdY != 192 || g.tickCount != 0 {
		t.Errorf("bird moved before start: y=%v ticks=%d", g.birdY, g.tickCount)
	}
}

func TestFlapAndGravity(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(jump())

	// -6 flap plus one tick of 0.4 gravity
	if !near(g.birdVel, -5.6) {
		t.Errorf("velocity = %v, want -5.6", g.birdVel)
	}
	if !near(g.birdY, 186.4) {
		t.Errorf("y = %v, want %v", g.birdY, 192-5.6)
	}
}

func TestCeilingClampsWithoutEnding(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(jump())
	g.birdY = 1
	g.Step(jump())

	if g.birdY != 0 {
		t.Errorf("y = %v, want 0", g.birdY)
	}
	if g.gameOver {
		t.Error("touching the ceiling should not end the run")
	}
}

func TestFallingOffEndsRun(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(jump())
	for i := 0; i < 200 && !g.gameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.gameOver {
		t.Fatal("expected game over after falling")
	}
	if g.birdY <= g.boardH {
		t.Errorf("y = %v, want below %v", g.birdY, g.boardH)
	}
}

func TestPipeCollisionPersistsBest(t *testing.T) {
	g := newTestGame(t, 1)
	store := memScores{}
	g.AttachScores(store)
	g.Step(jump())

	g.halfPoints = 7
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: g.birdX, Y: 0, W: 50, H: g.boardH})
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("expected game over on pipe hit")
	}
	if res.State.Score != 3 || store[GameKey] != 3 || res.State.Best != 3 {
		t.Errorf("score=%d best=%d stored=%d", res.State.Score, res.State.Best, store[GameKey])
	}
}

func TestGameOverKeepsHigherStoredBest(t *testing.T) {
	g := newTestGame(t, 1)
	store := memScores{}
	g.AttachScores(store)
	g.Step(jump())

	// Another session finished with a better run after this one attached
	store[GameKey] = 9
	g.halfPoints = 7
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: g.birdX, Y: 0, W: 50, H: g.boardH})
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("expected game over on pipe hit")
	}
	if store[GameKey] != 9 || res.State.Best != 9 {
		t.Errorf("stored=%d best=%d, want 9", store[GameKey], res.State.Best)
	}
}

func TestFlapRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(jump())
	g.halfPoints = 4
	g.birdY = g.boardH + 20
	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	res := g.Step(jump())
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("after restart: %+v", res.State)
	}
	if g.birdY != g.boardH/2 || g.birdVel != -6 || !g.started || len(g.pipes.Pipes()) != 0 {
		t.Errorf("bird y=%v vel=%v started=%v pipes=%d", g.birdY, g.birdVel, g.started, len(g.pipes.Pipes()))
	}
	if res.State.Best != 2 {
		t.Errorf("Best = %d, want 2", res.State.Best)
	}
}

func newTestPipes(seed int64) *PipeManager {
	cfg := config.DefaultFlappyConfig()
	return NewPipeManager(rand.New(rand.NewSource(seed)), &cfg, 640, 384)
}

func TestPipeSpawnGeometry(t *testing.T) {
	pm := newTestPipes(9)
	for i := 0; i < 89; i++ {
		pm.Update(80)
	}
	if len(pm.Pipes()) != 0 {
		t.Fatalf("pipes spawned early: %d", len(pm.Pipes()))
	}
	pm.Update(80)

	pipes := pm.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("pipes = %d, want 2", len(pipes))
	}
	top, bottom := pipes[0], pipes[1]
	if !top.Top || bottom.Top {
		t.Fatal("expected top then bottom")
	}
	if top.X != 640 || bottom.X != 640 {
		t.Errorf("spawn x = %v, %v", top.X, bottom.X)
	}
	h := 384 * 0.8
	if top.Y > -h/4+1e-9 || top.Y < -h/4-h/2-1e-9 {
		t.Errorf("top y = %v out of range", top.Y)
	}
	if want := top.Y + h + 384*0.25; !near(bottom.Y, want) {
		t.Errorf("bottom y = %v, want %v", bottom.Y, want)
	}
	if !near(top.W, 640*0.18) || !near(top.H, h) {
		t.Errorf("pipe size %vx%v", top.W, top.H)
	}
}

func TestPipesScoreHalfEachAndDrop(t *testing.T) {
	pm := newTestPipes(1)
	pm.pipes = append(pm.pipes,
		Pipe{X: 0, Y: -100, W: 10, H: 200, Top: true},
		Pipe{X: 0, Y: 300, W: 10, H: 200},
	)

	if n := pm.Update(80); n != 2 {
		t.Errorf("passed = %d, want 2", n)
	}
	if n := pm.Update(80); n != 0 {
		t.Errorf("passed again = %d, want 0", n)
	}

	for i := 0; i < 10; i++ {
		pm.Update(80)
	}
	if len(pm.Pipes()) != 0 {
		t.Errorf("off-board pipes kept: %+v", pm.Pipes())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestRenderShowsHUDAndBird(t *testing.T) {
	g := newTestGame(t, 1)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") || !strings.Contains(dst.Row(0), "Best: 0") {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
	if !strings.Contains(dst.String(), "FLAPPY BIRD") {
		t.Error("start prompt missing")
	}
	// Bird starts at pixel (80,192): column 10, row 12
	if dst.Get(10, 12) != '▶' {
		t.Errorf("cell (10,12) = %q", dst.Get(10, 12))
	}
}

func TestResizeKeepsRelativeHeight(t *testing.T) {
	g := newTestGame(t, 1)
	g.Resize(core.RuntimeConfig{ScreenW: 40, ScreenH: 12})

	if g.boardW != 320 || g.boardH != 192 {
		t.Fatalf("board = %vx%v", g.boardW, g.boardH)
	}
	if g.birdY != 96 || g.birdX != 40 {
		t.Errorf("bird at (%v,%v), want (40,96)", g.birdX, g.birdY)
	}
}
