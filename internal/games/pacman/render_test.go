package pacman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/trio-arcade/internal/core"
)

// recorder counts draw calls.
type recorder struct {
	clears  int
	sprites map[core.Sprite]int
	rects   int
	texts   []string
	textY   []float64
}

func newRecorder() *recorder {
	return &recorder{sprites: make(map[core.Sprite]int)}
}

func (r *recorder) Clear(w, h float64) { r.clears++ }

func (r *recorder) DrawSprite(s core.Sprite, x, y, w, h float64) { r.sprites[s]++ }

func (r *recorder) DrawRect(x, y, w, h float64, c core.Color) { r.rects++ }

func (r *recorder) DrawText(text string, x, y float64, style core.TextStyle) {
	r.texts = append(r.texts, text)
	r.textY = append(r.textY, y)
}

func TestDrawEmitsEveryVisibleEntity(t *testing.T) {
	g := newTestGame(t, 1)
	r := newRecorder()
	g.Draw(r)

	w := g.world
	if r.clears != 1 {
		t.Errorf("clears = %d", r.clears)
	}
	if r.sprites[SpriteWall] != w.Walls.Len() {
		t.Errorf("wall sprites = %d, want %d", r.sprites[SpriteWall], w.Walls.Len())
	}
	if r.sprites[SpriteCherry] != 3 {
		t.Errorf("cherry sprites = %d", r.sprites[SpriteCherry])
	}
	for _, s := range []core.Sprite{SpriteGhostBlue, SpriteGhostOrange, SpriteGhostPink, SpriteGhostRed, SpritePlayerRight} {
		if r.sprites[s] != 1 {
			t.Errorf("%s drawn %d times", s, r.sprites[s])
		}
	}
	if r.rects != w.Foods.Len() {
		t.Errorf("food rects = %d, want %d", r.rects, w.Foods.Len())
	}
	if len(r.texts) != 1 || r.texts[0] != "x3 0 Best: 0" || r.textY[0] >= 0 {
		t.Errorf("texts = %q at %v", r.texts, r.textY)
	}
}

func TestRenderToScreen(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	// 38-column board centred in 80 columns starts at column 21
	if !strings.Contains(dst.Row(0), "x3 0 Best: 0") {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
	if c := dst.GetCell(21, 1); c.Rune != '█' || c.Color != core.ColorBlue {
		t.Errorf("top-left wall cell = %+v", c)
	}
	if !strings.ContainsRune(dst.String(), '<') {
		t.Error("player glyph missing")
	}
	if !strings.ContainsRune(dst.String(), core.GlyphDot) {
		t.Error("food dots missing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 7)
	for i := 0; i < 3; i++ {
		catch(g)
		g.Step(empty())
	}

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(dst.Row(0), "Game Over: 0  Best: 0") {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
}
