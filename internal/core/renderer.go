package core

import "math"

// Sprite is an opaque handle naming an image a game wants drawn.
// The platform decides how a sprite looks; games never read it back.
type Sprite string

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle carries presentation hints for DrawText.
type TextStyle struct {
	Color Color
	Align Align
}

// Renderer is the drawing surface games emit to. Coordinates are in the
// game's own pixel space; implementations project them to their target.
type Renderer interface {
	Clear(w, h float64)
	DrawSprite(s Sprite, x, y, w, h float64)
	DrawRect(x, y, w, h float64, c Color)
	DrawText(text string, x, y float64, style TextStyle)
}

// Glyph is the terminal appearance of a sprite.
type Glyph struct {
	Rune  rune
	Color Color
}

// SpriteSheet maps sprite handles to glyphs.
type SpriteSheet map[Sprite]Glyph

// Glyph characters used by ScreenRenderer for untextured shapes.
const (
	GlyphMissing = '?'
	GlyphBlock   = '█'
	GlyphDot     = '·'
)

// ScreenRenderer projects pixel-space draw calls onto a Screen.
// One cell covers CellW x CellH pixels; OffsetX/OffsetY shift the origin
// in cells, which lets a game centre its board or reserve HUD rows.
type ScreenRenderer struct {
	Screen  *Screen
	Sheet   SpriteSheet
	CellW   float64
	CellH   float64
	OffsetX int
	OffsetY int
}

// NewScreenRenderer creates a renderer over dst with the given cell size in pixels.
func NewScreenRenderer(dst *Screen, sheet SpriteSheet, cellW, cellH float64) *ScreenRenderer {
	return &ScreenRenderer{
		Screen: dst,
		Sheet:  sheet,
		CellW:  cellW,
		CellH:  cellH,
	}
}

// Column returns the screen column containing pixel x.
func (r *ScreenRenderer) Column(x float64) int {
	return r.OffsetX + int(math.Floor(x/r.CellW))
}

// Line returns the screen row containing pixel y.
func (r *ScreenRenderer) Line(y float64) int {
	return r.OffsetY + int(math.Floor(y/r.CellH))
}

// span converts a pixel rectangle to a cell rectangle covering at least one cell.
func (r *ScreenRenderer) span(x, y, w, h float64) Rect {
	x0, y0 := r.Column(x), r.Line(y)
	x1 := r.OffsetX + int(math.Ceil((x+w)/r.CellW))
	y1 := r.OffsetY + int(math.Ceil((y+h)/r.CellH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear blanks the cells covering the w x h pixel area at the origin.
func (r *ScreenRenderer) Clear(w, h float64) {
	r.Screen.FillRect(r.span(0, 0, w, h), ' ', ColorDefault)
}

// DrawSprite fills the covered cells with the sprite's glyph.
// Sprites missing from the sheet draw as GlyphMissing.
func (r *ScreenRenderer) DrawSprite(s Sprite, x, y, w, h float64) {
	g, ok := r.Sheet[s]
	if !ok {
		g = Glyph{Rune: GlyphMissing, Color: ColorDefault}
	}
	r.Screen.FillRect(r.span(x, y, w, h), g.Rune, g.Color)
}

// DrawRect fills the covered cells with a solid block. Rectangles smaller
// than a cell in either dimension collapse to a single dot at their centre.
func (r *ScreenRenderer) DrawRect(x, y, w, h float64, c Color) {
	if w < r.CellW || h < r.CellH {
		r.Screen.SetCell(r.Column(x+w/2), r.Line(y+h/2), GlyphDot, c)
		return
	}
	r.Screen.FillRect(r.span(x, y, w, h), GlyphBlock, c)
}

// DrawText writes text with its anchor at the cell containing (x, y).
func (r *ScreenRenderer) DrawText(text string, x, y float64, style TextStyle) {
	col := r.Column(x)
	n := len([]rune(text))
	switch style.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	r.Screen.DrawTextColor(col, r.Line(y), text, style.Color)
}

var _ Renderer = (*ScreenRenderer)(nil)
