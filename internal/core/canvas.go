package core

import (
	"math"
	"unicode/utf8"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/canvas_mock.go -package=mocks . Canvas

// Canvas is the drawing surface games render into.
// Coordinates and sizes are in logical field units.
type Canvas interface {
	// Clear erases the frame and fills it with the background colour.
	Clear(bg Color)

	// DrawRect fills a rectangle.
	DrawRect(r RectF, color Color)

	// DrawCircle fills a circle.
	DrawCircle(center Vec2, radius float64, color Color)

	// DrawText draws text with its top-left corner at pos.
	DrawText(text string, pos Vec2, size float64, color Color)

	// MeasureText returns the width and height text would occupy.
	MeasureText(text string, size float64) Vec2
}

// Glyphs used by ScaledCanvas.
const (
	FillRune = '█'
	BallRune = '●'
)

// BoldTextSize is the smallest text size drawn in bold.
const BoldTextSize = 30

// ScaledCanvas draws a logical field onto a Screen, scaling every
// coordinate so the whole field fits the character grid.
// Terminal cells have a single font size, so text size only selects bold.
type ScaledCanvas struct {
	screen *Screen
	field  Vec2
}

// NewScaledCanvas creates a canvas mapping a fieldW×fieldH logical area onto s.
func NewScaledCanvas(s *Screen, fieldW, fieldH float64) *ScaledCanvas {
	return &ScaledCanvas{
		screen: s,
		field:  Vec2{X: fieldW, Y: fieldH},
	}
}

// Screen returns the underlying cell buffer.
func (c *ScaledCanvas) Screen() *Screen {
	return c.screen
}

// scale returns cells per logical unit on each axis.
func (c *ScaledCanvas) scale() (sx, sy float64) {
	if c.field.X <= 0 || c.field.Y <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.field.X, float64(c.screen.Height()) / c.field.Y
}

// Clear implements Canvas.
func (c *ScaledCanvas) Clear(bg Color) {
	c.screen.Clear(bg)
}

// DrawRect implements Canvas. A rectangle always covers at least one cell.
func (c *ScaledCanvas) DrawRect(r RectF, color Color) {
	sx, sy := c.scale()
	x0 := int(math.Round(r.X * sx))
	x1 := int(math.Round(r.Right() * sx))
	y0 := int(math.Round(r.Y * sy))
	y1 := int(math.Round(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(NewRect(x0, y0, x1-x0, y1-y0), FillRune, color)
}

// DrawCircle implements Canvas. Cells whose centres fall inside the circle
// are filled; the cell under the centre always shows the ball glyph.
func (c *ScaledCanvas) DrawCircle(center Vec2, radius float64, color Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	minX := int(math.Floor((center.X - radius) * sx))
	maxX := int(math.Floor((center.X + radius) * sx))
	minY := int(math.Floor((center.Y - radius) * sy))
	maxY := int(math.Floor((center.Y + radius) * sy))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			// Cell centre back in logical units
			dx := (float64(x)+0.5)/sx - center.X
			dy := (float64(y)+0.5)/sy - center.Y
			if dx*dx+dy*dy <= radius*radius {
				c.screen.SetCell(x, y, Cell{Rune: FillRune, Color: color})
			}
		}
	}

	cx := int(math.Floor(center.X * sx))
	cy := int(math.Floor(center.Y * sy))
	c.screen.SetCell(cx, cy, Cell{Rune: BallRune, Color: color})
}

// DrawText implements Canvas.
func (c *ScaledCanvas) DrawText(text string, pos Vec2, size float64, color Color) {
	sx, sy := c.scale()
	x := int(math.Round(pos.X * sx))
	y := int(math.Round(pos.Y * sy))
	c.screen.DrawText(x, y, text, color, size >= BoldTextSize)
}

// MeasureText implements Canvas. One rune occupies one cell.
func (c *ScaledCanvas) MeasureText(text string, size float64) Vec2 {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return Vec2{}
	}
	return Vec2{
		X: float64(utf8.RuneCountInString(text)) / sx,
		Y: 1 / sy,
	}
}
