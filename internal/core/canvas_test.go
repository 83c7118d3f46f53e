package core

import (
	"math"
	"strings"
	"testing"
)

func newFieldCanvas() *ScaledCanvas {
	// 80x24 cells over an 800x600 field: 10 units per column, 25 per row
	return NewScaledCanvas(NewScreen(80, 24), 800, 600)
}

func TestScaledCanvasDrawRect(t *testing.T) {
	c := newFieldCanvas()
	c.DrawRect(NewRectF(20, 30, 60, 20), ColorRed)

	s := c.Screen()
	for x := 2; x < 8; x++ {
		cell := s.GetCell(x, 1)
		if cell.Rune != FillRune || cell.Color != ColorRed {
			t.Errorf("expected red fill at (%d, 1), got %+v", x, cell)
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(8, 1) != ' ' {
		t.Error("DrawRect should stay inside the scaled bounds")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("a 20-unit tall rect should cover a single row")
	}
}

func TestScaledCanvasDrawRectMinimumCell(t *testing.T) {
	c := newFieldCanvas()
	c.DrawRect(NewRectF(100, 100, 1, 1), ColorWhite)

	if c.Screen().Get(10, 4) != FillRune {
		t.Error("a sub-cell rect should still cover one cell")
	}
}

func TestScaledCanvasDrawCircle(t *testing.T) {
	c := newFieldCanvas()
	c.DrawCircle(Vec2{400, 300}, 10, ColorWhite)

	if c.Screen().Get(40, 12) != BallRune {
		t.Errorf("expected ball glyph at centre cell, got %q", c.Screen().Get(40, 12))
	}
}

func TestScaledCanvasText(t *testing.T) {
	c := newFieldCanvas()

	dim := c.MeasureText("Game Over", 40)
	if math.Abs(dim.X-90) > 1e-9 || math.Abs(dim.Y-25) > 1e-9 {
		t.Errorf("MeasureText() = %v, expected {90 25}", dim)
	}

	c.DrawText("Game Over", Vec2{(800 - dim.X) / 2, 300}, 40, ColorWhite)
	row := c.Screen().Row(12)
	col := strings.Index(row, "Game Over")
	if col < 0 {
		t.Fatalf("expected centred text on row 12, got %q", row)
	}
	if !c.Screen().GetCell(col, 12).Bold {
		t.Error("large text should be bold")
	}

	c.DrawText("Score: 0", Vec2{0, 0}, 20, ColorWhite)
	if c.Screen().GetCell(0, 0).Bold {
		t.Error("small text should not be bold")
	}
}

func TestScaledCanvasClear(t *testing.T) {
	c := newFieldCanvas()
	c.DrawRect(NewRectF(0, 0, 800, 600), ColorBlue)
	c.Clear(Gray(200))

	if c.Screen().Background() != Gray(200) {
		t.Errorf("Background() = %v, expected gray 200", c.Screen().Background())
	}
	if c.Screen().Get(0, 0) != ' ' {
		t.Error("Clear should erase drawn cells")
	}
}
