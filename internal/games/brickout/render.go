package brickout

import (
	"fmt"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

// Text sizes
const (
	HeadingSize = 40
	BodySize    = 20
)

// hudMargin is the gap between HUD text and the field edge.
const hudMargin = 10

// rowColors colours blocks by row, top to bottom.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorDarkBlue,
	core.ColorPurple,
}

// RowColor returns the colour of blocks in the given row.
func RowColor(row int) core.Color {
	return rowColors[row%len(rowColors)]
}

// Render draws the current screen. It only reads game state.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(g.Background())

	switch g.screen {
	case ScreenTitle:
		g.renderTitle(dst)
	case ScreenGameplay:
		g.renderGameplay(dst)
	case ScreenVictory:
		g.renderResult(dst, "Congratulations!")
	case ScreenGameOver:
		g.renderResult(dst, "Game Over")
	}
}

// renderTitle draws the title, selected difficulty and key hints.
func (g *Game) renderTitle(dst core.Canvas) {
	g.drawCentered(dst, g.Title(), 150, HeadingSize, core.ColorWhite)
	g.drawCentered(dst, "Difficulty: "+g.difficulty.String(), 250, BodySize, core.ColorWhite)
	g.drawCentered(dst, "Press Enter to Start", 350, BodySize, core.ColorGray)

	names := config.Difficulties()
	hint := fmt.Sprintf("Press 1 for %s, 2 for %s, 3 for %s", names[0], names[1], names[2])
	g.drawCentered(dst, hint, 400, BodySize, core.ColorGray)
}

// renderGameplay draws the paddle, ball, blocks and HUD.
func (g *Game) renderGameplay(dst core.Canvas) {
	dst.DrawRect(g.paddle.Rect(), core.ColorWhite)
	dst.DrawCircle(g.ball.Pos, g.ball.Radius, core.ColorWhite)

	for i, b := range g.grid.Blocks() {
		if b.Active {
			dst.DrawRect(b.Rect, RowColor(g.grid.Row(i)))
		}
	}

	fieldW, fieldH := g.cfg.Field.Width, g.cfg.Field.Height

	// Score in the top-right corner
	scoreText := fmt.Sprintf("Score: %d", g.score)
	scoreDim := dst.MeasureText(scoreText, BodySize)
	dst.DrawText(scoreText, core.Vec2{X: fieldW - scoreDim.X - hudMargin, Y: hudMargin}, BodySize, core.ColorWhite)

	// Lives in the bottom-right corner
	livesText := fmt.Sprintf("Lives: %d", g.lives)
	if g.mode == ModePractice {
		livesText = "Practice"
	}
	livesDim := dst.MeasureText(livesText, BodySize)
	dst.DrawText(livesText, core.Vec2{
		X: fieldW - livesDim.X - hudMargin,
		Y: fieldH - livesDim.Y - hudMargin,
	}, BodySize, core.ColorWhite)
}

// renderResult draws a single message in the middle of the field.
func (g *Game) renderResult(dst core.Canvas, text string) {
	dim := dst.MeasureText(text, HeadingSize)
	dst.DrawText(text, core.Vec2{
		X: (g.cfg.Field.Width - dim.X) / 2,
		Y: (g.cfg.Field.Height - dim.Y) / 2,
	}, HeadingSize, core.ColorWhite)
}

// drawCentered draws text horizontally centred at height y.
func (g *Game) drawCentered(dst core.Canvas, text string, y, size float64, color core.Color) {
	dim := dst.MeasureText(text, size)
	dst.DrawText(text, core.Vec2{X: (g.cfg.Field.Width - dim.X) / 2, Y: y}, size, color)
}
