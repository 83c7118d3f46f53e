package brickout

import (
	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

// updateTitle handles difficulty selection and run start.
// Difficulty keys are applied before confirm within the same tick.
func (g *Game) updateTitle(in core.InputFrame) {
	if in.Has(core.ActionEasy) {
		g.difficulty = config.DifficultyEasy
	}
	if in.Has(core.ActionNormal) {
		g.difficulty = config.DifficultyNormal
	}
	if in.Has(core.ActionHard) {
		g.difficulty = config.DifficultyHard
	}

	if in.Has(core.ActionConfirm) {
		g.startRun()
	}
}

// startRun builds the block grid for the selected difficulty and resets
// everything a run owns.
func (g *Game) startRun() {
	g.grid.Populate(g.cfg.Blocks, g.cfg.Difficulty.BlockCount(g.difficulty))

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.cooldown = 0
	g.paddle.X = g.cfg.Paddle.X
	g.resetBall()

	g.screen = ScreenGameplay
}

// updateResult returns to the title screen on confirm.
func (g *Game) updateResult(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		g.screen = ScreenTitle
	}
}

// updateGameplay runs one physics tick. The order of the stages matters:
// each one sees what the previous one changed.
func (g *Game) updateGameplay(in core.InputFrame) {
	g.updatePaddle(in)

	g.ball.Move()
	g.reflectWalls()

	if g.ball.Pos.Y > g.cfg.Field.Height {
		if g.handleMiss() {
			return
		}
	}

	if core.CircleIntersectsRect(g.ball.Pos, g.ball.Radius, g.paddle.Rect()) {
		g.ball.BounceY()
	}

	if in.Has(core.ActionClearBlocks) {
		g.grid.ClearAll()
	}

	g.cooldown -= g.dt
	if g.cooldown < 0 {
		g.cooldown = 0
	}
	if g.cooldown == 0 {
		g.hitBlock()
	}

	if g.grid.AllCleared() {
		g.screen = ScreenVictory
	}
}

// updatePaddle applies held movement and keeps the paddle on the field.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed

	if in.Has(core.ActionLeft) {
		g.paddle.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += speed
	}

	g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.Field.Width-g.paddle.Width)
}

// reflectWalls flips velocity on the side and top walls. The ball is not
// pushed back inside; the reflected velocity carries it in on later ticks.
func (g *Game) reflectWalls() {
	r := g.ball.Radius

	if g.ball.Pos.X < r || g.ball.Pos.X > g.cfg.Field.Width-r {
		g.ball.BounceX()
	}
	if g.ball.Pos.Y < r {
		g.ball.BounceY()
	}
}

// handleMiss applies the floor policy of the current mode.
// Returns true if the run ended and the tick must stop here.
func (g *Game) handleMiss() bool {
	if g.mode == ModePractice {
		g.resetBall()
		return false
	}

	g.lives--
	if g.lives <= 0 {
		g.screen = ScreenGameOver
		return true
	}

	g.resetBall()
	return false
}

// hitBlock resolves at most one block collision: the lowest-index active
// block touching the ball.
func (g *Game) hitBlock() {
	i := g.grid.FirstHit(g.ball.Pos, g.ball.Radius)
	if i < 0 {
		return
	}

	g.grid.Deactivate(i)
	g.ball.BounceY()
	g.score += g.cfg.Gameplay.BlockPoints
	g.cooldown = g.cfg.Gameplay.CollisionCooldown
}
