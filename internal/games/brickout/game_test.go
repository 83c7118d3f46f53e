package brickout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := NewWithConfig(mode, config.DefaultBrickoutConfig())
	g.Reset(core.DefaultConfig())
	return g
}

// press builds an input frame with the given actions set.
func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startRun selects a difficulty and confirms in a single tick.
func startRun(t *testing.T, g *Game, difficulty core.Action) {
	t.Helper()
	g.Step(press(difficulty, core.ActionConfirm))
	require.Equal(t, ScreenGameplay, g.screen)
}

func TestGameStartsOnTitle(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	assert.Equal(t, ScreenTitle, g.screen)
	assert.Equal(t, config.DifficultyEasy, g.difficulty)
	assert.Equal(t, 0, g.grid.Count())
	assert.Equal(t, 84, g.grid.Capacity())

	// Idle ticks keep the title up
	for iter := 0; iter < 10; iter++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, ScreenTitle, g.screen)
}

func TestStartRunBlockCounts(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   int
	}{
		{"easy", core.ActionEasy, 36},
		{"normal", core.ActionNormal, 60},
		{"hard", core.ActionHard, 84},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, ModeClassic)
			startRun(t, g, tc.action)

			assert.Equal(t, tc.want, g.grid.Count())
			assert.Equal(t, tc.want, g.grid.ActiveCount())
			assert.Equal(t, 0, g.score)
			assert.Equal(t, 3, g.lives)
			assert.Equal(t, 350.0, g.paddle.X)
			assert.Equal(t, core.Vec2{X: 400, Y: 300}, g.ball.Pos)
			assert.Equal(t, core.Vec2{X: 5, Y: -5}, g.ball.Vel)

			state := g.State()
			assert.Equal(t, "gameplay", state.Screen)
			assert.Equal(t, tc.want, state.Blocks)
			assert.False(t, state.GameOver)
		})
	}
}

func TestDifficultySelectedAcrossTicks(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	g.Step(press(core.ActionHard))
	g.Step(press(core.ActionNormal))
	assert.Equal(t, ScreenTitle, g.screen)
	assert.Equal(t, config.DifficultyNormal, g.difficulty)

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, 60, g.grid.Count())
}

func TestDifficultyLockedDuringGameplay(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	startRun(t, g, core.ActionEasy)

	g.Step(press(core.ActionHard))

	assert.Equal(t, config.DifficultyEasy, g.difficulty)
	assert.Equal(t, 36, g.grid.Count())
}

func TestPresetDifficultyShownOnTitle(t *testing.T) {
	SetDifficulty(config.DifficultyHard)
	defer SetDifficulty(config.DifficultyEasy)

	g := newTestGame(t, ModeClassic)
	assert.Equal(t, config.DifficultyHard, g.difficulty)

	g.Step(press(core.ActionConfirm))
	assert.Equal(t, 84, g.grid.Count())
}

func TestDebugClearReachesVictory(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	startRun(t, g, core.ActionNormal)

	g.Step(press(core.ActionClearBlocks))

	assert.Equal(t, ScreenVictory, g.screen)
	assert.Equal(t, 0, g.grid.ActiveCount())
	assert.Equal(t, 0, g.score, "clearing blocks by hand scores nothing")
	assert.True(t, g.State().GameOver)
}

func TestAllBlocksInactiveWinsRegardlessOfBall(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	startRun(t, g, core.ActionEasy)

	for i, ni := 0, g.grid.Count(); i < ni; i++ {
		g.grid.Deactivate(i)
	}
	// Ball about to leave through the floor on the same tick
	g.ball.Pos = core.Vec2{X: 700, Y: 598}
	g.ball.Vel = core.Vec2{X: 0, Y: 5}

	g.Step(core.NewInputFrame())

	assert.Equal(t, ScreenVictory, g.screen)
	assert.Equal(t, 2, g.lives)
}

func TestResultScreensConfirmOnce(t *testing.T) {
	for _, end := range []Screen{ScreenVictory, ScreenGameOver} {
		t.Run(end.String(), func(t *testing.T) {
			g := newTestGame(t, ModeClassic)
			startRun(t, g, core.ActionEasy)
			g.screen = end

			// Idle ticks stay on the result screen
			g.Step(core.NewInputFrame())
			assert.Equal(t, end, g.screen)

			// Confirm pressed repeatedly within one tick collapses into one transition
			in := press(core.ActionConfirm)
			in.Set(core.ActionConfirm)
			g.Step(in)
			assert.Equal(t, ScreenTitle, g.screen)

			g.Step(core.NewInputFrame())
			assert.Equal(t, ScreenTitle, g.screen)
		})
	}
}

func TestNewRunReinitializesEverything(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	startRun(t, g, core.ActionEasy)

	// Dirty the run, then lose it
	g.score = 7000
	g.lives = 1
	g.paddle.X = 0
	g.cooldown = 0.05
	g.grid.Deactivate(0)
	g.grid.Deactivate(5)
	g.ball.Pos = core.Vec2{X: 400, Y: 599}
	g.ball.Vel = core.Vec2{X: 0, Y: 5}
	g.Step(core.NewInputFrame())
	require.Equal(t, ScreenGameOver, g.screen)

	g.Step(press(core.ActionConfirm))
	require.Equal(t, ScreenTitle, g.screen)
	startRun(t, g, core.ActionNormal)

	assert.Equal(t, 0, g.score)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 0.0, g.cooldown)
	assert.Equal(t, 350.0, g.paddle.X)
	assert.Equal(t, 60, g.grid.ActiveCount())
	assert.Equal(t, core.Vec2{X: 400, Y: 300}, g.ball.Pos)
}

func TestUnknownInputIgnored(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.Step(press(core.ActionQuit, core.ActionLeft, core.ActionClearBlocks))
	assert.Equal(t, ScreenTitle, g.screen)

	startRun(t, g, core.ActionEasy)
	before := g.Snapshot()
	g.Step(press(core.ActionQuit, core.ActionEasy))
	after := g.Snapshot()

	assert.Equal(t, before.Score, after.Score)
	assert.Equal(t, before.PaddleX, after.PaddleX)
	assert.Equal(t, ScreenGameplay, g.screen)
}

func TestIDsAndTitles(t *testing.T) {
	assert.Equal(t, "brickout", New().ID())
	assert.Equal(t, "Brick Out", New().Title())
	assert.Equal(t, "brickout_practice", NewPractice().ID())
	assert.Equal(t, "Brick Out (Practice)", NewPractice().Title())
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs must give identical state
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionNormal)
			inputs[i].Set(core.ActionConfirm)
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 6:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, ModeClassic)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.Equal(t, uint64(600), snap1.Tick)
}
