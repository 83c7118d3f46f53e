package brickout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickout/internal/core"
)

func TestBrightness(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{4999, 0},
		{5000, 14},
		{10000, 28},
		{25000, 70},
		{30000, 84},
		{34999, 84},
		{35000, 95},
		{40000, 107},
		{45000, 118},
		{79999, 188},
		{80000, 200},
		{90000, 200},
		{1000000, 200},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Brightness(tc.score), "score %d", tc.score)
	}
}

func TestBrightnessMonotonic(t *testing.T) {
	prev := Brightness(0)
	for score := 0; score <= 100000; score += 1000 {
		b := Brightness(score)
		assert.GreaterOrEqual(t, b, prev, "score %d", score)
		assert.LessOrEqual(t, b, 200, "score %d", score)
		prev = b
	}
}

func TestBackgroundFollowsScreen(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.score = 10000
	assert.Equal(t, core.ColorBlack, g.Background(), "title is always black")

	startRun(t, g, core.ActionEasy)
	assert.Equal(t, core.Gray(0), g.Background())

	g.score = 10000
	assert.Equal(t, core.Gray(28), g.Background())

	g.screen = ScreenVictory
	assert.Equal(t, core.ColorBlack, g.Background())
}
