package brickout

import "github.com/vovakirdan/brickout/internal/core"

// Score tiers of the background brightness ramp.
const (
	brightnessStep     = 5000  // Points per brightness step
	brightnessLowTier  = 30000 // End of the first ramp
	brightnessHighTier = 80000 // Score at which brightness stops rising
	brightnessMax      = 200
)

// Brightness maps a score to a gray level. The field gets lighter every
// 5000 points: 14 levels per step up to 30000, then about 11.6 per step,
// capped at 200 from 80000 on.
func Brightness(score int) int {
	var b int
	switch {
	case score <= brightnessLowTier:
		b = (score / brightnessStep) * 14
	case score < brightnessHighTier:
		steps := (score - brightnessLowTier) / brightnessStep
		b = 84 + int(float64(steps)*11.6)
	default:
		b = brightnessMax
	}

	if b > brightnessMax {
		b = brightnessMax
	}
	return b
}

// Background returns the clear colour for the current frame.
// Only gameplay tracks the score; every other screen is black.
func (g *Game) Background() core.Color {
	if g.screen != ScreenGameplay {
		return core.ColorBlack
	}
	return core.Gray(uint8(Brightness(g.score))) //#nosec G115 -- Brightness is within [0, 200]
}
