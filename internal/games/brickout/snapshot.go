package brickout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Screen     int
	Difficulty int
	Mode       int
	Score      int
	Lives      int
	Cooldown   float64

	PaddleX float64

	BallX, BallY   float64
	BallVX, BallVY float64

	// Block states for the live blocks: 1 = active, 0 = destroyed
	BlockCount int
	BlockData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blocks := g.grid.Blocks()
	blockData := make([]int, len(blocks))
	for i, b := range blocks {
		if b.Active {
			blockData[i] = 1
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Screen:     int(g.screen),
		Difficulty: int(g.difficulty),
		Mode:       int(g.mode),
		Score:      g.score,
		Lives:      g.lives,
		Cooldown:   g.cooldown,
		PaddleX:    g.paddle.X,
		BallX:      g.ball.Pos.X,
		BallY:      g.ball.Pos.Y,
		BallVX:     g.ball.Vel.X,
		BallVY:     g.ball.Vel.Y,
		BlockCount: g.grid.Count(),
		BlockData:  blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Difficulty) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Cooldown)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
