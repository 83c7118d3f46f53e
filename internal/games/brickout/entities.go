// Package brickout implements Brick Out, a single-screen block breaker with
// difficulty-sized block grids, score and lives.
package brickout

import (
	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
)

// Paddle is the player-controlled rectangle at the bottom of the field.
// Only X changes during a run.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Ball is the moving circle. Velocity is in field units per tick.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Move advances the ball by one tick.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Block is a destructible rectangle. Once inactive it never comes back
// within the same run.
type Block struct {
	Rect   core.RectF
	Active bool
}

// BlockRect returns the rectangle of the block at index i.
func BlockRect(layout config.BlocksConfig, i int) core.RectF {
	col, row := i%layout.Columns, i/layout.Columns
	return core.NewRectF(
		layout.OriginX+float64(col)*layout.StepX,
		layout.OriginY+float64(row)*layout.StepY,
		layout.Width,
		layout.Height,
	)
}

// BlockGrid holds the blocks of a run in fixed storage sized for the
// largest layout. Only the first Count() slots are live.
type BlockGrid struct {
	columns int
	blocks  []Block
	count   int
}

// NewBlockGrid allocates storage for every slot of the layout.
func NewBlockGrid(layout config.BlocksConfig) BlockGrid {
	return BlockGrid{
		columns: layout.Columns,
		blocks:  make([]Block, layout.Capacity()),
	}
}

// Populate lays out count active blocks, clamped to the grid capacity.
// Slots past count are left inactive.
func (g *BlockGrid) Populate(layout config.BlocksConfig, count int) {
	g.count = core.Clamp(count, 0, len(g.blocks))
	for i := range g.blocks {
		g.blocks[i] = Block{
			Rect:   BlockRect(layout, i),
			Active: i < g.count,
		}
	}
}

// Capacity returns the number of slots.
func (g *BlockGrid) Capacity() int {
	return len(g.blocks)
}

// Count returns the number of blocks in the current run.
func (g *BlockGrid) Count() int {
	return g.count
}

// Blocks returns the live blocks. The slice aliases the grid storage.
func (g *BlockGrid) Blocks() []Block {
	return g.blocks[:g.count]
}

// Row returns the row of the block at index i.
func (g *BlockGrid) Row(i int) int {
	if g.columns <= 0 {
		return 0
	}
	return i / g.columns
}

// ActiveCount returns how many live blocks are still active.
func (g *BlockGrid) ActiveCount() int {
	n := 0
	for _, b := range g.Blocks() {
		if b.Active {
			n++
		}
	}
	return n
}

// AllCleared reports whether every live block is inactive.
func (g *BlockGrid) AllCleared() bool {
	for _, b := range g.Blocks() {
		if b.Active {
			return false
		}
	}
	return true
}

// ClearAll deactivates every live block.
func (g *BlockGrid) ClearAll() {
	for i := range g.Blocks() {
		g.blocks[i].Active = false
	}
}

// FirstHit returns the index of the first active block touched by the
// circle, or -1.
func (g *BlockGrid) FirstHit(center core.Vec2, radius float64) int {
	for i, b := range g.Blocks() {
		if b.Active && core.CircleIntersectsRect(center, radius, b.Rect) {
			return i
		}
	}
	return -1
}

// Deactivate marks the block at index i as destroyed.
func (g *BlockGrid) Deactivate(i int) {
	if i < 0 || i >= g.count {
		return
	}
	g.blocks[i].Active = false
}
