// Package config provides YAML-based game configuration loading and
// difficulty presets for Brick Out.
package config

import (
	"errors"
	"fmt"
)

// BrickoutConfig contains all configuration for Brick Out.
type BrickoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BallConfig defines the ball spawn state.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
}

// BlocksConfig defines the block grid layout.
// Block i sits at (OriginX + (i mod Columns)*StepX, OriginY + (i div Columns)*StepY).
type BlocksConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	StepX   float64 `yaml:"step_x"`
	StepY   float64 `yaml:"step_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Capacity returns the number of block slots in the grid.
func (b BlocksConfig) Capacity() int {
	return b.Columns * b.Rows
}

// GameplayConfig defines run rules.
type GameplayConfig struct {
	Lives             int     `yaml:"lives"`
	BlockPoints       int     `yaml:"block_points"`
	CollisionCooldown float64 `yaml:"collision_cooldown"` // Seconds
}

// DifficultyConfig maps each difficulty to its block count.
type DifficultyConfig struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// BlockCount returns the number of blocks for a difficulty.
func (d DifficultyConfig) BlockCount(diff Difficulty) int {
	switch diff {
	case DifficultyNormal:
		return d.Normal
	case DifficultyHard:
		return d.Hard
	default:
		return d.Easy
	}
}

// Validate checks that the configuration describes a playable game.
func (c BrickoutConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Blocks.Columns <= 0 || c.Blocks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("block grid must have rows and columns, got %dx%d", c.Blocks.Rows, c.Blocks.Columns))
	}
	if c.Blocks.Width <= 0 || c.Blocks.Height <= 0 {
		errs = append(errs, fmt.Errorf("block size must be positive, got %vx%v", c.Blocks.Width, c.Blocks.Height))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.BlockPoints < 0 {
		errs = append(errs, fmt.Errorf("block points must not be negative, got %d", c.Gameplay.BlockPoints))
	}
	if c.Gameplay.CollisionCooldown < 0 {
		errs = append(errs, fmt.Errorf("collision cooldown must not be negative, got %v", c.Gameplay.CollisionCooldown))
	}

	capacity := c.Blocks.Capacity()
	for _, d := range Difficulties() {
		n := c.Difficulty.BlockCount(d)
		if n < 1 || n > capacity {
			errs = append(errs, fmt.Errorf("%s block count %d outside [1, %d]", d, n, capacity))
		}
	}

	return errors.Join(errs...)
}
