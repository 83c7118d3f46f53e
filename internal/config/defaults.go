package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultBrickoutYAML []byte

// DefaultBrickoutConfig returns the default Brick Out configuration.
func DefaultBrickoutConfig() BrickoutConfig {
	return BrickoutConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			X:      350,
			Y:      550,
			Width:  100,
			Height: 20,
			Speed:  8,
		},
		Ball: BallConfig{
			X:      400,
			Y:      300,
			VX:     5,
			VY:     -5,
			Radius: 10,
		},
		Blocks: BlocksConfig{
			Columns: 12,
			Rows:    7,
			OriginX: 20,
			OriginY: 30,
			StepX:   63,
			StepY:   30,
			Width:   60,
			Height:  20,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			BlockPoints:       1000,
			CollisionCooldown: 0.1,
		},
		Difficulty: DifficultyConfig{
			Easy:   36,
			Normal: 60,
			Hard:   84,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickoutYAML
}
