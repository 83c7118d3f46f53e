package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brickout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultBrickoutConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	assert.Equal(t, DefaultBrickoutConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadBrickoutCustomPathOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "gameplay:\n  lives: 5\ndifficulty:\n  easy: 12\n")

	cfg, err := LoadBrickout(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Equal(t, 12, cfg.Difficulty.Easy)
	// Untouched keys keep their defaults
	assert.Equal(t, 1000, cfg.Gameplay.BlockPoints)
	assert.Equal(t, 84, cfg.Difficulty.Hard)
	assert.Equal(t, 800.0, cfg.Field.Width)
}

func TestLoadBrickoutMissingFile(t *testing.T) {
	_, err := LoadBrickout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadBrickoutMalformedYAML(t *testing.T) {
	path := writeConfig(t, "paddle: [not, a, map\n")

	_, err := LoadBrickout(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadBrickoutRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "difficulty:\n  hard: 100\n")

	_, err := LoadBrickout(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid config")
	assert.ErrorContains(t, err, "Hard block count 100 outside [1, 84]")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BrickoutConfig)
		errMsg string
	}{
		{"zero field", func(c *BrickoutConfig) { c.Field.Width = 0 }, "field size must be positive"},
		{"paddle wider than field", func(c *BrickoutConfig) { c.Paddle.Width = 900 }, "exceeds field width"},
		{"no ball", func(c *BrickoutConfig) { c.Ball.Radius = 0 }, "ball radius must be positive"},
		{"empty grid", func(c *BrickoutConfig) { c.Blocks.Rows = 0 }, "block grid must have rows and columns"},
		{"no lives", func(c *BrickoutConfig) { c.Gameplay.Lives = 0 }, "lives must be positive"},
		{"negative cooldown", func(c *BrickoutConfig) { c.Gameplay.CollisionCooldown = -1 }, "collision cooldown"},
		{"zero easy blocks", func(c *BrickoutConfig) { c.Difficulty.Easy = 0 }, "Easy block count 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBrickoutConfig()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}

func TestBlockCount(t *testing.T) {
	d := DefaultBrickoutConfig().Difficulty

	assert.Equal(t, 36, d.BlockCount(DifficultyEasy))
	assert.Equal(t, 60, d.BlockCount(DifficultyNormal))
	assert.Equal(t, 84, d.BlockCount(DifficultyHard))
	assert.Equal(t, 84, DefaultBrickoutConfig().Blocks.Capacity())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyEasy, false},
		{"easy", DifficultyEasy, false},
		{"Normal", DifficultyNormal, false},
		{" hard ", DifficultyHard, false},
		{"3", DifficultyHard, false},
		{"fixed", DifficultyEasy, true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseDifficulty(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseDifficulty(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseDifficulty(%q)", tc.in)
	}
}
