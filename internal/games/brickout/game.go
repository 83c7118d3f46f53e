package brickout

import (
	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/registry"
)

// Screen is the top-level mode that decides which update and draw logic runs.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenGameplay
	ScreenVictory
	ScreenGameOver
)

// String returns the screen name used in logs and game state.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenGameplay:
		return "gameplay"
	case ScreenVictory:
		return "victory"
	case ScreenGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Mode selects what happens when the ball reaches the floor.
type Mode int

const (
	ModeClassic  Mode = iota // Floor costs a life, zero lives ends the run
	ModePractice             // Floor only respawns the ball, runs end in victory
)

// configPath stores the custom config path set via CLI
var configPath string

// startDifficulty is the difficulty preselected on the title screen
var startDifficulty config.Difficulty

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the difficulty preselected on the title screen.
func SetDifficulty(d config.Difficulty) {
	startDifficulty = d
}

// Game implements Brick Out.
type Game struct {
	mode Mode

	// Game objects
	paddle Paddle
	ball   Ball
	grid   BlockGrid

	// Game state
	screen     Screen
	difficulty config.Difficulty
	score      int
	lives      int
	cooldown   float64 // Seconds until block collisions are checked again
	tickCount  int

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.BrickoutConfig
	override *config.BrickoutConfig // Used instead of loading from disk when set
	dt       float64                // Seconds per tick
}

// New creates a new game in classic mode.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPractice creates a new game in practice mode.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(mode Mode, cfg config.BrickoutConfig) *Game {
	return &Game{mode: mode, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "brickout_practice"
	}
	return "brickout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Brick Out (Practice)"
	}
	return "Brick Out"
}

// Reset puts the game on the title screen with fresh state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.FrameTime()

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadBrickout(configPath)
		if err != nil {
			cfg = config.DefaultBrickoutConfig()
		}
		g.cfg = cfg
	}

	g.screen = ScreenTitle
	g.difficulty = startDifficulty
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.cooldown = 0
	g.tickCount = 0

	g.paddle = Paddle{
		X:      g.cfg.Paddle.X,
		Y:      g.cfg.Paddle.Y,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
	}
	g.resetBall()
	g.grid = NewBlockGrid(g.cfg.Blocks)
}

// resetBall puts the ball back at its spawn point.
func (g *Game) resetBall() {
	g.ball = Ball{
		Pos:    core.Vec2{X: g.cfg.Ball.X, Y: g.cfg.Ball.Y},
		Vel:    core.Vec2{X: g.cfg.Ball.VX, Y: g.cfg.Ball.VY},
		Radius: g.cfg.Ball.Radius,
	}
}

// Step advances the game by one tick. Exactly one screen update runs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	switch g.screen {
	case ScreenTitle:
		g.updateTitle(in)
	case ScreenGameplay:
		g.updateGameplay(in)
	case ScreenVictory, ScreenGameOver:
		g.updateResult(in)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Screen:     g.screen.String(),
		Difficulty: g.difficulty.String(),
		Score:      g.score,
		Lives:      g.lives,
		Blocks:     g.grid.Count(),
		GameOver:   g.screen == ScreenVictory || g.screen == ScreenGameOver,
	}
}

// FieldSize returns the logical size of the playing field.
func (g *Game) FieldSize() (width, height float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Screen returns the active screen.
func (g *Game) Screen() Screen {
	return g.screen
}

// Register the games with the registry
func init() {
	registry.Register("brickout", func() registry.Game {
		return New()
	})
	registry.Register("brickout_practice", func() registry.Game {
		return NewPractice()
	})
}
