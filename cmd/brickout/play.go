package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/games/brickout"
	"github.com/vovakirdan/brickout/internal/platform/tui"
	"github.com/vovakirdan/brickout/internal/registry"
)

// defaultMode is played when no mode argument is given.
const defaultMode = "brickout"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Brick Out",
	Long: `Start a game. The mode defaults to "brickout".

Modes:
  brickout           - Three lives, losing the last one ends the run
  brickout_practice  - The ball respawns forever, clear the blocks at your pace

Controls:
  1/2/3              - Select Easy, Normal or Hard on the title screen
  Enter/Space        - Start / return to title
  Left/A/H           - Move paddle left
  Right/D/L          - Move paddle right
  Q/Ctrl+C           - Quit

Examples:
  brickout play
  brickout play --difficulty normal
  brickout play brickout_practice --fps 30
  brickout play --config ./my-brickout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preselected on the title screen: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickout list' to see available modes.")
		os.Exit(1)
	}

	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fail before taking over the terminal if the config is broken
	if _, cfgErr := config.LoadBrickout(flagConfig); cfgErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
		os.Exit(1)
	}

	brickout.SetConfigPath(flagConfig)
	brickout.SetDifficulty(difficulty)

	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, logger)

	// Close log before potential exit
	if closeErr := closeLog(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close log file: %v\n", closeErr)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
