// brickout is a single-screen block breaker played in the terminal.
//
// Usage:
//
//	brickout play [mode]     - Play (mode: brickout or brickout_practice)
//	brickout list            - List available modes
//	brickout config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--log <path>         - Write logs to a file (default: discarded)
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/brickout/internal/games/brickout"
)

var (
	// Global flags
	flagFPS      int
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brick Out - break every block in your terminal",
	Long: `Brick Out is a block breaker for the terminal. Pick a difficulty,
keep the ball in play with the paddle and clear every block.

Available commands:
  play     - Start a game
  list     - Show available modes
  config   - Print the default configuration

Examples:
  brickout play
  brickout play --difficulty hard
  brickout play brickout_practice
  brickout play --config ./my-brickout.yaml --log brickout.log`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger described by the global flags.
// The returned close function must be called once the program ends.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickout",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
