package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H        - Move left
  Right/D/L       - Move right
  Down/S/Space    - Stop
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C        - Quit

Terminals do not report key releases. The paddle keeps moving while the key
repeats and stops input.release_after_ms after the last repeat.

Examples:
  catch play
  catch play --seed 42
  catch play --autopilot
  catch play --config ./my-catch.yaml --log-file catch.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer steer the paddle")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alternate screen owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	opts := tui.Options{
		Game:      gameCfg,
		Runtime:   rc,
		Autopilot: flagAutopilot,
		Logger:    logger,
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
