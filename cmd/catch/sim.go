package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/catch"
	"github.com/vovakirdan/tui-catch/internal/loop"
)

var (
	flagSimDuration    time.Duration
	flagSimMaxRestarts int
	flagSimIdle        bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Run a game without a terminal on a simulated clock.

The autopilot steers the paddle unless --idle is set, in which case the paddle
never moves. Simulated time advances one tick at a time, so a run finishes
immediately and the same seed always produces the same result.

Examples:
  catch sim
  catch sim --seed 42 --duration 10m
  catch sim --idle --max-restarts 3 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 2*time.Minute, "Simulated play time")
	simCmd.Flags().IntVar(&flagSimMaxRestarts, "max-restarts", 0, "Games to restart after game over before stopping")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Leave the paddle still instead of using the autopilot")
}

func runSim(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
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

	cfg := catch.NewConfig(gameCfg)
	clock := loop.NewManualClock()

	var input loop.InputSource
	if !flagSimIdle {
		input = catch.NewAutopilot(cfg)
	}

	driver := loop.New(loop.Options{
		Config: cfg,
		Seed:   flagSeed,
		Clock:  clock,
		Input:  input,
		Logger: logger,
	})
	driver.Start()
	driver.Process()

	restarts := 0
	for clock.Now() < flagSimDuration {
		clock.Advance(cfg.TickInterval)
		driver.Process()

		if snap := driver.Snapshot(); !snap.GameOver() {
			continue
		}
		if restarts >= flagSimMaxRestarts {
			break
		}
		restarts++
		driver.Restart()
		driver.Process()
	}
	driver.Stop()

	snap := driver.Snapshot()
	stats := driver.Stats()
	fmt.Printf("Run:        %s\n", driver.ID())
	fmt.Printf("Seed:       %d\n", flagSeed)
	fmt.Printf("Simulated:  %s (%d ticks)\n", clock.Now(), stats.Ticks)
	fmt.Printf("Games:      %d finished, %d restarts\n", stats.Games, stats.Restarts)
	fmt.Printf("Caught:     %d\n", stats.Caught)
	fmt.Printf("Missed:     %d\n", stats.Missed)
	fmt.Printf("Best score: %d\n", max(stats.BestScore, snap.Score))
	fmt.Printf("Final:      score %d, lives %d, %s\n", snap.Score, snap.Lives, snap.Phase)
	fmt.Printf("Hash:       %016x\n", snap.Hash())
}
