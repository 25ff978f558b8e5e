package catch

import (
	"math"
	"sync"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Autopilot is an input source that plays the game on its own.
// It watches snapshots and steers toward the lowest ball still above the paddle.
type Autopilot struct {
	mu     sync.Mutex
	speed  float64
	intent core.Intent
}

// NewAutopilot creates an autopilot for a game using cfg.
func NewAutopilot(cfg Config) *Autopilot {
	return &Autopilot{speed: cfg.PaddleSpeed}
}

// Observe updates the steering decision from the latest frame.
func (a *Autopilot) Observe(snap Snapshot) {
	intent := a.decide(snap)

	a.mu.Lock()
	a.intent = intent
	a.mu.Unlock()
}

// CurrentIntent returns the direction chosen at the last Observe.
func (a *Autopilot) CurrentIntent() core.Intent {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.intent
}

func (a *Autopilot) decide(snap Snapshot) core.Intent {
	if snap.Phase != PhasePlaying || snap.Paused {
		return core.IntentNone
	}

	// Every ball falls at the same speed, so the lowest one lands first.
	target := snap.Width / 2
	lowest := math.Inf(-1)
	for _, e := range snap.Entities {
		if e.Bottom() < snap.FloorY && e.Y > lowest {
			lowest = e.Y
			target = e.X
		}
	}

	diff := target - snap.Paddle.CenterX
	switch {
	case diff > a.speed/2:
		return core.IntentRight
	case diff < -a.speed/2:
		return core.IntentLeft
	default:
		return core.IntentNone
	}
}
