package catch

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestAutopilotSteering(t *testing.T) {
	cfg := DefaultConfig()
	base := NewState(cfg).Snapshot() // paddle at 250, floor at 358

	tests := []struct {
		name     string
		entities []Entity
		phase    Phase
		paused   bool
		want     core.Intent
	}{
		{"no balls stays centered", nil, PhasePlaying, false, core.IntentNone},
		{"ball to the right", []Entity{{ID: 1, X: 400, Y: 100, Radius: 12}}, PhasePlaying, false, core.IntentRight},
		{"ball to the left", []Entity{{ID: 1, X: 60, Y: 100, Radius: 12}}, PhasePlaying, false, core.IntentLeft},
		{"ball within dead zone", []Entity{{ID: 1, X: 253, Y: 100, Radius: 12}}, PhasePlaying, false, core.IntentNone},
		{
			"lowest ball wins",
			[]Entity{{ID: 1, X: 60, Y: 100, Radius: 12}, {ID: 2, X: 450, Y: 300, Radius: 12}},
			PhasePlaying, false, core.IntentRight,
		},
		{
			"balls past the paddle are ignored",
			[]Entity{{ID: 1, X: 60, Y: 100, Radius: 12}, {ID: 2, X: 450, Y: 390, Radius: 12}},
			PhasePlaying, false, core.IntentLeft,
		},
		{"idle when game over", []Entity{{ID: 1, X: 400, Y: 100, Radius: 12}}, PhaseGameOver, false, core.IntentNone},
		{"idle when paused", []Entity{{ID: 1, X: 400, Y: 100, Radius: 12}}, PhasePlaying, true, core.IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			snap.Entities = tc.entities
			snap.Phase = tc.phase
			snap.Paused = tc.paused

			a := NewAutopilot(cfg)
			a.Observe(snap)
			if got := a.CurrentIntent(); got != tc.want {
				t.Errorf("CurrentIntent() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestAutopilotCatchesEverything(t *testing.T) {
	// With default settings the paddle crosses the field faster than the gap
	// between two landings, so a greedy pilot never misses.
	cfg := DefaultConfig()
	s := NewState(cfg)
	sp := NewSpawner(cfg, rand.New(rand.NewSource(42)))
	a := NewAutopilot(cfg)

	spawned := 0
	for range 3000 {
		if e, ok := sp.TrySpawn(cfg.TickInterval, s.Phase()); ok {
			s.AddEntity(e)
			spawned++
		}
		a.Observe(s.Snapshot())
		s.Tick(a.CurrentIntent(), 1)
	}

	if s.Lives() != cfg.Lives {
		t.Errorf("autopilot lost %d lives", cfg.Lives-s.Lives())
	}
	if s.Score() < spawned-2 {
		t.Errorf("Score() = %d with %d balls spawned", s.Score(), spawned)
	}
}
