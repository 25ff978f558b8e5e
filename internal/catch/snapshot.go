package catch

import "math"

// Snapshot is a read-only copy of the state handed to renderers and observers.
// Mutating it never affects the game.
type Snapshot struct {
	Tick   uint64
	Score  int
	Lives  int
	Phase  Phase
	Paused bool // Set by the loop, not by State

	Paddle Paddle
	Width  float64
	Height float64
	FloorY float64

	Entities []Entity // Sorted by ID
}

// Snapshot returns the current game state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		Lives:    s.lives,
		Phase:    s.phase,
		Paddle:   s.paddle,
		Width:    s.cfg.Width,
		Height:   s.cfg.Height,
		FloorY:   s.cfg.FloorY(),
		Entities: s.Entities(),
	}
}

// GameOver reports whether the snapshot was taken after the game ended.
func (snap *Snapshot) GameOver() bool {
	return snap.Phase == PhaseGameOver
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.Paddle.CenterX)
	h = h*31 + uint64(len(snap.Entities))

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
	}

	return h
}
