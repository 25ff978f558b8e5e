package catch

import "time"

// RandSource supplies uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Spawner emits a new ball every SpawnInterval of accumulated play time.
type Spawner struct {
	interval time.Duration
	radius   float64
	width    float64
	rng      RandSource

	elapsed time.Duration
	nextID  EntityID
}

// NewSpawner creates a spawner for cfg drawing positions from rng.
func NewSpawner(cfg Config, rng RandSource) *Spawner {
	return &Spawner{
		interval: cfg.SpawnInterval,
		radius:   cfg.Radius,
		width:    cfg.Width,
		rng:      rng,
		nextID:   1,
	}
}

// TrySpawn adds elapsed to the accumulated time and returns a new ball once a
// full interval has built up. The remainder carries over, so the cadence has no
// drift. At most one ball is returned per call.
//
// While phase is GameOver nothing spawns and the accumulator is emptied.
func (s *Spawner) TrySpawn(elapsed time.Duration, phase Phase) (Entity, bool) {
	if phase == PhaseGameOver {
		s.elapsed = 0
		return Entity{}, false
	}

	s.elapsed += elapsed
	if s.elapsed < s.interval {
		return Entity{}, false
	}
	s.elapsed -= s.interval

	e := Entity{
		ID:     s.nextID,
		X:      s.radius + s.rng.Float64()*(s.width-2*s.radius),
		Y:      -s.radius,
		Radius: s.radius,
	}
	s.nextID++
	return e, true
}

// Reset re-arms the spawner so the next ball comes a full interval from now.
// IDs keep increasing.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Pending returns the time accumulated toward the next spawn.
func (s *Spawner) Pending() time.Duration {
	return s.elapsed
}
