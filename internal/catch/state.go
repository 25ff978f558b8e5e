package catch

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Phase is the run state of a game.
type Phase int

const (
	PhasePlaying  Phase = iota // Balls fall and can be caught
	PhaseGameOver              // No lives left; waits for Restart
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameover"
	}
	return "playing"
}

// TickResult reports what a single Tick changed. IDs are sorted.
type TickResult struct {
	Caught   []EntityID
	Missed   []EntityID
	GameOver bool // The game ended during this tick
}

// State is the complete game state: score, lives, paddle and live balls.
// It is not safe for concurrent use; the loop serializes every mutation.
type State struct {
	cfg Config

	score    int
	lives    int
	phase    Phase
	paddle   Paddle
	entities map[EntityID]Entity
	tick     uint64
}

// NewState returns the initial state for cfg.
func NewState(cfg Config) *State {
	return &State{
		cfg:      cfg,
		lives:    cfg.Lives,
		phase:    PhasePlaying,
		paddle:   NewPaddle(cfg),
		entities: make(map[EntityID]Entity),
	}
}

// Tick advances the game by dt nominal ticks (1.0 is one tick interval).
//
// The paddle moves first, then every ball falls, then every ball is classified
// against the new positions. Outcomes are applied together after classification,
// so the result does not depend on the order balls are visited. Lives that run out
// end the game within the same tick; balls still falling stay where they are.
//
// Tick does nothing once the game is over. It panics if dt is negative or not finite.
func (s *State) Tick(intent core.Intent, dt float64) TickResult {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("catch: invalid tick dt %v", dt))
	}
	if s.phase == PhaseGameOver {
		return TickResult{}
	}

	s.tick++
	s.paddle = s.paddle.Advance(intent, s.cfg.PaddleSpeed*dt, s.cfg.Width)

	fall := s.cfg.FallSpeed * dt
	floorY := s.cfg.FloorY()

	var res TickResult
	for id, e := range s.entities {
		e.Y += fall
		s.entities[id] = e

		switch Classify(e, s.paddle, floorY, s.cfg.Height) {
		case Caught:
			res.Caught = append(res.Caught, id)
		case Missed:
			res.Missed = append(res.Missed, id)
		}
	}
	slices.Sort(res.Caught)
	slices.Sort(res.Missed)

	for _, id := range res.Caught {
		delete(s.entities, id)
	}
	s.score += len(res.Caught)

	for _, id := range res.Missed {
		delete(s.entities, id)
	}
	s.lives -= min(len(res.Missed), s.lives)

	if s.lives == 0 {
		s.phase = PhaseGameOver
		res.GameOver = true
	}
	return res
}

// Restart replaces the state with a fresh game in a single assignment.
// It is valid in any phase; callers decide when a restart is allowed.
func (s *State) Restart() {
	*s = *NewState(s.cfg)
}

// AddEntity puts a ball into play. It reports false and does nothing when the
// game is over or the ID is already live.
func (s *State) AddEntity(e Entity) bool {
	if s.phase == PhaseGameOver {
		return false
	}
	if _, ok := s.entities[e.ID]; ok {
		return false
	}
	s.entities[e.ID] = e
	return true
}

// Config returns the configuration the state was built with.
func (s *State) Config() Config { return s.cfg }

// Score returns the number of balls caught.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Paddle returns a copy of the paddle.
func (s *State) Paddle() Paddle { return s.paddle }

// TickCount returns the number of ticks played since the last restart.
func (s *State) TickCount() uint64 { return s.tick }

// EntityCount returns the number of live balls.
func (s *State) EntityCount() int { return len(s.entities) }

// Entities returns a copy of the live balls ordered by ID.
func (s *State) Entities() []Entity {
	ids := slices.Sorted(maps.Keys(s.entities))
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = s.entities[id]
	}
	return out
}

// Entity returns the live ball with the given ID.
func (s *State) Entity(id EntityID) (Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}
