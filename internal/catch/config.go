// Package catch implements the catch-the-falling-balls game: a paddle moved by
// left/right intent catches balls that spawn above the field at a fixed cadence.
//
// The package is pure simulation. It owns no timers and no terminal; the loop
// package drives it and the platform layer draws it through Snapshot.
package catch

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-catch/internal/config"
)

// Config is the immutable game configuration handed to State, Spawner and Renderer.
// All distances are world units; speeds are units per nominal tick.
type Config struct {
	Width  float64 // Play area width
	Height float64 // Play area height

	PaddleWidth  float64
	PaddleHeight float64
	BottomOffset float64 // Gap between paddle bottom and the floor
	PaddleSpeed  float64

	Radius    float64
	FallSpeed float64

	Lives int

	TickInterval  time.Duration
	SpawnInterval time.Duration
}

// NewConfig converts a loaded configuration into the core Config.
// It panics if c does not validate; loaders validate before reaching the core.
func NewConfig(c config.CatchConfig) Config {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("catch: invalid config: %v", err))
	}
	return Config{
		Width:         c.Field.Width,
		Height:        c.Field.Height,
		PaddleWidth:   c.Paddle.Width,
		PaddleHeight:  c.Paddle.Height,
		BottomOffset:  c.Paddle.BottomOffset,
		PaddleSpeed:   c.Paddle.Speed,
		Radius:        c.Balls.Radius,
		FallSpeed:     c.Balls.FallSpeed,
		Lives:         c.Gameplay.Lives,
		TickInterval:  c.TickInterval(),
		SpawnInterval: c.SpawnInterval(),
	}
}

// DefaultConfig returns the core Config built from the default settings.
func DefaultConfig() Config {
	return NewConfig(config.DefaultCatchConfig())
}

// FloorY returns the y-coordinate of the paddle's top edge.
// Balls whose bottom edge reaches it are tested against the paddle span.
func (c Config) FloorY() float64 {
	return c.Height - c.BottomOffset - c.PaddleHeight
}
