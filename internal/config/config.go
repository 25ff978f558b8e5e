// Package config provides YAML-based configuration loading for the catch game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Balls    BallsConfig    `yaml:"balls"`
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines the size of the play area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Speed        float64 `yaml:"speed"` // Units per tick
}

// BallsConfig defines the falling objects.
type BallsConfig struct {
	Radius    float64 `yaml:"radius"`
	FallSpeed float64 `yaml:"fall_speed"` // Units per tick
}

// TimingConfig defines the two periodic triggers.
type TimingConfig struct {
	TickMS  int `yaml:"tick_ms"`
	SpawnMS int `yaml:"spawn_ms"`
}

// GameplayConfig defines rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig defines how terminal key events become held directions.
type InputConfig struct {
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// TickInterval returns the simulation tick period.
func (c CatchConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// SpawnInterval returns the period between spawned balls.
func (c CatchConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Timing.SpawnMS) * time.Millisecond
}

// ReleaseAfter returns the inferred key-release window (0 = never).
func (c CatchConfig) ReleaseAfter() time.Duration {
	return time.Duration(c.Input.ReleaseAfterMS) * time.Millisecond
}

// Validate reports every setting that would make the game ill-defined.
func (c CatchConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("balls.radius", c.Balls.Radius)
	positive("balls.fall_speed", c.Balls.FallSpeed)
	positive("timing.tick_ms", float64(c.Timing.TickMS))
	positive("timing.spawn_ms", float64(c.Timing.SpawnMS))

	if c.Paddle.BottomOffset < 0 {
		errs = append(errs, fmt.Errorf("paddle.bottom_offset must not be negative, got %v", c.Paddle.BottomOffset))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width (%v) exceeds field.width (%v)", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.BottomOffset+c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle does not fit in field.height (%v)", c.Field.Height))
	}
	if 2*c.Balls.Radius > c.Field.Width {
		errs = append(errs, fmt.Errorf("balls.radius (%v) too large for field.width (%v)", c.Balls.Radius, c.Field.Width))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Input.ReleaseAfterMS < 0 {
		errs = append(errs, fmt.Errorf("input.release_after_ms must not be negative, got %d", c.Input.ReleaseAfterMS))
	}

	return errors.Join(errs...)
}
