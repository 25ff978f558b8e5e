package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 400,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       12,
			BottomOffset: 30,
			Speed:        8,
		},
		Balls: BallsConfig{
			Radius:    12,
			FallSpeed: 4,
		},
		Timing: TimingConfig{
			TickMS:  20,
			SpawnMS: 1200,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			ReleaseAfterMS: 700,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
