package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		World: ArkanoidWorld{
			Width:  800,
			Height: 600,
		},
		Ball: ArkanoidBall{
			Radius: 15,
			Speed:  6,
			StartX: 400,
			StartY: 400,
		},
		Paddle: ArkanoidPaddle{
			Width:  80,
			Height: 20,
			Speed:  8,
			StartX: 400,
			StartY: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
