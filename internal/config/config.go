// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ArkanoidConfig contains all tuning for the arkanoid simulation.
// Every value is in world units; velocities are per tick.
type ArkanoidConfig struct {
	World  ArkanoidWorld  `yaml:"world"`
	Ball   ArkanoidBall   `yaml:"ball"`
	Paddle ArkanoidPaddle `yaml:"paddle"`
}

// ArkanoidWorld defines the playfield bounds.
type ArkanoidWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidBall defines the ball's size, speed and spawn point.
type ArkanoidBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Per-axis speed magnitude, never changes during a game
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ArkanoidPaddle defines the paddle's size, speed and spawn point.
type ArkanoidPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ErrInvalidConfig is returned by Validate for unusable tuning values.
var ErrInvalidConfig = errors.New("config: invalid arkanoid config")

// Validate checks that every value is finite, sizes and speeds are positive
// and spawn points lie in the world.
func (c ArkanoidConfig) Validate() error {
	coords := []struct {
		name  string
		value float64
	}{
		{"ball.start_x", c.Ball.StartX},
		{"ball.start_y", c.Ball.StartY},
		{"paddle.start_x", c.Paddle.StartX},
		{"paddle.start_y", c.Paddle.StartY},
	}
	for _, chk := range coords {
		if !finite(chk.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	checks := []struct {
		name  string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
	}
	for _, chk := range checks {
		if !finite(chk.value) || chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	if !inside(c.Ball.StartX, c.Ball.StartY, c.World) {
		return fmt.Errorf("%w: ball start (%v, %v) outside world", ErrInvalidConfig, c.Ball.StartX, c.Ball.StartY)
	}
	if !inside(c.Paddle.StartX, c.Paddle.StartY, c.World) {
		return fmt.Errorf("%w: paddle start (%v, %v) outside world", ErrInvalidConfig, c.Paddle.StartX, c.Paddle.StartY)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func inside(x, y float64, w ArkanoidWorld) bool {
	return x >= 0 && x <= w.Width && y >= 0 && y <= w.Height
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI string to a preset.
// Unknown or empty strings map to "" (no preset).
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpeedFactorForPreset returns the multiplier applied to ball and paddle speed.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}
