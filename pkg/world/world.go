// Package world holds the parameter bundles for the simulated world and
// its ground. The world owns no physics here; it is the validated context
// handed to models at setup so that compiled parts agree on gravity scale
// and ground placement.
package world

import "github.com/chazu/tenseg/pkg/structure"

// Config parameterizes the world. Gravity doubles as the length-scale
// knob: 981 makes length units centimeters, 98.1 decimeters.
type Config struct {
	Gravity float64
}

// DefaultConfig returns the centimeter-scale world configuration.
func DefaultConfig() Config {
	return Config{Gravity: 981}
}

// Validate rejects non-positive gravity.
func (c Config) Validate() error {
	return structure.Positive("world", "gravity", c.Gravity)
}

// GroundConfig orients the ground plane. All-zero angles mean flat ground.
type GroundConfig struct {
	Yaw   float64 // radians
	Pitch float64
	Roll  float64
}

// World is the validated world context. Models receive it at setup.
type World struct {
	cfg    Config
	ground GroundConfig
}

// New constructs a World from a validated config and ground orientation.
func New(cfg Config, ground GroundConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{cfg: cfg, ground: ground}, nil
}

// Gravity returns the gravity scale.
func (w *World) Gravity() float64 { return w.cfg.Gravity }

// Ground returns the ground orientation.
func (w *World) Ground() GroundConfig { return w.ground }
