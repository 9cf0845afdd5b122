// Package sim drives models through bounded episode runs: a single
// synchronous loop of fixed-size steps, with reset support for
// multi-episode experiments.
package sim

import (
	"fmt"

	"github.com/chazu/tenseg/pkg/model"
	"github.com/chazu/tenseg/pkg/structure"
	"github.com/chazu/tenseg/pkg/world"
)

// Simulation owns a world and the models stepping in it. All methods are
// called from a single goroutine.
type Simulation struct {
	w      *world.World
	dt     float64
	models []model.Model
}

// New creates a simulation advancing by dt seconds per step.
func New(w *world.World, dt float64) (*Simulation, error) {
	if err := structure.Positive("simulation", "timestep", dt); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("sim: world must not be nil")
	}
	return &Simulation{w: w, dt: dt}, nil
}

// World returns the simulation's world.
func (s *Simulation) World() *world.World { return s.w }

// Timestep returns the per-step time increment in seconds.
func (s *Simulation) Timestep() float64 { return s.dt }

// AddModel sets the model up in the world and registers it for stepping.
func (s *Simulation) AddModel(m model.Model) error {
	if m == nil {
		return fmt.Errorf("sim: model must not be nil")
	}
	if err := m.Setup(s.w); err != nil {
		return fmt.Errorf("sim: adding model: %w", err)
	}
	s.models = append(s.models, m)
	return nil
}

// Run advances every model by steps fixed-size steps.
func (s *Simulation) Run(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("sim: step count must be positive, got %d", steps)
	}
	for i := 0; i < steps; i++ {
		for _, m := range s.models {
			if err := m.Step(s.dt); err != nil {
				return fmt.Errorf("sim: step %d: %w", i, err)
			}
		}
	}
	return nil
}

// Reset tears every model down and sets it up again, starting a fresh
// episode with the same models and world.
func (s *Simulation) Reset() error {
	for _, m := range s.models {
		if err := m.Teardown(); err != nil {
			return fmt.Errorf("sim: reset teardown: %w", err)
		}
	}
	for _, m := range s.models {
		if err := m.Setup(s.w); err != nil {
			return fmt.Errorf("sim: reset setup: %w", err)
		}
	}
	return nil
}

// Teardown tears every model down without setting them up again.
func (s *Simulation) Teardown() error {
	for _, m := range s.models {
		if err := m.Teardown(); err != nil {
			return fmt.Errorf("sim: teardown: %w", err)
		}
	}
	return nil
}
