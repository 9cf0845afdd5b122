// Package model provides the assembly lifecycle shared by every robot and
// sensor model: a strict Unbuilt → SetUp → Stepping → TornDown state
// machine, an ordered observer registry, and child-model delegation.
//
// Observers are notified synchronously in registration order, after the
// internal state transition and before any nested sub-model is delegated
// to. There is no hidden dispatch: the observer list is owned by the
// assembly and never shared.
package model

import (
	"errors"
	"fmt"

	"github.com/chazu/tenseg/pkg/world"
)

// Sentinel errors for lifecycle misuse.
var (
	// ErrAlreadySetUp indicates Setup was called on a model that is
	// already set up and has not been torn down.
	ErrAlreadySetUp = errors.New("model: already set up")

	// ErrNotStepping indicates Step was called outside the Stepping state.
	ErrNotStepping = errors.New("model: not in stepping state")

	// ErrInvalidTimestep indicates a non-positive dt was passed to Step.
	// The step is rejected before any observer is notified.
	ErrInvalidTimestep = errors.New("model: timestep must be positive")
)

// State is a point in the assembly lifecycle.
type State int

const (
	StateUnbuilt  State = iota // constructed, Setup not yet run
	StateSetUp                 // inside Setup, structure being built
	StateStepping              // Setup finished, Step calls are valid
	StateTornDown              // Teardown ran; only a fresh Setup is valid
)

func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateSetUp:
		return "set-up"
	case StateStepping:
		return "stepping"
	case StateTornDown:
		return "torn-down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Model is an assembly driven through the lifecycle by a single external
// caller in strict sequence. Implementations embed Base for the state
// machine and observer plumbing.
type Model interface {
	// Setup builds the model into the world. Valid once per lifecycle;
	// valid again after Teardown (an episode reset rebuilds from scratch).
	Setup(w *world.World) error

	// Step advances the model by dt seconds. Valid only while Stepping.
	Step(dt float64) error

	// Teardown releases the built structure. Safe to call in any state;
	// calling it twice is a no-op.
	Teardown() error
}

// Observer receives lifecycle notifications from the model it is attached
// to. Controllers are observers.
type Observer interface {
	OnSetup(m Model)
	OnStep(m Model, dt float64)
	OnTeardown(m Model)
}

// Base carries the lifecycle state machine, observer registry and children
// for a concrete model. The zero value is ready to use.
type Base struct {
	state     State
	observers []Observer
	children  []Model
}

// State returns the current lifecycle state.
func (b *Base) State() State { return b.state }

// Attach registers an observer. Observers are notified in registration
// order. A nil observer is ignored.
func (b *Base) Attach(o Observer) {
	if o == nil {
		return
	}
	b.observers = append(b.observers, o)
}

// AddChild registers a nested sub-model. Children are delegated to after
// observer notification at every lifecycle event.
func (b *Base) AddChild(m Model) {
	if m == nil {
		return
	}
	b.children = append(b.children, m)
}

// Children returns the nested sub-models in registration order.
func (b *Base) Children() []Model { return b.children }

// BeginSetup transitions Unbuilt or TornDown into SetUp. The concrete
// model calls this first in its Setup, builds its structure, then calls
// FinishSetup.
func (b *Base) BeginSetup() error {
	switch b.state {
	case StateUnbuilt, StateTornDown:
		b.state = StateSetUp
		return nil
	default:
		return fmt.Errorf("%w (state %s)", ErrAlreadySetUp, b.state)
	}
}

// FinishSetup completes Setup: it enters the Stepping state, notifies
// observers, then sets up children in the given world.
func (b *Base) FinishSetup(subject Model, w *world.World) error {
	b.state = StateStepping
	for _, o := range b.observers {
		o.OnSetup(subject)
	}
	for _, c := range b.children {
		if err := c.Setup(w); err != nil {
			return fmt.Errorf("model: child setup: %w", err)
		}
	}
	return nil
}

// DoStep performs the shared Step sequence: timestep and state validation,
// observer notification, then child delegation. The timestep check runs
// before any observer is notified so a rejected step has no side effects.
func (b *Base) DoStep(subject Model, dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("%w (dt=%v)", ErrInvalidTimestep, dt)
	}
	if b.state != StateStepping {
		return fmt.Errorf("%w (state %s)", ErrNotStepping, b.state)
	}
	for _, o := range b.observers {
		o.OnStep(subject, dt)
	}
	for _, c := range b.children {
		if err := c.Step(dt); err != nil {
			return fmt.Errorf("model: child step: %w", err)
		}
	}
	return nil
}

// DoTeardown performs the shared Teardown sequence. Calling it when the
// model is already torn down (or never set up) is a no-op; otherwise the
// state becomes TornDown, then observers are notified, then children are
// torn down. Observers querying State from OnTeardown see TornDown.
func (b *Base) DoTeardown(subject Model) error {
	if b.state != StateStepping && b.state != StateSetUp {
		return nil
	}
	b.state = StateTornDown
	for _, o := range b.observers {
		o.OnTeardown(subject)
	}
	for _, c := range b.children {
		if err := c.Teardown(); err != nil {
			return fmt.Errorf("model: child teardown: %w", err)
		}
	}
	return nil
}
