package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/tenseg/pkg/world"
)

// fake is a minimal concrete model for exercising Base.
type fake struct {
	Base
}

func (f *fake) Setup(w *world.World) error {
	if err := f.BeginSetup(); err != nil {
		return err
	}
	return f.FinishSetup(f, w)
}

func (f *fake) Step(dt float64) error { return f.DoStep(f, dt) }

func (f *fake) Teardown() error { return f.DoTeardown(f) }

// events records every observer callback in order.
type events struct {
	log *[]string
	id  string
}

func (e events) OnSetup(Model)           { *e.log = append(*e.log, e.id+":setup") }
func (e events) OnStep(_ Model, _ float64) { *e.log = append(*e.log, e.id+":step") }
func (e events) OnTeardown(Model)        { *e.log = append(*e.log, e.id+":teardown") }

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New(world.DefaultConfig(), world.GroundConfig{})
	require.NoError(t, err)
	return w
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "unbuilt", StateUnbuilt.String())
	assert.Equal(t, "set-up", StateSetUp.String())
	assert.Equal(t, "stepping", StateStepping.String())
	assert.Equal(t, "torn-down", StateTornDown.String())
}

func TestLifecycleTransitions(t *testing.T) {
	f := &fake{}
	assert.Equal(t, StateUnbuilt, f.State())

	require.NoError(t, f.Setup(testWorld(t)))
	assert.Equal(t, StateStepping, f.State())

	err := f.Setup(testWorld(t))
	require.ErrorIs(t, err, ErrAlreadySetUp)

	require.NoError(t, f.Step(0.01))
	require.NoError(t, f.Teardown())
	assert.Equal(t, StateTornDown, f.State())

	// Torn down models may be set up again.
	require.NoError(t, f.Setup(testWorld(t)))
	assert.Equal(t, StateStepping, f.State())
}

func TestStepValidation(t *testing.T) {
	f := &fake{}
	require.ErrorIs(t, f.Step(0.01), ErrNotStepping)

	require.NoError(t, f.Setup(testWorld(t)))
	require.ErrorIs(t, f.Step(0), ErrInvalidTimestep)
	require.ErrorIs(t, f.Step(-1), ErrInvalidTimestep)
	require.NoError(t, f.Step(0.01))
}

func TestTimestepCheckedBeforeState(t *testing.T) {
	// A bad timestep wins over a bad state: no observer runs either way,
	// and the caller learns about the dt first.
	f := &fake{}
	require.ErrorIs(t, f.Step(0), ErrInvalidTimestep)
}

func TestObserverOrderAndTiming(t *testing.T) {
	var log []string
	f := &fake{}
	f.Attach(events{log: &log, id: "a"})
	f.Attach(events{log: &log, id: "b"})

	require.NoError(t, f.Setup(testWorld(t)))
	require.NoError(t, f.Step(0.01))
	require.NoError(t, f.Teardown())

	assert.Equal(t, []string{
		"a:setup", "b:setup",
		"a:step", "b:step",
		"a:teardown", "b:teardown",
	}, log)
}

func TestRejectedStepDoesNotNotify(t *testing.T) {
	var log []string
	f := &fake{}
	f.Attach(events{log: &log, id: "a"})
	require.NoError(t, f.Setup(testWorld(t)))
	log = nil

	require.Error(t, f.Step(-0.5))
	assert.Empty(t, log)
}

func TestChildrenFollowParent(t *testing.T) {
	var log []string
	parent := &fake{}
	child := &fake{}
	child.Attach(events{log: &log, id: "child"})
	parent.Attach(events{log: &log, id: "parent"})
	parent.AddChild(child)

	require.NoError(t, parent.Setup(testWorld(t)))
	// Parent observers fire before children are set up.
	assert.Equal(t, []string{"parent:setup", "child:setup"}, log)

	require.NoError(t, parent.Step(0.02))
	assert.Equal(t, StateStepping, child.State())

	require.NoError(t, parent.Teardown())
	assert.Equal(t, StateTornDown, child.State())
}

func TestTeardownIdempotent(t *testing.T) {
	var log []string
	f := &fake{}
	f.Attach(events{log: &log, id: "a"})

	// Teardown before setup is a quiet no-op.
	require.NoError(t, f.Teardown())
	assert.Empty(t, log)
	assert.Equal(t, StateUnbuilt, f.State())

	require.NoError(t, f.Setup(testWorld(t)))
	require.NoError(t, f.Teardown())
	require.NoError(t, f.Teardown())
	count := 0
	for _, e := range log {
		if e == "a:teardown" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNilObserverAndChildIgnored(t *testing.T) {
	f := &fake{}
	f.Attach(nil)
	f.AddChild(nil)
	assert.Empty(t, f.Children())
	require.NoError(t, f.Setup(testWorld(t)))
}

func TestSentinelWrapping(t *testing.T) {
	f := &fake{}
	require.NoError(t, f.Setup(testWorld(t)))
	err := f.Setup(testWorld(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadySetUp))
	assert.Contains(t, err.Error(), "stepping")
}

// stateWatcher records the subject's state as seen from inside each callback.
type stateWatcher struct {
	seen *[]State
}

func (p stateWatcher) OnSetup(m Model)           { *p.seen = append(*p.seen, m.(*fake).State()) }
func (p stateWatcher) OnStep(m Model, _ float64) { *p.seen = append(*p.seen, m.(*fake).State()) }
func (p stateWatcher) OnTeardown(m Model)        { *p.seen = append(*p.seen, m.(*fake).State()) }

func TestObserversSeeTransitionedState(t *testing.T) {
	var seen []State
	f := &fake{}
	f.Attach(stateWatcher{seen: &seen})

	require.NoError(t, f.Setup(testWorld(t)))
	require.NoError(t, f.Step(0.01))
	require.NoError(t, f.Teardown())

	assert.Equal(t, []State{StateStepping, StateStepping, StateTornDown}, seen)
}
