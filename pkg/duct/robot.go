package duct

import (
	"fmt"
	"math"

	"github.com/chazu/tenseg/pkg/builder"
	"github.com/chazu/tenseg/pkg/kernel"
	"github.com/chazu/tenseg/pkg/model"
	"github.com/chazu/tenseg/pkg/structure"
	"github.com/chazu/tenseg/pkg/world"
)

// Prismatic actuator limits shared by both segments.
const (
	prismMinLength   = 0.1
	prismMaxForce    = 20
	prismMaxVelocity = 0.5
)

// RobotModel is the two-segment duct climbing robot. It owns the generated
// structure and the compiled parts, and participates in the standard model
// lifecycle.
type RobotModel struct {
	model.Base

	cfg Config
	k   kernel.Kernel

	structure *structure.Structure
	assembly  *builder.Assembly
	muscles   []*builder.Cable
	prisms    []*builder.Prismatic
}

// Option configures a RobotModel at construction.
type Option func(*RobotModel)

// WithKernel attaches a geometry kernel so setup also produces solids for
// the rod and sphere parts.
func WithKernel(k kernel.Kernel) Option {
	return func(m *RobotModel) { m.k = k }
}

// NewRobotModel validates cfg and returns an unbuilt robot.
func NewRobotModel(cfg Config, opts ...Option) (*RobotModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &RobotModel{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Config returns the parameters the robot was built from.
func (m *RobotModel) Config() Config { return m.cfg }

// Structure returns the generated node and pair layout, or nil before
// setup.
func (m *RobotModel) Structure() *structure.Structure { return m.structure }

// Assembly returns the compiled parts, or nil before setup.
func (m *RobotModel) Assembly() *builder.Assembly { return m.assembly }

// Muscles returns the robot's eight cables in wiring order.
func (m *RobotModel) Muscles() []*builder.Cable { return m.muscles }

// Prismatics returns the two linear actuators, bottom segment first.
func (m *RobotModel) Prismatics() []*builder.Prismatic { return m.prisms }

// Setup generates the structure, compiles it into parts and moves the
// model into the stepping state.
func (m *RobotModel) Setup(w *world.World) error {
	if err := m.BeginSetup(); err != nil {
		return err
	}

	st, err := Build(m.cfg)
	if err != nil {
		return err
	}

	spec, err := m.buildSpec()
	if err != nil {
		return err
	}
	asm, err := builder.Compile(st, spec, m.k)
	if err != nil {
		return fmt.Errorf("compiling duct robot: %w", err)
	}

	m.structure = st
	m.assembly = asm
	m.muscles = asm.Cables()
	m.prisms = asm.Prismatics()

	return m.FinishSetup(m, w)
}

// Step advances the robot by dt.
func (m *RobotModel) Step(dt float64) error {
	return m.DoStep(m, dt)
}

// Teardown releases the built parts. The model can be set up again
// afterwards.
func (m *RobotModel) Teardown() error {
	if err := m.DoTeardown(m); err != nil {
		return err
	}
	m.structure = nil
	m.assembly = nil
	m.muscles = nil
	m.prisms = nil
	return nil
}

// buildSpec maps the robot's tag vocabulary onto part builders.
func (m *RobotModel) buildSpec() (*builder.Spec, error) {
	cfg := m.cfg

	prismRod := builder.RodConfig{Radius: cfg.PrismRadius, Density: cfg.Density}
	vertRod := builder.RodConfig{Radius: cfg.VertRodRadius, Density: cfg.Density}
	innerRod := builder.RodConfig{Radius: cfg.InnerRodRadius, Density: cfg.Density}
	// Massless anchor rod for experiments that pin a segment in place. No
	// pair in the generated structure carries the tag unless a caller adds
	// one, so the builder normally stays idle.
	staticRod := builder.RodConfig{Radius: cfg.PrismRadius, Density: 0}

	vertString := builder.CableConfig{
		Stiffness:      cfg.Stiffness,
		Damping:        cfg.Damping,
		Pretension:     cfg.Pretension,
		MaxTension:     cfg.MaxStringForce,
		TargetVelocity: cfg.MaxVertVelocity,
	}
	saddleString := vertString
	saddleString.TargetVelocity = cfg.MaxSaddleVelocity

	prism := builder.PrismaticConfig{
		Axis:        2,
		Rotation:    0,
		MinLength:   prismMinLength,
		Extent:      cfg.PrismExtent,
		MaxForce:    prismMaxForce,
		MaxVelocity: prismMaxVelocity,
	}
	prism2 := prism
	prism2.Axis = 1
	prism2.Rotation = math.Pi / 2

	sphere := builder.SphereConfig{
		Radius:   cfg.TipRadius,
		Density:  cfg.TipDensity,
		Friction: cfg.TipFriction,
	}

	hinge := builder.HingeConfig{MinAngle: -math.Pi, MaxAngle: math.Pi, Axis: 2}
	hinge2 := hinge
	hinge2.Axis = 0
	hinge3 := hinge
	hinge3.Axis = 1

	spec := builder.NewSpec()
	for _, rod := range []struct {
		tag string
		cfg builder.RodConfig
	}{
		{structure.TagPrismRod, prismRod},
		{structure.TagStaticRod, staticRod},
		{structure.TagVertRod, vertRod},
		{structure.TagInnerRod, innerRod},
	} {
		info, err := builder.NewRodInfo(rod.cfg)
		if err != nil {
			return nil, err
		}
		spec.AddBuilder(rod.tag, info)
	}
	for _, cable := range []struct {
		tag string
		cfg builder.CableConfig
	}{
		{structure.TagVertString, vertString},
		{structure.TagSaddle, saddleString},
	} {
		info, err := builder.NewCableInfo(cable.cfg)
		if err != nil {
			return nil, err
		}
		spec.AddBuilder(cable.tag, info)
	}
	for _, pr := range []struct {
		tag string
		cfg builder.PrismaticConfig
	}{
		{structure.TagPrismatic, prism},
		{structure.TagPrismatic2, prism2},
	} {
		info, err := builder.NewPrismaticInfo(pr.cfg)
		if err != nil {
			return nil, err
		}
		spec.AddBuilder(pr.tag, info)
	}
	for _, h := range []struct {
		tag string
		cfg builder.HingeConfig
	}{
		{structure.TagHinge, hinge},
		{structure.TagHinge2, hinge2},
		{structure.TagHinge3, hinge3},
	} {
		info, err := builder.NewHingeInfo(h.cfg)
		if err != nil {
			return nil, err
		}
		spec.AddBuilder(h.tag, info)
	}
	sphereInfo, err := builder.NewSphereInfo(sphere)
	if err != nil {
		return nil, err
	}
	spec.AddNodeBuilder(structure.TagSphere, sphereInfo)
	return spec, nil
}
