// Package forceplate provides a spring-suspended force plate: a rigid
// plate floating inside a box housing on compression springs, so that
// spring deflections measure the force a robot applies to the plate.
package forceplate

import (
	"fmt"

	"github.com/chazu/tenseg/pkg/builder"
	"github.com/chazu/tenseg/pkg/model"
	"github.com/chazu/tenseg/pkg/structure"
	"github.com/chazu/tenseg/pkg/world"
)

// Config parameterizes the plate and its housing. The housing is a
// rectangular tub; the plate hangs inside it with WallGap clearance to
// each wall and BottomGap clearance above the housing floor.
type Config struct {
	Length         float64 // housing outer length (Z)
	Width          float64 // housing outer width (X)
	Height         float64 // housing outer height (Y)
	Thickness      float64 // housing wall thickness
	PlateThickness float64

	WallGap   float64
	BottomGap float64

	LateralStiffness  float64
	VerticalStiffness float64
	LateralDamping    float64
	VerticalDamping   float64
	LateralRestLen    float64
	VerticalRestLen   float64

	// Housing material.
	Density      float64
	Friction     float64
	RollFriction float64
	Restitution  float64
}

// DefaultConfig returns a plate sized for the duct robot's footprint.
func DefaultConfig() Config {
	return Config{
		Length:            10,
		Width:             10,
		Height:            2,
		Thickness:         0.1,
		PlateThickness:    0.5,
		WallGap:           0.2,
		BottomGap:         0.5,
		LateralStiffness:  1000,
		VerticalStiffness: 2000,
		LateralDamping:    10,
		VerticalDamping:   20,
		LateralRestLen:    0.1,
		VerticalRestLen:   0.25,
		Density:           0.5,
		Friction:          0.8,
	}
}

// Validate checks every field, including the cross-field constraints
// that keep the plate from intersecting its housing.
func (c Config) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"Length", c.Length},
		{"Width", c.Width},
		{"Height", c.Height},
		{"Thickness", c.Thickness},
		{"PlateThickness", c.PlateThickness},
		{"WallGap", c.WallGap},
		{"BottomGap", c.BottomGap},
		{"LateralStiffness", c.LateralStiffness},
		{"VerticalStiffness", c.VerticalStiffness},
		{"LateralRestLen", c.LateralRestLen},
		{"VerticalRestLen", c.VerticalRestLen},
		{"Density", c.Density},
	}
	for _, p := range positives {
		if err := structure.Positive("force plate", p.name, p.value); err != nil {
			return err
		}
	}
	if err := structure.NonNegative("force plate", "LateralDamping", c.LateralDamping); err != nil {
		return err
	}
	if err := structure.NonNegative("force plate", "VerticalDamping", c.VerticalDamping); err != nil {
		return err
	}
	if err := structure.NonNegative("force plate", "Friction", c.Friction); err != nil {
		return err
	}
	if c.WallGap >= c.Width/2-c.Thickness {
		return &structure.ConfigError{
			Scope:  "force plate",
			Field:  "WallGap",
			Reason: "plate would be zero width; adjust Thickness, Width or WallGap",
		}
	}
	if c.BottomGap >= c.Height-c.PlateThickness {
		return &structure.ConfigError{
			Scope:  "force plate",
			Field:  "BottomGap",
			Reason: "plate and bottom gap would cut through the housing floor",
		}
	}
	return nil
}

// plateCorners returns the four bottom corners of the plate, before the
// model is moved to its location. The plate's top face sits flush with the
// housing rim at Height; corner order is (-x,-z), (-x,+z), (+x,-z),
// (+x,+z).
func (c Config) plateCorners() [4]structure.Vec3 {
	x := c.Width/2 - c.Thickness - c.WallGap
	z := c.Length/2 - c.Thickness - c.WallGap
	y := c.Height - c.PlateThickness
	return [4]structure.Vec3{
		{X: -x, Y: y, Z: -z},
		{X: -x, Y: y, Z: z},
		{X: x, Y: y, Z: -z},
		{X: x, Y: y, Z: z},
	}
}

// PlateModel is the buildable force plate assembly.
type PlateModel struct {
	model.Base

	cfg      Config
	location structure.Vec3

	structure *structure.Structure
	assembly  *builder.Assembly
	springs   []*builder.Spring
}

// NewPlateModel validates cfg and places the plate's housing center at
// location (the housing floor rests at location's Y).
func NewPlateModel(cfg Config, location structure.Vec3) (*PlateModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PlateModel{cfg: cfg, location: location}, nil
}

// Config returns the plate's parameters.
func (m *PlateModel) Config() Config { return m.cfg }

// Location returns the placement offset.
func (m *PlateModel) Location() structure.Vec3 { return m.location }

// Structure returns the generated layout, or nil before setup.
func (m *PlateModel) Structure() *structure.Structure { return m.structure }

// Assembly returns the compiled parts, or nil before setup.
func (m *PlateModel) Assembly() *builder.Assembly { return m.assembly }

// Springs returns the suspension springs: four vertical, then four
// lateral.
func (m *PlateModel) Springs() []*builder.Spring { return m.springs }

// buildStructure lays out the housing boxes, the plate and the spring
// anchor pairs.
func (m *PlateModel) buildStructure() *structure.Structure {
	c := m.cfg
	st := structure.New()

	// Housing floor spans from the ground to the underside of the
	// plate's travel range.
	floorTop := c.Height - c.PlateThickness - c.BottomGap
	floorA := st.AddNode(structure.Vec3{Y: 0})
	floorB := st.AddNode(structure.Vec3{Y: floorTop})
	st.AddPair(floorA, floorB, structure.TagBox+" floor")

	// Four walls, one box each, spanning the housing height.
	wallX := c.Width/2 - c.Thickness/2
	wallZ := c.Length/2 - c.Thickness/2
	walls := [4][2]structure.Vec3{
		{{X: -wallX, Y: 0, Z: -c.Length / 2}, {X: -wallX, Y: 0, Z: c.Length / 2}},
		{{X: wallX, Y: 0, Z: -c.Length / 2}, {X: wallX, Y: 0, Z: c.Length / 2}},
		{{X: -c.Width / 2, Y: 0, Z: -wallZ}, {X: c.Width / 2, Y: 0, Z: -wallZ}},
		{{X: -c.Width / 2, Y: 0, Z: wallZ}, {X: c.Width / 2, Y: 0, Z: wallZ}},
	}
	for _, w := range walls {
		a := st.AddNode(w[0].Add(structure.Vec3{Y: c.Height / 2}))
		b := st.AddNode(w[1].Add(structure.Vec3{Y: c.Height / 2}))
		st.AddPair(a, b, structure.TagBox+" wall")
	}

	// The plate itself, spanning its thickness vertically.
	plateBottom := st.AddNode(structure.Vec3{Y: c.Height - c.PlateThickness})
	plateTop := st.AddNode(structure.Vec3{Y: c.Height})
	st.AddPair(plateBottom, plateTop, structure.TagBox+" plate")

	// Vertical suspension: one spring from the floor up to each plate
	// corner.
	corners := c.plateCorners()
	for _, corner := range corners {
		anchor := st.AddNode(structure.Vec3{X: corner.X, Y: floorTop, Z: corner.Z})
		tip := st.AddNode(corner)
		st.AddPair(anchor, tip, structure.TagSpring+" vertical")
	}

	// Lateral suspension: one spring per wall at plate mid-height.
	midY := c.Height - c.PlateThickness/2
	plateX := c.Width/2 - c.Thickness - c.WallGap
	plateZ := c.Length/2 - c.Thickness - c.WallGap
	laterals := [4][2]structure.Vec3{
		{{X: -(c.Width/2 - c.Thickness), Y: midY}, {X: -plateX, Y: midY}},
		{{X: c.Width/2 - c.Thickness, Y: midY}, {X: plateX, Y: midY}},
		{{Y: midY, Z: -(c.Length/2 - c.Thickness)}, {Y: midY, Z: -plateZ}},
		{{Y: midY, Z: c.Length/2 - c.Thickness}, {Y: midY, Z: plateZ}},
	}
	for _, l := range laterals {
		a := st.AddNode(l[0])
		b := st.AddNode(l[1])
		st.AddPair(a, b, structure.TagSpring+" lateral")
	}

	st.Move(m.location)
	return st
}

// buildSpec maps the plate's tags onto box and spring builders.
func (m *PlateModel) buildSpec() (*builder.Spec, error) {
	c := m.cfg

	housing := builder.BoxConfig{
		Width:        c.Width,
		Height:       c.Thickness,
		Density:      c.Density,
		Friction:     c.Friction,
		RollFriction: c.RollFriction,
		Restitution:  c.Restitution,
	}
	plate := housing
	plate.Width = c.Width - 2*(c.Thickness+c.WallGap)
	plate.Height = c.Length - 2*(c.Thickness+c.WallGap)

	vertical := builder.SpringConfig{
		FreeEndAttached: true,
		Stiffness:       c.VerticalStiffness,
		Damping:         c.VerticalDamping,
		RestLength:      c.VerticalRestLen,
		Direction:       structure.Vec3{Y: 1},
	}
	lateral := vertical
	lateral.Stiffness = c.LateralStiffness
	lateral.Damping = c.LateralDamping
	lateral.RestLength = c.LateralRestLen
	lateral.Direction = structure.Vec3{X: 1}

	spec := builder.NewSpec()
	boxInfo, err := builder.NewBoxInfo(housing)
	if err != nil {
		return nil, err
	}
	spec.AddBuilder(structure.TagBox+" floor", boxInfo)
	spec.AddBuilder(structure.TagBox+" wall", boxInfo)

	plateInfo, err := builder.NewBoxInfo(plate)
	if err != nil {
		return nil, err
	}
	spec.AddBuilder(structure.TagBox+" plate", plateInfo)

	vertInfo, err := builder.NewSpringInfo(vertical)
	if err != nil {
		return nil, err
	}
	latInfo, err := builder.NewSpringInfo(lateral)
	if err != nil {
		return nil, err
	}
	spec.AddBuilder(structure.TagSpring+" vertical", vertInfo)
	spec.AddBuilder(structure.TagSpring+" lateral", latInfo)
	return spec, nil
}

// Setup builds the plate into the world.
func (m *PlateModel) Setup(w *world.World) error {
	if err := m.BeginSetup(); err != nil {
		return err
	}

	st := m.buildStructure()
	spec, err := m.buildSpec()
	if err != nil {
		return err
	}
	asm, err := builder.Compile(st, spec, nil)
	if err != nil {
		return fmt.Errorf("compiling force plate: %w", err)
	}

	m.structure = st
	m.assembly = asm
	m.springs = asm.Springs()

	return m.FinishSetup(m, w)
}

// Step advances the plate by dt.
func (m *PlateModel) Step(dt float64) error {
	return m.DoStep(m, dt)
}

// Teardown releases the built parts.
func (m *PlateModel) Teardown() error {
	if err := m.DoTeardown(m); err != nil {
		return err
	}
	m.structure = nil
	m.assembly = nil
	m.springs = nil
	return nil
}
