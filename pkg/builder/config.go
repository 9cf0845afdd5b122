package builder

import (
	"github.com/chazu/tenseg/pkg/structure"
)

// RodConfig parameterizes a rigid rod part. Density zero is legal and
// means the rod stays fixed in the simulator (static scenery).
type RodConfig struct {
	Radius  float64
	Density float64
}

// Validate rejects out-of-range fields, naming the offender.
func (c RodConfig) Validate() error {
	if err := structure.Positive("rod", "radius", c.Radius); err != nil {
		return err
	}
	return structure.NonNegative("rod", "density", c.Density)
}

// SphereConfig parameterizes a spherical contact tip.
type SphereConfig struct {
	Radius   float64
	Density  float64
	Friction float64
}

func (c SphereConfig) Validate() error {
	if err := structure.Positive("sphere", "radius", c.Radius); err != nil {
		return err
	}
	if err := structure.NonNegative("sphere", "density", c.Density); err != nil {
		return err
	}
	return structure.NonNegative("sphere", "friction", c.Friction)
}

// CableConfig parameterizes a linear string (cable) part and the motor
// that drives it.
type CableConfig struct {
	Stiffness      float64
	Damping        float64
	History        bool // record tension/length history
	Pretension     float64
	MaxTension     float64
	TargetVelocity float64
}

func (c CableConfig) Validate() error {
	if err := structure.Positive("cable", "stiffness", c.Stiffness); err != nil {
		return err
	}
	if err := structure.NonNegative("cable", "damping", c.Damping); err != nil {
		return err
	}
	if err := structure.NonNegative("cable", "pretension", c.Pretension); err != nil {
		return err
	}
	if err := structure.Positive("cable", "max tension", c.MaxTension); err != nil {
		return err
	}
	return structure.Positive("cable", "target velocity", c.TargetVelocity)
}

// PrismaticConfig parameterizes a telescoping (linear-extension) joint.
// Axis selects the sliding axis (0=X, 1=Y, 2=Z) in the joint's local
// frame; Rotation is an additional twist about that axis in radians.
type PrismaticConfig struct {
	Axis        int
	Rotation    float64
	MinLength   float64
	Extent      float64 // maximum extension beyond MinLength
	MaxForce    float64
	MaxVelocity float64
}

func (c PrismaticConfig) Validate() error {
	if c.Axis < 0 || c.Axis > 2 {
		return &structure.ConfigError{Scope: "prismatic", Field: "axis", Reason: "must be 0, 1 or 2"}
	}
	if err := structure.Positive("prismatic", "min length", c.MinLength); err != nil {
		return err
	}
	if err := structure.Positive("prismatic", "extent", c.Extent); err != nil {
		return err
	}
	if err := structure.Positive("prismatic", "max force", c.MaxForce); err != nil {
		return err
	}
	return structure.Positive("prismatic", "max velocity", c.MaxVelocity)
}

// HingeConfig parameterizes a rotational joint between two rods.
// Angles are radians; Axis selects the rotation axis (0=X, 1=Y, 2=Z).
type HingeConfig struct {
	MinAngle float64
	MaxAngle float64
	Axis     int
}

func (c HingeConfig) Validate() error {
	if c.Axis < 0 || c.Axis > 2 {
		return &structure.ConfigError{Scope: "hinge", Field: "axis", Reason: "must be 0, 1 or 2"}
	}
	if c.MinAngle >= c.MaxAngle {
		return &structure.ConfigError{Scope: "hinge", Field: "min angle", Reason: "must be less than max angle"}
	}
	return nil
}

// BoxConfig parameterizes a box part (force plate housings and plates).
// Width and Height are the cross-section; the box spans its pair's
// endpoints along the third dimension.
type BoxConfig struct {
	Width        float64
	Height       float64
	Density      float64
	Friction     float64
	RollFriction float64
	Restitution  float64
}

func (c BoxConfig) Validate() error {
	if err := structure.Positive("box", "width", c.Width); err != nil {
		return err
	}
	if err := structure.Positive("box", "height", c.Height); err != nil {
		return err
	}
	if err := structure.NonNegative("box", "density", c.Density); err != nil {
		return err
	}
	if err := structure.NonNegative("box", "friction", c.Friction); err != nil {
		return err
	}
	if err := structure.NonNegative("box", "roll friction", c.RollFriction); err != nil {
		return err
	}
	return structure.NonNegative("box", "restitution", c.Restitution)
}

// SpringConfig parameterizes a unidirectional compression spring.
// Direction is the single axis along which the spring provides force.
type SpringConfig struct {
	FreeEndAttached bool
	Stiffness       float64
	Damping         float64
	RestLength      float64
	Direction       structure.Vec3
}

func (c SpringConfig) Validate() error {
	if err := structure.Positive("spring", "stiffness", c.Stiffness); err != nil {
		return err
	}
	if err := structure.NonNegative("spring", "damping", c.Damping); err != nil {
		return err
	}
	if err := structure.Positive("spring", "rest length", c.RestLength); err != nil {
		return err
	}
	if c.Direction.Length() == 0 {
		return &structure.ConfigError{Scope: "spring", Field: "direction", Reason: "must be a non-zero vector"}
	}
	return nil
}

// CordeConfig parameterizes a corde soft cable: a chain of Resolution mass
// points strung between the connector's endpoints.
type CordeConfig struct {
	Resolution int
	Radius     float64
	Density    float64
}

func (c CordeConfig) Validate() error {
	if c.Resolution < 2 {
		return &structure.ConfigError{Scope: "corde", Field: "resolution", Reason: "must be at least 2"}
	}
	if err := structure.Positive("corde", "radius", c.Radius); err != nil {
		return err
	}
	return structure.Positive("corde", "density", c.Density)
}
