package builder

import (
	"github.com/chazu/tenseg/pkg/kernel"
	"github.com/chazu/tenseg/pkg/structure"
)

// Part is one compiled physical element of an assembly. Name is the
// canonical tag string of the node or pair it came from; creation order
// within the Assembly is part of the observable contract (controllers
// index cables by it).
type Part interface {
	Name() string
	Tags() structure.Tags
}

// base carries the fields every part shares.
type base struct {
	name string
	tags structure.Tags
}

func (b base) Name() string         { return b.name }
func (b base) Tags() structure.Tags { return b.tags }

// Rod is a rigid cylindrical member between two points.
type Rod struct {
	base
	From, To structure.Vec3
	Config   RodConfig
	Solid    kernel.Solid // nil when compiled without a kernel
}

// Length returns the rod's axis length.
func (r *Rod) Length() float64 { return r.From.Distance(r.To) }

// SphereTip is a spherical contact tip built on a tagged node.
type SphereTip struct {
	base
	Center structure.Vec3
	Config SphereConfig
	Solid  kernel.Solid
}

// Box is a rigid box spanning its pair's endpoints.
type Box struct {
	base
	From, To structure.Vec3
	Config   BoxConfig
	Solid    kernel.Solid
}

// Cable is a linear string between two anchor points. Its rest length is
// mutable state: controllers adjust it to actuate the robot. All other
// fields are fixed at compile time.
type Cable struct {
	base
	From, To   structure.Vec3
	Config     CableConfig
	restLength float64
}

// Length returns the current anchor-to-anchor distance.
func (c *Cable) Length() float64 { return c.From.Distance(c.To) }

// RestLength returns the current rest length.
func (c *Cable) RestLength() float64 { return c.restLength }

// SetRestLength updates the rest length. Values are clamped at zero;
// a slack cable is legal, a negative rest length is not.
func (c *Cable) SetRestLength(l float64) {
	if l < 0 {
		l = 0
	}
	c.restLength = l
}

// Tension returns the spring tension implied by the current geometry:
// stiffness times extension beyond rest length, never negative (a cable
// cannot push), capped at the configured maximum.
func (c *Cable) Tension() float64 {
	ext := c.Length() - c.restLength
	if ext <= 0 {
		return 0
	}
	t := c.Config.Stiffness * ext
	if t > c.Config.MaxTension {
		return c.Config.MaxTension
	}
	return t
}

// Prismatic is a telescoping joint between two rod ends.
type Prismatic struct {
	base
	From, To structure.Vec3
	Config   PrismaticConfig
}

// Length returns the joint's current end-to-end distance.
func (p *Prismatic) Length() float64 { return p.From.Distance(p.To) }

// Hinge is a rotational joint between two rod ends.
type Hinge struct {
	base
	From, To structure.Vec3
	Config   HingeConfig
}

// Spring is a unidirectional compression spring between two boxes.
type Spring struct {
	base
	From, To structure.Vec3
	Config   SpringConfig
}

// Length returns the spring's current end-to-end distance.
func (s *Spring) Length() float64 { return s.From.Distance(s.To) }

// CordeCable is a soft cable realized as a chain of mass points between
// its two anchors.
type CordeCable struct {
	base
	Points []structure.Vec3
	Config CordeConfig
}
