package duct

import (
	"github.com/chazu/tenseg/pkg/structure"
)

// Config collects every geometric and material parameter for one duct
// robot. All lengths are in centimetres, forces in newtons, velocities in
// cm/s. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// EdgeLength is the side length of each tetrahedron's triangle faces.
	EdgeLength float64
	// DuctDistance is the vertical gap between the two segments before
	// the assembly is lifted into place.
	DuctDistance float64
	// DuctHeight is the height of each tetrahedral segment.
	DuctHeight float64

	// Density is the mass density used for all rods.
	Density float64

	PrismRadius    float64
	PrismExtent    float64
	VertRodRadius  float64
	InnerRodRadius float64

	// Touch sensor spheres at the free corners of each segment.
	TipRadius   float64
	TipDensity  float64
	TipFriction float64

	// Cable material properties, shared by vertical and saddle strings.
	Stiffness float64
	Damping   float64

	// Pretension is the fraction of slack taken out of each cable at
	// setup, as a value strictly between 0 and 1.
	Pretension float64

	MaxVertVelocity   float64
	MaxSaddleVelocity float64
	MaxStringForce    float64

	// HingeFraction places the hinge attachment points along each sloped
	// edge, as a fraction of the edge strictly between 0 and 1.
	HingeFraction float64
	// NodeOffset is the small nudge applied to coincident attachment
	// points so adjacent bodies do not share an exact coordinate.
	NodeOffset float64
}

// DefaultConfig returns the reference duct robot parameters.
func DefaultConfig() Config {
	return Config{
		EdgeLength:        30,
		DuctDistance:      15,
		DuctHeight:        22,
		Density:           0.00164,
		PrismRadius:       1.524,
		PrismExtent:       10.16,
		VertRodRadius:     1.27,
		InnerRodRadius:    2.0955,
		TipRadius:         1.524,
		TipDensity:        1,
		TipFriction:       1,
		Stiffness:         10000,
		Damping:           100,
		Pretension:        0.05,
		MaxVertVelocity:   25.4,
		MaxSaddleVelocity: 8.5,
		MaxStringForce:    50,
		HingeFraction:     0.1,
		NodeOffset:        0.01,
	}
}

// Validate reports the first invalid field. Every parameter must be
// strictly positive, and the two fractional parameters must also stay
// below 1.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"EdgeLength", c.EdgeLength},
		{"DuctDistance", c.DuctDistance},
		{"DuctHeight", c.DuctHeight},
		{"Density", c.Density},
		{"PrismRadius", c.PrismRadius},
		{"PrismExtent", c.PrismExtent},
		{"VertRodRadius", c.VertRodRadius},
		{"InnerRodRadius", c.InnerRodRadius},
		{"TipRadius", c.TipRadius},
		{"TipDensity", c.TipDensity},
		{"TipFriction", c.TipFriction},
		{"Stiffness", c.Stiffness},
		{"Damping", c.Damping},
		{"Pretension", c.Pretension},
		{"MaxVertVelocity", c.MaxVertVelocity},
		{"MaxSaddleVelocity", c.MaxSaddleVelocity},
		{"MaxStringForce", c.MaxStringForce},
		{"HingeFraction", c.HingeFraction},
		{"NodeOffset", c.NodeOffset},
	}
	for _, ch := range checks {
		if err := structure.Positive("duct", ch.name, ch.value); err != nil {
			return err
		}
	}
	if c.Pretension >= 1 {
		return &structure.ConfigError{Scope: "duct", Field: "Pretension", Reason: "must be less than 1"}
	}
	if c.HingeFraction >= 1 {
		return &structure.ConfigError{Scope: "duct", Field: "HingeFraction", Reason: "must be less than 1"}
	}
	return nil
}
