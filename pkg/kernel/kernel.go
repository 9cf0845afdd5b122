// Package kernel defines the abstract geometry kernel interface used by the
// part builders. Implementations provide solid modeling behind this
// interface so the structure compiler can emit part geometry (rods, tips,
// housings) without depending on a particular CAD backend.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
//
// Primitives are centered at the origin; Rod is the exception, placing a
// cylinder between two world-space endpoints because that is how every
// compiled rigid connection is specified.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid // axis along Z
	Sphere(radius float64) Solid
	Rod(from, to [3]float64, radius float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
