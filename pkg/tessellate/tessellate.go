// Package tessellate turns a compiled assembly's solids into triangle
// meshes using a geometry kernel. One mesh is produced per solid part, so
// a robot can be exported or rendered piecewise.
package tessellate

import (
	"fmt"

	"github.com/chazu/tenseg/pkg/builder"
	"github.com/chazu/tenseg/pkg/kernel"
)

// NamedMesh pairs a triangle mesh with the part name it came from.
type NamedMesh struct {
	Name string
	Mesh *kernel.Mesh
}

// Tessellate meshes every solid in the assembly. Assemblies compiled
// without a kernel carry no solids and produce no meshes. The tessellator
// is read-only and never mutates the assembly.
func Tessellate(asm *builder.Assembly, k kernel.Kernel) ([]NamedMesh, error) {
	if asm == nil || k == nil {
		return nil, nil
	}

	var meshes []NamedMesh
	for _, ns := range asm.Solids() {
		if ns.Solid == nil {
			continue
		}
		mesh, err := k.ToMesh(ns.Solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: meshing %q: %w", ns.Name, err)
		}
		mesh.PartName = ns.Name
		meshes = append(meshes, NamedMesh{Name: ns.Name, Mesh: mesh})
	}
	return meshes, nil
}

// TriangleCount sums the triangle counts of the given meshes.
func TriangleCount(meshes []NamedMesh) int {
	total := 0
	for _, m := range meshes {
		if m.Mesh != nil {
			total += m.Mesh.TriangleCount()
		}
	}
	return total
}
