package tessellate_test

import (
	"testing"

	"github.com/chazu/tenseg/pkg/builder"
	"github.com/chazu/tenseg/pkg/duct"
	"github.com/chazu/tenseg/pkg/kernel"
	"github.com/chazu/tenseg/pkg/kernel/sdfx"
	"github.com/chazu/tenseg/pkg/structure"
	"github.com/chazu/tenseg/pkg/tessellate"
	"github.com/chazu/tenseg/pkg/world"
)

// newKernel returns a fresh sdfx kernel for testing.
func newKernel() kernel.Kernel {
	return sdfx.New()
}

// compileRod builds a one-rod assembly with the given kernel.
func compileRod(t *testing.T, k kernel.Kernel) *builder.Assembly {
	t.Helper()
	st := structure.New()
	a := st.AddNode(structure.Vec3{})
	b := st.AddNode(structure.Vec3{Y: 10})
	st.AddPair(a, b, "rod")

	info, err := builder.NewRodInfo(builder.RodConfig{Radius: 1, Density: 0.1})
	if err != nil {
		t.Fatalf("rod info: %v", err)
	}
	spec := builder.NewSpec()
	spec.AddBuilder("rod", info)

	asm, err := builder.Compile(st, spec, k)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return asm
}

func TestTessellateNilAssembly(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, newKernel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshes != nil {
		t.Errorf("expected nil meshes, got %d", len(meshes))
	}
}

func TestTessellateNilKernel(t *testing.T) {
	asm := compileRod(t, nil)
	meshes, err := tessellate.Tessellate(asm, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meshes != nil {
		t.Errorf("expected no meshes without a kernel, got %d", len(meshes))
	}
}

func TestTessellateSingleRod(t *testing.T) {
	k := newKernel()
	asm := compileRod(t, k)

	meshes, err := tessellate.Tessellate(asm, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	m := meshes[0]
	if m.Name != "rod" {
		t.Errorf("expected mesh named rod, got %q", m.Name)
	}
	if m.Mesh.PartName != "rod" {
		t.Errorf("expected part name on mesh, got %q", m.Mesh.PartName)
	}
	if m.Mesh.IsEmpty() {
		t.Error("expected non-empty mesh for rod")
	}
	if tessellate.TriangleCount(meshes) == 0 {
		t.Error("expected nonzero triangle count")
	}
}

func TestTessellateAssemblyWithoutSolids(t *testing.T) {
	// Compiled with a nil kernel, the assembly has parts but no solids.
	asm := compileRod(t, nil)
	meshes, err := tessellate.Tessellate(asm, newKernel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meshes) != 0 {
		t.Errorf("expected no meshes, got %d", len(meshes))
	}
}

func TestTessellateDuctRobot(t *testing.T) {
	if testing.Short() {
		t.Skip("meshing the full robot is slow")
	}
	k := newKernel()
	robot, err := duct.NewRobotModel(duct.DefaultConfig(), duct.WithKernel(k))
	if err != nil {
		t.Fatalf("robot: %v", err)
	}
	w, err := world.New(world.DefaultConfig(), world.GroundConfig{})
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if err := robot.Setup(w); err != nil {
		t.Fatalf("setup: %v", err)
	}

	meshes, err := tessellate.Tessellate(robot.Assembly(), k)
	if err != nil {
		t.Fatalf("tessellate: %v", err)
	}
	// 14 rods and 4 sphere tips carry geometry; joints and cables do not.
	if len(meshes) != 18 {
		t.Errorf("expected 18 meshes, got %d", len(meshes))
	}
}
