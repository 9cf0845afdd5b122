package sdfx

import (
	"math"
	"testing"
)

func TestBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)
	min, max := box.BoundingBox()

	const tol = 0.01
	expectMin := [3]float64{-50, -25, -12.5}
	expectMax := [3]float64{50, 25, 12.5}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], expectMax[i])
		}
	}
}

func TestSphere(t *testing.T) {
	k := New()
	s := k.Sphere(10)
	min, max := s.BoundingBox()
	const tol = 0.5
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]+10) > tol {
			t.Errorf("min[%d] = %f, expected ~-10", i, min[i])
		}
		if math.Abs(max[i]-10) > tol {
			t.Errorf("max[%d] = %f, expected ~10", i, max[i])
		}
	}
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("sphere mesh is empty")
	}
}

func TestRodVertical(t *testing.T) {
	k := New()
	// A rod straight up the Y axis exercises the phi rotation alone.
	rod := k.Rod([3]float64{0, 0, 0}, [3]float64{0, 20, 0}, 1)
	min, max := rod.BoundingBox()

	const tol = 1.0
	if math.Abs(min[1]-0) > tol || math.Abs(max[1]-20) > tol {
		t.Errorf("vertical rod Y bounds = [%f, %f], expected ~[0, 20]", min[1], max[1])
	}
	// X and Z extents should be about the rod diameter.
	if (max[0] - min[0]) > 2+tol {
		t.Errorf("vertical rod X extent = %f, expected ~2", max[0]-min[0])
	}
	if (max[2] - min[2]) > 2+tol {
		t.Errorf("vertical rod Z extent = %f, expected ~2", max[2]-min[2])
	}
}

func TestRodDiagonal(t *testing.T) {
	k := New()
	from := [3]float64{-15, 0, 0}
	to := [3]float64{0, 22, 15}
	rod := k.Rod(from, to, 1.27)
	min, max := rod.BoundingBox()

	// The bounding box must cover both endpoints (with radius slack).
	const slack = 2.0
	for i := 0; i < 3; i++ {
		lo := math.Min(from[i], to[i])
		hi := math.Max(from[i], to[i])
		if min[i] > lo+slack || min[i] < lo-slack-1 {
			t.Errorf("min[%d] = %f, expected near %f", i, min[i], lo)
		}
		if max[i] < hi-slack || max[i] > hi+slack+1 {
			t.Errorf("max[%d] = %f, expected near %f", i, max[i], hi)
		}
	}
}

func TestRodZeroLengthPanics(t *testing.T) {
	k := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-length rod")
		}
	}()
	k.Rod([3]float64{1, 2, 3}, [3]float64{1, 2, 3}, 1)
}

func TestUnion(t *testing.T) {
	k := New()
	box1 := k.Box(50, 50, 50)
	box2 := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(box1, box2)
	mesh, err := k.ToMesh(u)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("union mesh is empty")
	}
}

func TestDifference(t *testing.T) {
	k := New()

	box := k.Box(100, 100, 100)
	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) failed: %v", err)
	}

	cyl := k.Cylinder(120, 20)
	diff := k.Difference(box, cyl)
	diffMesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	// A box with a hole should have more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	translated := k.Translate(box, 100, 200, 300)

	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{95, 195, 295}
	expectMax := [3]float64{105, 205, 305}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestRotate(t *testing.T) {
	k := New()
	box := k.Box(100, 10, 10)

	// A long box along X rotated 90 degrees around Z should extend along Y instead.
	rotated := k.Rotate(box, 0, 0, 90)
	min, max := rotated.BoundingBox()

	xExtent := max[0] - min[0]
	yExtent := max[1] - min[1]

	const tol = 1.0
	if math.Abs(xExtent-10) > tol {
		t.Errorf("rotated X extent = %f, expected ~10", xExtent)
	}
	if math.Abs(yExtent-100) > tol {
		t.Errorf("rotated Y extent = %f, expected ~100", yExtent)
	}
}
