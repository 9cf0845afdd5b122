package builder

import (
	"fmt"

	"github.com/chazu/tenseg/pkg/structure"
)

// CordePoints interpolates a chain of exactly resolution points from one
// anchor to the other, endpoints included, evenly spaced. The chain is the
// mass-point layout of a corde soft cable.
func CordePoints(from, to structure.Vec3, resolution int) ([]structure.Vec3, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("builder: corde resolution must be at least 2, got %d", resolution)
	}

	points := make([]structure.Vec3, 0, resolution)
	points = append(points, from)

	step := to.Sub(from).Scale(1 / float64(resolution-1))
	pos := from
	for i := 1; i < resolution; i++ {
		pos = pos.Add(step)
		points = append(points, pos)
	}
	return points, nil
}
