package duct

import (
	"github.com/chazu/tenseg/pkg/structure"
)

// Placement selects which end of the assembly a segment occupies. The two
// segments are geometrically identical but differ in which corners carry
// touch sensor spheres and which hinge classes their sloped edges use.
type Placement int

const (
	Bottom Placement = iota
	Top
)

// Each segment contributes sixteen nodes in a fixed order. Code elsewhere
// depends on these indices, so they are named here once.
const (
	nodeBottomRight = iota
	nodeBottomLeft
	nodeTopBack
	nodeTopFront
	nodeBottomMidRight
	nodeBottomMidLeft
	nodeTopMidBack
	nodeTopMidFront
	nodeBottomRightFront
	nodeBottomLeftFront
	nodeBottomRightBack
	nodeBottomLeftBack
	nodeTopRightFront
	nodeTopLeftFront
	nodeTopRightBack
	nodeTopLeftBack

	// SegmentNodeCount is the number of nodes one segment adds.
	SegmentNodeCount = 16
)

// segmentParams are the geometric inputs for one segment's node layout.
type segmentParams struct {
	edge    float64 // triangle edge length
	offset  float64 // vertical offset of the bottom edge
	height  float64 // vertical extent of the tetrahedron
	hingeAt float64 // fraction along each sloped edge for hinge points
	nudge   float64 // separation applied to coincident attachment points
}

// addSegmentNodes appends one tetrahedral segment's sixteen nodes to st.
// The bottom edge runs along X, the top edge along Z. Hinge attachment
// points are placed before the main corners are nudged inward, so they sit
// on the ideal edges.
func addSegmentNodes(st *structure.Structure, p segmentParams, pos Placement) {
	bottomRight := structure.Vec3{X: p.edge / 2, Y: p.offset, Z: 0}
	bottomLeft := structure.Vec3{X: -p.edge / 2, Y: p.offset, Z: 0}
	topBack := structure.Vec3{X: 0, Y: p.offset + p.height, Z: -p.edge / 2}
	topFront := structure.Vec3{X: 0, Y: p.offset + p.height, Z: p.edge / 2}

	bottomMidRight := structure.Vec3{X: p.nudge, Y: p.offset, Z: 0}
	bottomMidLeft := structure.Vec3{X: -p.nudge, Y: p.offset, Z: 0}
	topMidBack := structure.Vec3{X: 0, Y: p.offset + p.height, Z: -p.nudge}
	topMidFront := structure.Vec3{X: 0, Y: p.offset + p.height, Z: p.nudge}

	bottomRightFront := bottomRight.Lerp(topFront, p.hingeAt)
	bottomLeftFront := bottomLeft.Lerp(topFront, p.hingeAt)
	bottomRightBack := bottomRight.Lerp(topBack, p.hingeAt)
	bottomLeftBack := bottomLeft.Lerp(topBack, p.hingeAt)
	topRightFront := topFront.Lerp(bottomRight, p.hingeAt)
	topLeftFront := topFront.Lerp(bottomLeft, p.hingeAt)
	topRightBack := topBack.Lerp(bottomRight, p.hingeAt)
	topLeftBack := topBack.Lerp(bottomLeft, p.hingeAt)

	// Pull the main corners slightly inward so the vertical rods do not
	// start at the exact sphere centres.
	bottomRight.X -= p.nudge
	bottomLeft.X += p.nudge
	topFront.Z -= p.nudge
	topBack.Z += p.nudge

	points := [SegmentNodeCount]structure.Vec3{
		nodeBottomRight:      bottomRight,
		nodeBottomLeft:       bottomLeft,
		nodeTopBack:          topBack,
		nodeTopFront:         topFront,
		nodeBottomMidRight:   bottomMidRight,
		nodeBottomMidLeft:    bottomMidLeft,
		nodeTopMidBack:       topMidBack,
		nodeTopMidFront:      topMidFront,
		nodeBottomRightFront: bottomRightFront,
		nodeBottomLeftFront:  bottomLeftFront,
		nodeBottomRightBack:  bottomRightBack,
		nodeBottomLeftBack:   bottomLeftBack,
		nodeTopRightFront:    topRightFront,
		nodeTopLeftFront:     topLeftFront,
		nodeTopRightBack:     topRightBack,
		nodeTopLeftBack:      topLeftBack,
	}

	sphereAt := map[int]bool{nodeBottomRight: true, nodeBottomLeft: true}
	if pos == Top {
		sphereAt = map[int]bool{nodeTopBack: true, nodeTopFront: true}
	}

	for i, pt := range points {
		if sphereAt[i] {
			st.AddTaggedNode(pt, structure.ParseTags(structure.TagSphere))
		} else {
			st.AddNode(pt)
		}
	}
}

// pairSpec names one tagged connection between two segment-relative node
// indices.
type pairSpec struct {
	a, b int
	tag  string
}

// The four vertical rods along the sloped edges are common to both
// segments. The remaining connections differ: the bottom segment carries
// its prismatic actuator between the bottom mid points, the top segment
// between the top mid points, and the hinge classes attach asymmetrically
// so the assembly folds the right way.
var vertRodPairs = []pairSpec{
	{nodeBottomRightFront, nodeTopRightFront, structure.TagVertRod},
	{nodeBottomRightBack, nodeTopRightBack, structure.TagVertRod},
	{nodeBottomLeftFront, nodeTopLeftFront, structure.TagVertRod},
	{nodeBottomLeftBack, nodeTopLeftBack, structure.TagVertRod},
}

var bottomSegmentPairs = []pairSpec{
	{nodeBottomRight, nodeBottomMidRight, structure.TagPrismRod},
	{nodeBottomMidLeft, nodeBottomLeft, structure.TagPrismRod},
	{nodeTopBack, nodeTopFront, structure.TagInnerRod},
	{nodeBottomMidRight, nodeBottomMidLeft, structure.TagPrismatic},

	{nodeBottomRight, nodeBottomRightFront, structure.TagHinge},
	{nodeBottomRight, nodeBottomRightBack, structure.TagHinge},
	{nodeBottomLeft, nodeBottomLeftFront, structure.TagHinge},
	{nodeBottomLeft, nodeBottomLeftBack, structure.TagHinge},

	{nodeTopFront, nodeTopRightFront, structure.TagHinge3},
	{nodeTopFront, nodeTopLeftFront, structure.TagHinge3},
	{nodeTopBack, nodeTopRightBack, structure.TagHinge3},
	{nodeTopBack, nodeTopLeftBack, structure.TagHinge3},
}

var topSegmentPairs = []pairSpec{
	{nodeBottomRight, nodeBottomLeft, structure.TagInnerRod},
	{nodeTopBack, nodeTopMidBack, structure.TagPrismRod},
	{nodeTopMidFront, nodeTopFront, structure.TagPrismRod},
	{nodeTopMidBack, nodeTopMidFront, structure.TagPrismatic2},

	{nodeBottomRight, nodeBottomRightFront, structure.TagHinge3},
	{nodeBottomRight, nodeBottomRightBack, structure.TagHinge3},
	{nodeBottomLeft, nodeBottomLeftFront, structure.TagHinge3},
	{nodeBottomLeft, nodeBottomLeftBack, structure.TagHinge3},

	{nodeTopFront, nodeTopRightFront, structure.TagHinge2},
	{nodeTopFront, nodeTopLeftFront, structure.TagHinge2},
	{nodeTopBack, nodeTopRightBack, structure.TagHinge2},
	{nodeTopBack, nodeTopLeftBack, structure.TagHinge2},
}

// connectSegment appends one segment's fourteen connections. start is the
// structure index of the segment's first node.
func connectSegment(st *structure.Structure, start int, pos Placement) {
	for _, p := range vertRodPairs {
		st.AddPair(start+p.a, start+p.b, p.tag)
	}
	pairs := bottomSegmentPairs
	if pos == Top {
		pairs = topSegmentPairs
	}
	for _, p := range pairs {
		st.AddPair(start+p.a, start+p.b, p.tag)
	}
}

// Cables between the segments: four vertical strings from the bottom
// segment's main nodes straight up, then four saddle strings from the
// bottom segment's top corners to the top segment's bottom corners. Here
// a is relative to the bottom segment and b to the top segment.
var assemblyCables = []pairSpec{
	{nodeBottomRight, nodeBottomRight, structure.TagVertString + " one"},
	{nodeBottomLeft, nodeBottomLeft, structure.TagVertString + " two"},
	{nodeTopBack, nodeTopBack, structure.TagVertString + " three"},
	{nodeTopFront, nodeTopFront, structure.TagVertString + " four"},

	{nodeTopFront, nodeBottomRight, structure.TagSaddle + " five"},
	{nodeTopBack, nodeBottomRight, structure.TagSaddle + " six"},
	{nodeTopFront, nodeBottomLeft, structure.TagSaddle + " seven"},
	{nodeTopBack, nodeBottomLeft, structure.TagSaddle + " eight"},
}

// connectAssembly strings the eight cables between the two segments.
func connectAssembly(st *structure.Structure, topStart int) {
	for _, p := range assemblyCables {
		st.AddPair(p.a, topStart+p.b, p.tag)
	}
}

// startHeight lifts the finished assembly clear of the ground plane.
const startHeight = 10

// Build generates the complete two-segment duct robot structure from cfg.
func Build(cfg Config) (*structure.Structure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	st := structure.New()

	bottom := segmentParams{
		edge:    cfg.EdgeLength,
		offset:  0,
		height:  cfg.DuctHeight,
		hingeAt: cfg.HingeFraction,
		nudge:   cfg.NodeOffset,
	}
	top := bottom
	top.offset = cfg.DuctDistance

	addSegmentNodes(st, bottom, Bottom)
	connectSegment(st, 0, Bottom)

	addSegmentNodes(st, top, Top)
	connectSegment(st, SegmentNodeCount, Top)

	connectAssembly(st, SegmentNodeCount)

	st.Move(structure.Vec3{Y: startHeight})
	return st, nil
}
