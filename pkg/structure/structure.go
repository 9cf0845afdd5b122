package structure

import "fmt"

// Node is a labeled point in a structure. Position is immutable once the
// structure is handed to the compiler; Tags select which physical part the
// part builders instantiate for it (most nodes carry no tags and exist only
// as connection endpoints).
type Node struct {
	Pos  Vec3 `json:"pos"`
	Tags Tags `json:"tags,omitempty"`
}

// Pair connects two nodes by index and classifies the connection's physical
// role through its tag set. The pair is unordered for identity purposes
// (a-b and b-a are the same connection) but A and B are preserved as given
// because connector builders use them to orient the part.
type Pair struct {
	A    int  `json:"a"`
	B    int  `json:"b"`
	Tags Tags `json:"tags"`
}

// SamePoints reports whether p and o connect the same two node indices,
// in either order.
func (p Pair) SamePoints(o Pair) bool {
	return (p.A == o.A && p.B == o.B) || (p.A == o.B && p.B == o.A)
}

// Structure accumulates the nodes and pairs of one model description.
// Node indices are assigned in insertion order and are part of the
// description's contract: pair-building code references them positionally.
type Structure struct {
	Nodes []Node
	Pairs []Pair
}

// New returns an empty Structure.
func New() *Structure {
	return &Structure{}
}

// AddNode appends an untagged node and returns its index.
func (s *Structure) AddNode(pos Vec3) int {
	return s.AddTaggedNode(pos, nil)
}

// AddTaggedNode appends a node with the given tag set and returns its index.
func (s *Structure) AddTaggedNode(pos Vec3, tags Tags) int {
	s.Nodes = append(s.Nodes, Node{Pos: pos, Tags: tags})
	return len(s.Nodes) - 1
}

// AddPair appends a tagged connection between two existing nodes.
//
// Both indices must reference nodes already emitted, the indices must
// differ, and the connection must not duplicate an existing one in either
// order. Violations are structure-generator bugs, not runtime conditions,
// so AddPair panics rather than returning an error.
func (s *Structure) AddPair(a, b int, tag string) {
	if a < 0 || a >= len(s.Nodes) || b < 0 || b >= len(s.Nodes) {
		panic(fmt.Sprintf("structure: pair (%d,%d) references a node out of range [0,%d)", a, b, len(s.Nodes)))
	}
	if a == b {
		panic(fmt.Sprintf("structure: pair (%d,%d) connects a node to itself", a, b))
	}
	p := Pair{A: a, B: b, Tags: ParseTags(tag)}
	for _, q := range s.Pairs {
		if p.SamePoints(q) {
			panic(fmt.Sprintf("structure: duplicate pair (%d,%d)", a, b))
		}
	}
	s.Pairs = append(s.Pairs, p)
}

// Move translates every node by offset. Called before compilation to place
// the whole structure (e.g. lifting a robot off the ground plane).
func (s *Structure) Move(offset Vec3) {
	for i := range s.Nodes {
		s.Nodes[i].Pos = s.Nodes[i].Pos.Add(offset)
	}
}

// NodeCount returns the number of nodes emitted so far.
func (s *Structure) NodeCount() int { return len(s.Nodes) }

// PairCount returns the number of connections emitted so far.
func (s *Structure) PairCount() int { return len(s.Pairs) }

// PairsTagged returns all pairs whose tag sets contain every word of the
// given tag string, in emission order.
func (s *Structure) PairsTagged(tag string) []Pair {
	want := ParseTags(tag)
	var out []Pair
	for _, p := range s.Pairs {
		if p.Tags.ContainsAll(want) {
			out = append(out, p)
		}
	}
	return out
}

// NodesTagged returns the indices of all nodes whose tag sets contain every
// word of the given tag string, in emission order.
func (s *Structure) NodesTagged(tag string) []int {
	want := ParseTags(tag)
	var out []int
	for i, n := range s.Nodes {
		if n.Tags.ContainsAll(want) {
			out = append(out, i)
		}
	}
	return out
}
