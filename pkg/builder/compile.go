package builder

import (
	"fmt"

	"github.com/chazu/tenseg/pkg/kernel"
	"github.com/chazu/tenseg/pkg/structure"
)

// Assembly is the compiled output of a structure: every part, in creation
// order. Tagged nodes compile before pairs; pairs compile in emission
// order. Downstream controllers rely on that order (cables are indexed by
// it), so it never changes.
type Assembly struct {
	Parts []Part
}

// Compile maps every tagged node and every pair of st onto a part using
// the spec's builder table. A nil kernel compiles parts without solid
// geometry, which is how models are built for headless episode runs.
//
// A tagged node or pair that no registered builder matches is an error:
// the tag vocabulary is closed, and an unknown tag means the generator and
// the spec disagree.
func Compile(st *structure.Structure, spec *Spec, k kernel.Kernel) (*Assembly, error) {
	asm := &Assembly{}

	for idx, n := range st.Nodes {
		if len(n.Tags) == 0 {
			continue
		}
		b := spec.findNode(n.Tags)
		if b == nil {
			return nil, fmt.Errorf("builder: node %d has tags %q matching no registered builder", idx, n.Tags.String())
		}
		part, err := b.BuildNode(NodeContext{Name: n.Tags.String(), Tags: n.Tags, Pos: n.Pos}, k)
		if err != nil {
			return nil, fmt.Errorf("builder: node %d: %w", idx, err)
		}
		asm.Parts = append(asm.Parts, part)
	}

	for _, p := range st.Pairs {
		b := spec.findPair(p.Tags)
		if b == nil {
			return nil, fmt.Errorf("builder: pair (%d,%d) has tags %q matching no registered builder", p.A, p.B, p.Tags.String())
		}
		ctx := PairContext{
			Name: p.Tags.String(),
			Tags: p.Tags,
			From: st.Nodes[p.A].Pos,
			To:   st.Nodes[p.B].Pos,
		}
		part, err := b.BuildPair(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("builder: pair (%d,%d): %w", p.A, p.B, err)
		}
		asm.Parts = append(asm.Parts, part)
	}

	return asm, nil
}

// Rods returns the rigid rods in creation order.
func (a *Assembly) Rods() []*Rod {
	var out []*Rod
	for _, p := range a.Parts {
		if r, ok := p.(*Rod); ok {
			out = append(out, r)
		}
	}
	return out
}

// Cables returns the linear strings in creation order.
func (a *Assembly) Cables() []*Cable {
	var out []*Cable
	for _, p := range a.Parts {
		if c, ok := p.(*Cable); ok {
			out = append(out, c)
		}
	}
	return out
}

// Prismatics returns the telescoping joints in creation order.
func (a *Assembly) Prismatics() []*Prismatic {
	var out []*Prismatic
	for _, p := range a.Parts {
		if pr, ok := p.(*Prismatic); ok {
			out = append(out, pr)
		}
	}
	return out
}

// Hinges returns the rotational joints in creation order.
func (a *Assembly) Hinges() []*Hinge {
	var out []*Hinge
	for _, p := range a.Parts {
		if h, ok := p.(*Hinge); ok {
			out = append(out, h)
		}
	}
	return out
}

// SphereTips returns the spherical contact tips in creation order.
func (a *Assembly) SphereTips() []*SphereTip {
	var out []*SphereTip
	for _, p := range a.Parts {
		if s, ok := p.(*SphereTip); ok {
			out = append(out, s)
		}
	}
	return out
}

// Boxes returns the box parts in creation order.
func (a *Assembly) Boxes() []*Box {
	var out []*Box
	for _, p := range a.Parts {
		if b, ok := p.(*Box); ok {
			out = append(out, b)
		}
	}
	return out
}

// Springs returns the compression springs in creation order.
func (a *Assembly) Springs() []*Spring {
	var out []*Spring
	for _, p := range a.Parts {
		if s, ok := p.(*Spring); ok {
			out = append(out, s)
		}
	}
	return out
}

// Solids returns every part solid built by the kernel, with part names,
// for preview meshing. Parts compiled without a kernel contribute nothing.
func (a *Assembly) Solids() []NamedSolid {
	var out []NamedSolid
	for _, p := range a.Parts {
		switch t := p.(type) {
		case *Rod:
			if t.Solid != nil {
				out = append(out, NamedSolid{Name: t.Name(), Solid: t.Solid})
			}
		case *SphereTip:
			if t.Solid != nil {
				out = append(out, NamedSolid{Name: t.Name(), Solid: t.Solid})
			}
		case *Box:
			if t.Solid != nil {
				out = append(out, NamedSolid{Name: t.Name(), Solid: t.Solid})
			}
		}
	}
	return out
}

// NamedSolid pairs a part name with its kernel solid.
type NamedSolid struct {
	Name  string
	Solid kernel.Solid
}
