package builder

import (
	"github.com/chazu/tenseg/pkg/kernel"
	"github.com/chazu/tenseg/pkg/structure"
)

// PairContext is what a pair builder receives: the resolved endpoint
// coordinates and the pair's full tag set.
type PairContext struct {
	Name     string
	Tags     structure.Tags
	From, To structure.Vec3
}

// NodeContext is what a node builder receives.
type NodeContext struct {
	Name string
	Tags structure.Tags
	Pos  structure.Vec3
}

// PairBuilder constructs a part from a tagged pair. The kernel may be nil,
// in which case the part carries no solid geometry.
type PairBuilder interface {
	BuildPair(ctx PairContext, k kernel.Kernel) (Part, error)
}

// NodeBuilder constructs a part from a tagged node.
type NodeBuilder interface {
	BuildNode(ctx NodeContext, k kernel.Kernel) (Part, error)
}

type pairEntry struct {
	match structure.Tags
	b     PairBuilder
}

type nodeEntry struct {
	match structure.Tags
	b     NodeBuilder
}

// Spec is the ordered tag-to-constructor table. A builder registered for
// "vert string" matches every pair whose tag set contains both words; the
// first registered match wins. Registration order is therefore part of the
// spec's meaning, exactly like the part creation order it induces.
type Spec struct {
	pairs []pairEntry
	nodes []nodeEntry
}

// NewSpec returns an empty Spec.
func NewSpec() *Spec {
	return &Spec{}
}

// AddBuilder registers a pair builder for the given tag words.
func (s *Spec) AddBuilder(tag string, b PairBuilder) {
	s.pairs = append(s.pairs, pairEntry{match: structure.ParseTags(tag), b: b})
}

// AddNodeBuilder registers a node builder for the given tag words.
func (s *Spec) AddNodeBuilder(tag string, b NodeBuilder) {
	s.nodes = append(s.nodes, nodeEntry{match: structure.ParseTags(tag), b: b})
}

func (s *Spec) findPair(tags structure.Tags) PairBuilder {
	for _, e := range s.pairs {
		if tags.ContainsAll(e.match) {
			return e.b
		}
	}
	return nil
}

func (s *Spec) findNode(tags structure.Tags) NodeBuilder {
	for _, e := range s.nodes {
		if tags.ContainsAll(e.match) {
			return e.b
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Concrete builder infos, one per part kind.
// ---------------------------------------------------------------------------

// RodInfo builds rigid rods.
type RodInfo struct {
	cfg RodConfig
}

// NewRodInfo validates the config and returns a rod builder.
func NewRodInfo(cfg RodConfig) (*RodInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RodInfo{cfg: cfg}, nil
}

func (i *RodInfo) BuildPair(ctx PairContext, k kernel.Kernel) (Part, error) {
	r := &Rod{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}
	if k != nil {
		r.Solid = k.Rod(vec(ctx.From), vec(ctx.To), i.cfg.Radius)
	}
	return r, nil
}

// SphereInfo builds spherical contact tips on tagged nodes.
type SphereInfo struct {
	cfg SphereConfig
}

// NewSphereInfo validates the config and returns a sphere-tip builder.
func NewSphereInfo(cfg SphereConfig) (*SphereInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SphereInfo{cfg: cfg}, nil
}

func (i *SphereInfo) BuildNode(ctx NodeContext, k kernel.Kernel) (Part, error) {
	t := &SphereTip{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		Center: ctx.Pos,
		Config: i.cfg,
	}
	if k != nil {
		t.Solid = k.Translate(k.Sphere(i.cfg.Radius), ctx.Pos.X, ctx.Pos.Y, ctx.Pos.Z)
	}
	return t, nil
}

// CableInfo builds linear strings. A fresh cable starts taut: its rest
// length equals its anchor distance, so it carries no tension until a
// controller shortens it.
type CableInfo struct {
	cfg CableConfig
}

// NewCableInfo validates the config and returns a cable builder.
func NewCableInfo(cfg CableConfig) (*CableInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CableInfo{cfg: cfg}, nil
}

func (i *CableInfo) BuildPair(ctx PairContext, _ kernel.Kernel) (Part, error) {
	c := &Cable{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}
	c.restLength = c.Length()
	return c, nil
}

// PrismaticInfo builds telescoping joints.
type PrismaticInfo struct {
	cfg PrismaticConfig
}

// NewPrismaticInfo validates the config and returns a prismatic builder.
func NewPrismaticInfo(cfg PrismaticConfig) (*PrismaticInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PrismaticInfo{cfg: cfg}, nil
}

func (i *PrismaticInfo) BuildPair(ctx PairContext, _ kernel.Kernel) (Part, error) {
	return &Prismatic{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}, nil
}

// HingeInfo builds rotational joints.
type HingeInfo struct {
	cfg HingeConfig
}

// NewHingeInfo validates the config and returns a hinge builder.
func NewHingeInfo(cfg HingeConfig) (*HingeInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HingeInfo{cfg: cfg}, nil
}

func (i *HingeInfo) BuildPair(ctx PairContext, _ kernel.Kernel) (Part, error) {
	return &Hinge{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}, nil
}

// BoxInfo builds rigid boxes spanning their pair's endpoints. The
// cross-section (Width, Height) fills the two axes orthogonal to the
// pair's dominant axis, in axis order.
type BoxInfo struct {
	cfg BoxConfig
}

// NewBoxInfo validates the config and returns a box builder.
func NewBoxInfo(cfg BoxConfig) (*BoxInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BoxInfo{cfg: cfg}, nil
}

func (i *BoxInfo) BuildPair(ctx PairContext, k kernel.Kernel) (Part, error) {
	b := &Box{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}
	if k != nil {
		d := ctx.To.Sub(ctx.From)
		dims := [3]float64{abs(d.X), abs(d.Y), abs(d.Z)}
		// Dominant axis keeps the span; the two lateral axes get the
		// configured cross-section in axis order.
		dom := 0
		for a := 1; a < 3; a++ {
			if dims[a] > dims[dom] {
				dom = a
			}
		}
		lateral := []float64{i.cfg.Width, i.cfg.Height}
		li := 0
		for a := 0; a < 3; a++ {
			if a == dom {
				continue
			}
			dims[a] = lateral[li]
			li++
		}
		mid := ctx.From.Lerp(ctx.To, 0.5)
		b.Solid = k.Translate(k.Box(dims[0], dims[1], dims[2]), mid.X, mid.Y, mid.Z)
	}
	return b, nil
}

// SpringInfo builds unidirectional compression springs.
type SpringInfo struct {
	cfg SpringConfig
}

// NewSpringInfo validates the config and returns a spring builder.
func NewSpringInfo(cfg SpringConfig) (*SpringInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SpringInfo{cfg: cfg}, nil
}

func (i *SpringInfo) BuildPair(ctx PairContext, _ kernel.Kernel) (Part, error) {
	return &Spring{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		From:   ctx.From,
		To:     ctx.To,
		Config: i.cfg,
	}, nil
}

// CordeInfo builds soft cables as interpolated mass-point chains.
type CordeInfo struct {
	cfg CordeConfig
}

// NewCordeInfo validates the config and returns a corde builder.
func NewCordeInfo(cfg CordeConfig) (*CordeInfo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CordeInfo{cfg: cfg}, nil
}

func (i *CordeInfo) BuildPair(ctx PairContext, _ kernel.Kernel) (Part, error) {
	pts, err := CordePoints(ctx.From, ctx.To, i.cfg.Resolution)
	if err != nil {
		return nil, err
	}
	return &CordeCable{
		base:   base{name: ctx.Name, tags: ctx.Tags},
		Points: pts,
		Config: i.cfg,
	}, nil
}

func vec(v structure.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
