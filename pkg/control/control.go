// Package control holds controllers that attach to robot models as
// lifecycle observers.
package control

import (
	"github.com/chazu/tenseg/pkg/builder"
	"github.com/chazu/tenseg/pkg/model"
	"github.com/chazu/tenseg/pkg/structure"
)

// CableSource is any model exposing its cables in creation order. The
// duct robot satisfies it.
type CableSource interface {
	Muscles() []*builder.Cable
}

// PretensionController shortens every cable of its model right after
// setup so the assembly starts under tension instead of settling slack.
// It takes no action on step or teardown.
type PretensionController struct {
	pretension float64
}

// NewPretensionController returns a controller that removes the given
// fraction of each cable's natural length. The fraction must be strictly
// between 0 and 1.
func NewPretensionController(pretension float64) (*PretensionController, error) {
	if err := structure.Positive("pretension controller", "pretension", pretension); err != nil {
		return nil, err
	}
	if pretension >= 1 {
		return nil, &structure.ConfigError{
			Scope:  "pretension controller",
			Field:  "pretension",
			Reason: "must be less than 1",
		}
	}
	return &PretensionController{pretension: pretension}, nil
}

// OnSetup sets each cable's rest length to (1-pretension) times its
// current length. Models without cables are left alone.
func (c *PretensionController) OnSetup(m model.Model) {
	src, ok := m.(CableSource)
	if !ok {
		return
	}
	for _, cable := range src.Muscles() {
		cable.SetRestLength((1 - c.pretension) * cable.Length())
	}
}

func (c *PretensionController) OnStep(model.Model, float64) {}

func (c *PretensionController) OnTeardown(model.Model) {}
