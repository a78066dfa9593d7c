package logic

import (
	"context"
	"fmt"

	"github.com/riftglance/insights-api/internal/models"
)

// ComputeFunc is one scene's aggregation. It returns ErrNoMatchData for
// empty coverage; any other error or panic is absorbed by the safe
// wrapper around it.
type ComputeFunc func(ctx context.Context, sc *SceneContext) (*models.SceneInsight, error)

// SceneDefinition binds a scene id to its label, visualization shape and
// computation.
type SceneDefinition struct {
	ID      string
	Label   string
	Kind    models.VizKind
	Compute ComputeFunc
}

// Registry is the static scene table. It is populated once at
// construction; the order of All() is the canonical presentation
// sequence of scenes.
type Registry struct {
	order []string
	defs  map[string]*SceneDefinition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*SceneDefinition)}
}

func (r *Registry) Register(def SceneDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("scene definition missing id")
	}
	if _, exists := r.defs[def.ID]; exists {
		return fmt.Errorf("scene %q already registered", def.ID)
	}
	d := def
	r.defs[def.ID] = &d
	r.order = append(r.order, def.ID)
	return nil
}

func (r *Registry) Get(id string) (*SceneDefinition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// All returns the definitions in registration order.
func (r *Registry) All() []*SceneDefinition {
	out := make([]*SceneDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}
