// Package scene assembles entities into renderable scenes: hand-built
// demo scenes, a declarative YAML loader, and an SVG layout preview.
package scene

import (
	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/entity"
)

// Scene bundles the entities to render with a suggested default
// render region, keeping the underlying SimpleEntity list around
// (rather than only the composed aggregate) so that the loader and
// the SVG preview can introspect shape and material parameters.
type Scene struct {
	Entities []*entity.SimpleEntity
	Region   core.Region
}

// NewScene creates a scene from its entities and default render region.
func NewScene(region core.Region, entities ...*entity.SimpleEntity) *Scene {
	return &Scene{Entities: entities, Region: region}
}

// Aggregate composes the scene's entities into a single Entity for
// the integrator to intersect against.
func (s *Scene) Aggregate() entity.Entity {
	children := make([]entity.Entity, len(s.Entities))
	for i, e := range s.Entities {
		children[i] = e
	}
	return entity.NewFlatAggregate(children...)
}
