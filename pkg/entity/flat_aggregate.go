package entity

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// FlatAggregate owns an ordered sequence of child entities. Intersect
// invokes every child in order and returns the disjunction of their
// results; because each child shrinks ray.TMax in place, the nearest
// hit wins regardless of child order, and no short-circuit is needed.
type FlatAggregate struct {
	Children []Entity
}

// NewFlatAggregate creates a new aggregate over the given children.
func NewFlatAggregate(children ...Entity) *FlatAggregate {
	return &FlatAggregate{Children: children}
}

// Intersect tests ray against every child, keeping whichever writes
// the closest hit into interaction.
func (a *FlatAggregate) Intersect(ray *core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) bool {
	hitAny := false
	for _, child := range a.Children {
		if child.Intersect(ray, interaction, rng) {
			hitAny = true
		}
	}
	return hitAny
}

// BoundingBox returns the union of all children's bounding boxes.
func (a *FlatAggregate) BoundingBox() core.AABB {
	boxes := make([]core.AABB, len(a.Children))
	for i, child := range a.Children {
		boxes[i] = child.BoundingBox()
	}
	return core.UnionAABBs(boxes)
}
