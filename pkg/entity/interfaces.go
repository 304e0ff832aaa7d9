// Package entity composes shapes and materials into the objects a
// scene is actually built from: something that can be intersected and
// report a bounding box.
package entity

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Entity is anything that can be placed in a scene and intersected by
// a ray. Intersect follows the same t_max-mutation contract as
// geometry.Shape: on a hit it shrinks ray.TMax, completes interaction
// (including the material's contribution), and returns true; on a miss
// it leaves the ray and interaction untouched and returns false.
type Entity interface {
	Intersect(ray *core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) bool
	BoundingBox() core.AABB
}
