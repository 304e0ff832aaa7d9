// Package geometry contains the Shape variant set: concrete primitives
// that know how to intersect a ray and report their bounding box.
package geometry

import "github.com/yunhao-qian/light2d/pkg/core"

// Shape is the interface implemented by concrete ray-intersectable
// primitives. Hit attempts to intersect ray's parametric segment
// (0, ray.TMax); on success it lowers ray.TMax to the hit parameter and
// writes interaction.P and interaction.N. It never mutates ray on a
// miss, and never raises ray.TMax.
type Shape interface {
	Hit(ray *core.Ray, interaction *core.SurfaceInteraction) bool
	BoundingBox() core.AABB
}
