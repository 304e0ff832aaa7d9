package geometry

import (
	"math"

	"github.com/yunhao-qian/light2d/pkg/core"
)

// Circle is a shape specified by its center and radius.
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a new circle.
func NewCircle(center core.Vec2, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// Hit tests whether ray's segment (0, ray.TMax) intersects the circle.
//
// d is normalized to d-hat with length |d|; the quadratic is solved in
// the normalized direction, and roots are converted back to ray-
// parameter units by dividing by |d|. A tangent ray (delta == 0) counts
// as a hit only if the resulting t is strictly within (0, t_max); a
// ray whose origin is inside the circle takes the far root.
func (c *Circle) Hit(ray *core.Ray, interaction *core.SurfaceInteraction) bool {
	dLen := ray.Direction.Length()
	if dLen == 0 {
		return false
	}
	dHat := ray.Direction.Multiply(1 / dLen)

	oc := c.Center.Subtract(ray.Origin)
	b := dHat.Dot(oc)
	delta := b*b - oc.Dot(oc) + c.Radius*c.Radius
	if delta < 0 {
		return false
	}
	sqrtDelta := math.Sqrt(delta)

	t1 := (b - sqrtDelta) / dLen
	var t float64
	if t1 >= ray.TMax {
		return false
	}
	if t1 > 0 {
		t = t1
	} else {
		t2 := (b + sqrtDelta) / dLen
		if !(t2 > 0 && t2 < ray.TMax) {
			return false
		}
		t = t2
	}

	p := ray.At(t)
	n := p.Subtract(c.Center).Normalize()

	ray.TMax = t
	interaction.P = p
	interaction.N = n
	return true
}

// BoundingBox returns ([cx-r, cy-r], [cx+r, cy+r]).
func (c *Circle) BoundingBox() core.AABB {
	r := core.NewVec2(c.Radius, c.Radius)
	return core.NewAABB(c.Center.Subtract(r), c.Center.Add(r))
}
