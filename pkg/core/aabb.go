package core

import "math"

// AABB is an axis-aligned bounding box: a pair (Min, Max) of Vec2.
type AABB struct {
	Min Vec2
	Max Vec2
}

// NewAABB creates an AABB from min and max corners.
func NewAABB(min, max Vec2) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity element of Union: (+Inf, -Inf).
func EmptyAABB() AABB {
	return AABB{
		Min: Vec2{math.Inf(1), math.Inf(1)},
		Max: Vec2{math.Inf(-1), math.Inf(-1)},
	}
}

// Union returns an AABB that bounds both this AABB and another, via a
// component-wise min of mins and max of maxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec2{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)},
		Max: Vec2{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y)},
	}
}

// UnionAABBs folds Union over a slice of boxes, starting from the
// empty identity. An empty slice returns EmptyAABB().
func UnionAABBs(boxes []AABB) AABB {
	result := EmptyAABB()
	for _, b := range boxes {
		result = result.Union(b)
	}
	return result
}

// Contains reports whether p lies within the box, up to a small epsilon.
func (b AABB) Contains(p Vec2, epsilon float64) bool {
	return p.X >= b.Min.X-epsilon && p.X <= b.Max.X+epsilon &&
		p.Y >= b.Min.Y-epsilon && p.Y <= b.Max.Y+epsilon
}

// Center returns the center point of the AABB.
func (b AABB) Center() Vec2 {
	return b.Min.Add(b.Max).Multiply(0.5)
}
