package core

// Region is a world-space rectangle given by its min and max corners.
// It is used for the render region passed to renderer.Render, and for
// the per-tile and per-pixel sub-regions derived from it. Region is
// kept distinct from AABB: an AABB is a property of a shape, while a
// Region is a piece of render geometry that is sliced up by the tile
// and pixel grids and never unioned.
type Region struct {
	Min Vec2
	Max Vec2
}

// NewRegion creates a Region from min/max corners.
func NewRegion(min, max Vec2) Region {
	return Region{Min: min, Max: max}
}

// Valid reports whether the region has positive width and height.
func (r Region) Valid() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// Lerp linearly interpolates between the region's min and max corners
// by fractions (tx, ty) in [0, 1].
func (r Region) Lerp(tx, ty float64) Vec2 {
	return Vec2{
		X: r.Min.X + (r.Max.X-r.Min.X)*tx,
		Y: r.Min.Y + (r.Max.Y-r.Min.Y)*ty,
	}
}
