package entity

import (
	"math/rand"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/geometry"
	"github.com/yunhao-qian/light2d/pkg/material"
)

// SimpleEntity wires one shape to one material: a hit on the shape is
// completed by asking the material to scatter.
type SimpleEntity struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewSimpleEntity creates a new entity from a shape and a material.
func NewSimpleEntity(shape geometry.Shape, mat material.Material) *SimpleEntity {
	return &SimpleEntity{Shape: shape, Material: mat}
}

// Intersect tests ray against the shape and, on a hit, lets the
// material fill in Li, Attenuation, and DOut.
func (e *SimpleEntity) Intersect(ray *core.Ray, interaction *core.SurfaceInteraction, rng *rand.Rand) bool {
	if !e.Shape.Hit(ray, interaction) {
		return false
	}
	e.Material.Scatter(*ray, interaction, rng)
	return true
}

// BoundingBox returns the shape's bounding box.
func (e *SimpleEntity) BoundingBox() core.AABB {
	return e.Shape.BoundingBox()
}
