package scene

import (
	"math"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/entity"
	"github.com/yunhao-qian/light2d/pkg/geometry"
	"github.com/yunhao-qian/light2d/pkg/material"
)

// HelloCircle is the simplest possible scene: one emissive circle
// centered in a square render region.
func HelloCircle() *Scene {
	light := entity.NewSimpleEntity(
		geometry.NewCircle(core.NewVec2(0, 0), 1),
		material.NewConstantLight(core.NewSpectrum(1, 1, 1)),
	)
	return NewScene(core.NewRegion(core.NewVec2(-3, -3), core.NewVec2(3, 3)), light)
}

// Ring places n emissive circles evenly around the origin, giving
// every interior sample multiple directions of direct light.
func Ring(n int, radius, circleRadius float64) *Scene {
	entities := make([]*entity.SimpleEntity, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		center := core.NewVec2(radius*math.Cos(angle), radius*math.Sin(angle))
		li := 0.5 + 0.5*float64(i%2)
		entities[i] = entity.NewSimpleEntity(
			geometry.NewCircle(center, circleRadius),
			material.NewConstantLight(core.NewSpectrum(li, li, li)),
		)
	}
	bound := radius + circleRadius + 1
	region := core.NewRegion(core.NewVec2(-bound, -bound), core.NewVec2(bound, bound))
	return NewScene(region, entities...)
}

// DiffuseFloor exercises Lambertian scattering: a large diffuse disc
// standing in for a ground plane, lit by one emissive circle overhead.
func DiffuseFloor() *Scene {
	floor := entity.NewSimpleEntity(
		geometry.NewCircle(core.NewVec2(0, -1004), 1000),
		material.NewLambertian(core.NewSpectrum(0.7, 0.7, 0.7)),
	)
	sky := entity.NewSimpleEntity(
		geometry.NewCircle(core.NewVec2(0, 1000), 990),
		material.NewConstantLight(core.NewSpectrum(0.9, 0.95, 1.0)),
	)
	mirror := entity.NewSimpleEntity(
		geometry.NewCircle(core.NewVec2(1.5, -1), 0.6),
		material.NewMirror(core.NewSpectrum(0.9, 0.9, 0.9)),
	)
	region := core.NewRegion(core.NewVec2(-4, -4), core.NewVec2(4, 1))
	return NewScene(region, floor, sky, mirror)
}
