package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/geometry"
	"github.com/yunhao-qian/light2d/pkg/material"
)

func newTestCircleEntity(cx, cy, r float64, li float64) Entity {
	return NewSimpleEntity(
		geometry.NewCircle(core.NewVec2(cx, cy), r),
		material.NewConstantLight(core.NewSpectrum(li, li, li)),
	)
}

func TestFlatAggregate_Intersect_NearestWins(t *testing.T) {
	near := newTestCircleEntity(0, 0, 1, 1)
	far := newTestCircleEntity(5, 0, 1, 2)
	agg := NewFlatAggregate(far, near) // deliberately out of distance order

	ray := core.NewRay(core.NewVec2(-10, 0), core.NewVec2(1, 0))
	interaction := &core.SurfaceInteraction{}
	rng := rand.New(rand.NewSource(1))

	hit := agg.Intersect(&ray, interaction, rng)

	assert.True(t, hit)
	assert.Equal(t, core.NewSpectrum(1, 1, 1), interaction.Li)
}

func TestFlatAggregate_Intersect_PermutationInvariant_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		entities := make([]Entity, n)
		for i := 0; i < n; i++ {
			cx := rapid.Float64Range(-20, 20).Draw(t, "cx")
			r := rapid.Float64Range(0.1, 3).Draw(t, "r")
			li := rapid.Float64Range(0, 1).Draw(t, "li")
			entities[i] = newTestCircleEntity(cx, 0, r, li)
		}
		perm := make([]Entity, n)
		copy(perm, entities)
		for i := n - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(t, "swap")
			perm[i], perm[j] = perm[j], perm[i]
		}

		rng := rand.New(rand.NewSource(1))

		rayA := core.NewRay(core.NewVec2(-100, 0), core.NewVec2(1, 0))
		interactionA := &core.SurfaceInteraction{}
		hitA := NewFlatAggregate(entities...).Intersect(&rayA, interactionA, rng)

		rayB := core.NewRay(core.NewVec2(-100, 0), core.NewVec2(1, 0))
		interactionB := &core.SurfaceInteraction{}
		hitB := NewFlatAggregate(perm...).Intersect(&rayB, interactionB, rng)

		assert.Equal(t, hitA, hitB)
		if hitA {
			assert.InDelta(t, rayA.TMax, rayB.TMax, 1e-9)
		}
	})
}

func TestFlatAggregate_BoundingBox_UnionOfChildren(t *testing.T) {
	a := newTestCircleEntity(-5, 0, 1, 1)
	b := newTestCircleEntity(5, 0, 2, 1)
	agg := NewFlatAggregate(a, b)

	box := agg.BoundingBox()

	assert.Equal(t, core.NewVec2(-6, -2), box.Min)
	assert.Equal(t, core.NewVec2(7, 2), box.Max)
}
