package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yunhao-qian/light2d/pkg/core"
)

func TestHelloCircle_AggregateHitsAtOrigin(t *testing.T) {
	s := HelloCircle()
	agg := s.Aggregate()

	ray := core.NewRay(core.NewVec2(-5, 0), core.NewVec2(1, 0))
	interaction := &core.SurfaceInteraction{}
	rng := rand.New(rand.NewSource(1))

	assert.True(t, agg.Intersect(&ray, interaction, rng))
}

func TestRing_ProducesRequestedCount(t *testing.T) {
	s := Ring(6, 5, 0.5)
	assert.Equal(t, 6, len(s.Entities))
}

func TestDiffuseFloor_HasThreeEntities(t *testing.T) {
	s := DiffuseFloor()
	assert.Equal(t, 3, len(s.Entities))
	assert.True(t, s.Region.Valid())
}
