package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunhao-qian/light2d/pkg/core"
	"github.com/yunhao-qian/light2d/pkg/entity"
	"github.com/yunhao-qian/light2d/pkg/geometry"
	"github.com/yunhao-qian/light2d/pkg/integrator"
	"github.com/yunhao-qian/light2d/pkg/material"
)

func newLitScene(t *testing.T) integrator.Integrator {
	t.Helper()
	li := core.NewSpectrum(1, 1, 1)
	e := entity.NewSimpleEntity(geometry.NewCircle(core.NewVec2(0, 0), 50), material.NewConstantLight(li))
	pt, err := integrator.NewPathTracer(e, 2, 3, 0.05)
	require.NoError(t, err)
	return pt
}

func TestRender_ValidatesParameters(t *testing.T) {
	integ := newLitScene(t)
	region := core.NewRegion(core.NewVec2(-1, -1), core.NewVec2(1, 1))

	_, err := Render(integ, core.NewRegion(core.NewVec2(1, 1), core.NewVec2(0, 0)), 4, 4, 1, 1)
	assert.Error(t, err)

	_, err = Render(integ, region, 0, 4, 1, 1)
	assert.Error(t, err)

	_, err = Render(integ, region, 4, 4, 0, 1)
	assert.Error(t, err)

	_, err = Render(integ, region, 4, 4, 1, 1)
	assert.NoError(t, err)
}

func TestRender_SameSeedIsDeterministic(t *testing.T) {
	region := core.NewRegion(core.NewVec2(-1, -1), core.NewVec2(1, 1))

	filmA, err := Render(newLitScene(t), region, 8, 8, 1, 42)
	require.NoError(t, err)
	filmB, err := Render(newLitScene(t), region, 8, 8, 1, 42)
	require.NoError(t, err)

	assert.Equal(t, filmA.Pixels, filmB.Pixels)
}

func TestRender_ProducesFullyPopulatedFilm(t *testing.T) {
	region := core.NewRegion(core.NewVec2(-1, -1), core.NewVec2(1, 1))

	film, err := Render(newLitScene(t), region, 6, 6, 3, 7)
	require.NoError(t, err)

	assert.Equal(t, 36, len(film.Pixels))
	for _, p := range film.Pixels {
		assert.True(t, p.IsFinite())
	}
}
