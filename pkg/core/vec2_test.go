package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Add(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -1)
	assert.Equal(t, NewVec2(4, 1), a.Add(b))
}

func TestVec2_Dot(t *testing.T) {
	a := NewVec2(1, 0)
	b := NewVec2(0, 1)
	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 1.0, a.Dot(a))
}

func TestVec2_Normalize(t *testing.T) {
	v := NewVec2(3, 4)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestVec2_Normalize_Zero(t *testing.T) {
	assert.Equal(t, NewVec2(0, 0), NewVec2(0, 0).Normalize())
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0)
	assert.InDelta(t, 1.0, v.X, 1e-12)
	assert.InDelta(t, 0.0, v.Y, 1e-12)

	v = FromAngle(math.Pi / 2)
	assert.InDelta(t, 0.0, v.X, 1e-9)
	assert.InDelta(t, 1.0, v.Y, 1e-9)
}
