package omath

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a, b := NewVec3(1, 2, 3), NewVec3(4, 5, 6)

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Mul(2))
	assert.Equal(t, Vec3{-1, -2, -3}, a.Neg())
	assert.Equal(t, float32(32), a.Dot(b))
	assert.InDelta(t, 5, NewVec3(3, 4, 0).Len(), 1e-6)
	assert.Equal(t, float32(25), NewVec3(3, 4, 0).LenSqr())
}

func TestVec3Setters(t *testing.T) {
	var v Vec3
	v.SetX(1)
	v.SetY(2)
	v.SetZ(3)
	x, y, z := v.Components()
	assert.Equal(t, []float32{1, 2, 3}, []float32{x, y, z})
	assert.Equal(t, v, FromComponents(1, 2, 3))
}

func TestNormalizeUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := NewVec3(rng.Float32()*200-100, rng.Float32()*200-100, rng.Float32()*200-100)
		if v.Len() <= NormalizeEpsilon {
			continue
		}
		require.InDelta(t, 1, v.Normalize().Len(), 1e-5, "vector %v", v)
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Zero.Normalize()
	assert.True(t, n.IsFinite())
	assert.True(t, n.IsZero())

	tiny := NewVec3(1e-9, 0, 0).Normalize()
	assert.True(t, tiny.IsZero())
}

func TestProjectOnPlane(t *testing.T) {
	projected := NewVec3(1, 1, 0).ProjectOnPlane(NewVec3(0, 1, 0))
	assert.True(t, projected.ApproxEqual(NewVec3(1, 0, 0), 1e-6), "got %v", projected)

	// A vector already in the plane is unchanged.
	flat := NewVec3(0.3, 0, -0.7)
	assert.Equal(t, flat, flat.ProjectOnPlane(NewVec3(0, 1, 0)))

	// The result is orthogonal to the normal.
	n := NewVec3(0, 1, 1).Normalize()
	assert.InDelta(t, 0, NewVec3(2, -1, 5).ProjectOnPlane(n).Dot(n), 1e-5)
}

func TestWithLength(t *testing.T) {
	v := NewVec3(3, 4, 0).WithLength(10)
	assert.InDelta(t, 6, v.X, 1e-5)
	assert.InDelta(t, 8, v.Y, 1e-5)
	assert.InDelta(t, 10, v.Len(), 1e-5)

	assert.True(t, Zero.WithLength(42).IsZero())

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		v := NewVec3(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)
		require.True(t, v.WithLength(v.Len()).ApproxEqual(v, 1e-4), "round trip of %v", v)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, NewVec3(1, 2, 3).IsFinite())
	assert.False(t, NewVec3(float32(mgl32.NaN), 0, 0).IsFinite())
	assert.False(t, NewVec3(0, mgl32.InfPos, 0).IsFinite())
}

func TestHostConversions(t *testing.T) {
	v := NewVec3(1.5, -2.25, 3)
	assert.Equal(t, mgl32.Vec3{1.5, -2.25, 3}, v.ToMgl32())
	assert.Equal(t, v, FromMgl32(v.ToMgl32()))
	assert.Equal(t, mgl64.Vec3{1.5, -2.25, 3}, v.ToMgl64())
	assert.Equal(t, v, FromMgl64(v.ToMgl64()))
}

func TestRound(t *testing.T) {
	assert.Equal(t, float32(1.23), Round32(1.234, 2))
	assert.Equal(t, Vec3{1.2, 0, -3.5}, RoundVec(NewVec3(1.21, 0.04, -3.49), 1))
}
