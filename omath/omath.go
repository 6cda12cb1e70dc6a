package omath

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// FromMgl32 converts a mgl32.Vec3 owned by a host engine into a Vec3.
func FromMgl32(vec mgl32.Vec3) Vec3 {
	return Vec3{vec[0], vec[1], vec[2]}
}

// ToMgl32 converts v into a mgl32.Vec3.
func (v Vec3) ToMgl32() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// FromMgl64 converts a 64-bit host vector. Each component is rounded to the nearest float32, so a server
// holding double precision state must convert before every call and store the result back.
func FromMgl64(vec mgl64.Vec3) Vec3 {
	return Vec3{float32(vec[0]), float32(vec[1]), float32(vec[2])}
}

// ToMgl64 converts v into a mgl64.Vec3. The conversion is exact.
func (v Vec3) ToMgl64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := float32(math.Pow10(precision))
	return math32.Round(val*pwr) / pwr
}

// RoundVec will round every component of a vector to a given precision. It is meant for display only.
func RoundVec(v Vec3, p int) Vec3 {
	return Vec3{Round32(v.X, p), Round32(v.Y, p), Round32(v.Z, p)}
}
