package omath

import (
	"github.com/chewxy/math32"
)

// NormalizeEpsilon is the magnitude at or below which a vector is treated as having no direction.
const NormalizeEpsilon = float32(1e-6)

// Vec3 is a three component single precision vector. All methods take and return values, so a Vec3 is never
// modified behind the caller's back. The Set methods are the only mutators.
//
// Every product is explicitly rounded to float32 before it takes part in a sum. The Go compiler is otherwise
// allowed to fuse x*y+z into a single instruction on arm64, ppc64le, s390x and riscv64, which would make a
// native server and a wasm client disagree in the last bit.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 returns a vector with the given components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromComponents is an alias of NewVec3 for callers converting from their own vector type.
func FromComponents(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Components returns the three components of the vector.
func (v Vec3) Components() (x, y, z float32) {
	return v.X, v.Y, v.Z
}

func (v *Vec3) SetX(x float32) { v.X = x }
func (v *Vec3) SetY(y float32) { v.Y = y }
func (v *Vec3) SetZ(z float32) { v.Z = z }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by k.
func (v Vec3) Mul(k float32) Vec3 {
	return Vec3{float32(v.X * k), float32(v.Y * k), float32(v.Z * k)}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return float32(v.X*o.X) + float32(v.Y*o.Y) + float32(v.Z*o.Z)
}

// LenSqr returns the squared magnitude of v.
func (v Vec3) LenSqr() float32 {
	return v.Dot(v)
}

// Len returns the magnitude of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.LenSqr())
}

// Normalize returns v divided by its magnitude. A vector with a magnitude at or below NormalizeEpsilon has no
// direction, and the zero vector is returned for it instead of NaN or Inf.
func (v Vec3) Normalize() Vec3 {
	mag := v.Len()
	if mag <= NormalizeEpsilon {
		return Vec3{}
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}

// ProjectOnPlane removes the component of v parallel to normal, leaving the part of v lying in the plane. The
// normal must be unit length for the result to be geometrically correct.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Mul(v.Dot(normal)))
}

// WithLength returns v rescaled to the given length. The zero vector stays zero whatever the length.
func (v Vec3) WithLength(length float32) Vec3 {
	return v.Normalize().Mul(length)
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// ApproxEqual reports whether every component of v is within eps of the matching component of o.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps && math32.Abs(v.Z-o.Z) <= eps
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Zero is the zero vector.
var Zero = Vec3{}
