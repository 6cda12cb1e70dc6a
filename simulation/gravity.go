package simulation

import (
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/omath"
)

// GravityForce returns the accumulator with gravity*dt added to it. Gravity may point in any direction.
func GravityForce(accumulator, gravity omath.Vec3, dt float32) omath.Vec3 {
	return accumulator.Add(GravityForceAcceleration(gravity, dt))
}

// GravityForceAcceleration returns gravity*dt, the increment to add to a velocity this tick.
func GravityForceAcceleration(gravity omath.Vec3, dt float32) omath.Vec3 {
	return gravity.Mul(dt)
}

// AccumulateGravity adds gravity*dt to *accumulator in place and returns the new value.
func AccumulateGravity(accumulator *omath.Vec3, gravity omath.Vec3, dt float32) omath.Vec3 {
	*accumulator = GravityForce(*accumulator, gravity, dt)
	return *accumulator
}

// GravityInfluence returns the accumulator with gravity scaled by dt squared and game.GravityDownScale added to
// it. Unlike GravityForce the accumulator is meant to be added to the position directly each tick.
func GravityInfluence(accumulator, gravity omath.Vec3, dt float32) omath.Vec3 {
	return accumulator.Add(GravityInfluenceAcceleration(gravity, dt))
}

// GravityInfluenceAcceleration returns the increment GravityInfluence adds.
func GravityInfluenceAcceleration(gravity omath.Vec3, dt float32) omath.Vec3 {
	scale := dt * dt * game.GravityDownScale
	return gravity.Mul(scale)
}
