package simulation

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/strafe/omath"
)

// AirAccelerate returns vel after one tick of air acceleration towards wishDir. wishDir must already be unit
// length; it is not normalized here.
//
// The wish speed is clamped to maxAirWishSpeed and only the part of it not yet covered by the velocity's
// projection onto wishDir is added, bounded by airAccelerate*wishSpeed*dt. Since only the projection is capped,
// turning the wish direction while airborne can keep adding speed, which is what makes air strafing work.
func AirAccelerate(vel, wishDir omath.Vec3, wishSpeed, airAccelerate, maxAirWishSpeed, dt float32) omath.Vec3 {
	return vel.Add(AirAcceleration(vel, wishDir, wishSpeed, airAccelerate, maxAirWishSpeed, dt))
}

// AirAcceleration returns the velocity increment AirAccelerate would add to vel, without applying it. The zero
// vector is returned when the player already moves at or beyond the wished speed along wishDir.
func AirAcceleration(vel, wishDir omath.Vec3, wishSpeed, airAccelerate, maxAirWishSpeed, dt float32) omath.Vec3 {
	wishSpeed = math32.Min(wishSpeed, maxAirWishSpeed)
	currentSpeed := vel.Dot(wishDir)
	addSpeed := wishSpeed - currentSpeed
	if addSpeed <= 0 {
		return omath.Vec3{}
	}
	accelSpeed := math32.Min(addSpeed, airAccelerate*wishSpeed*dt)
	return wishDir.Mul(accelSpeed)
}

// ApplyAirAcceleration updates *vel in place with AirAccelerate.
func ApplyAirAcceleration(vel *omath.Vec3, wishDir omath.Vec3, wishSpeed, airAccelerate, maxAirWishSpeed, dt float32) {
	*vel = AirAccelerate(*vel, wishDir, wishSpeed, airAccelerate, maxAirWishSpeed, dt)
}
