package simulation

import (
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/omath"
)

// GroundContact describes the surface under a player, as found by the caller's collision system.
type GroundContact struct {
	// Normal is the surface normal. It is expected, but not required, to be unit length.
	Normal omath.Vec3
	// Distance is the distance from the player origin to the contact point.
	Distance float32
}

// NewGroundContact returns a contact with the normal (nx, ny, nz) at the given distance.
func NewGroundContact(nx, ny, nz, distance float32) GroundContact {
	return GroundContact{Normal: omath.NewVec3(nx, ny, nz), Distance: distance}
}

// GroundContactFromNormal returns a contact with the given normal and distance.
func GroundContactFromNormal(normal omath.Vec3, distance float32) GroundContact {
	return GroundContact{Normal: normal, Distance: distance}
}

// Ground is an optional GroundContact. The zero value means the player is airborne, so a contact at distance
// zero is never confused with no contact at all.
type Ground struct {
	contact GroundContact
	present bool
}

// Airborne returns a Ground without a contact.
func Airborne() Ground {
	return Ground{}
}

// OnGround returns a Ground holding c.
func OnGround(c GroundContact) Ground {
	return Ground{contact: c, present: true}
}

// Contact returns the contact and whether there is one.
func (g Ground) Contact() (GroundContact, bool) {
	return g.contact, g.present
}

// Present reports whether the player is standing on something.
func (g Ground) Present() bool {
	return g.present
}

// Modifiers are the movement keys that scale a displacement.
type Modifiers struct {
	Sprint bool
	Crouch bool
}

// Multiplier returns the speed multiplier for the modifiers. Sprint is applied first and crouch second, both as
// plain multiplications, so holding both yields 1.5 * 0.67.
func (m Modifiers) Multiplier() float32 {
	mul := float32(1)
	if m.Sprint {
		mul *= game.SprintMultiplier
	}
	if m.Crouch {
		mul *= game.CrouchMultiplier
	}
	return mul
}

// PlayerMove returns the displacement to add to the player's position this tick. When the player is on the
// ground, the direction is projected onto the contact surface and then stretched back to its original length,
// so walking up a slope is as fast as walking on flat ground. When airborne the raw direction is used. In both
// cases the modifiers are applied and the result is scaled by dt.
func PlayerMove(direction omath.Vec3, dt float32, mods Modifiers, ground Ground) omath.Vec3 {
	return PlayerMoveScaled(direction, dt, mods.Multiplier(), ground)
}

// PlayerMoveScaled is PlayerMove with the speed multiplier supplied directly, for callers that have their own
// notion of movement speed (1 is normal speed, 1.5 is 50% faster).
func PlayerMoveScaled(direction omath.Vec3, dt, speedMultiplier float32, ground Ground) omath.Vec3 {
	move := direction
	if contact, ok := ground.Contact(); ok {
		move = ProjectOnGround(direction, contact)
	}
	return move.Mul(speedMultiplier).Mul(dt)
}

// ProjectOnGround projects direction onto the plane of the contact while keeping its original length. The
// contact normal is normalized first. A direction parallel to the normal has no component in the plane and
// comes out as the zero vector.
func ProjectOnGround(direction omath.Vec3, contact GroundContact) omath.Vec3 {
	length := direction.Len()
	return direction.ProjectOnPlane(contact.Normal.Normalize()).WithLength(length)
}
