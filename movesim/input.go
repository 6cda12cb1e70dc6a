package movesim

import "github.com/oomph-ac/strafe/omath"

// InputState represents a single tick's client input and reported state.
type InputState struct {
	// Direction is the world space wish direction. Its length is the analog strength of the input, so a
	// keyboard produces unit vectors and a half tilted stick produces a vector of length 0.5.
	Direction omath.Vec3
	DeltaTime float32

	Sprint bool
	Crouch bool
	Jump   bool

	ClientPos omath.Vec3
	ClientVel omath.Vec3
}

// valid reports whether the input can be simulated. The kinematics formulas accept anything, but a server
// receiving input from the network refuses NaN, Inf and negative time steps before they reach the state.
func (i InputState) valid() bool {
	return i.Direction.IsFinite() && omath.IsFinite(i.DeltaTime) && i.DeltaTime >= 0
}
