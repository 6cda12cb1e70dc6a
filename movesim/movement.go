package movesim

import "github.com/oomph-ac/strafe/omath"

// ClientState holds non-authoritative movement data sent by the client.
type ClientState struct {
	Pos, LastPos omath.Vec3
	Vel, LastVel omath.Vec3
}

// MovementState holds the movement state of a single player. It is owned by whoever ticks the player and must
// not be simulated from two goroutines at once.
type MovementState struct {
	Client ClientState

	Pos, LastPos omath.Vec3
	Vel, LastVel omath.Vec3
	Mov, LastMov omath.Vec3

	// GravityForce is the gravity accumulator used by GravityModeInfluence.
	GravityForce omath.Vec3

	OnGround bool
	Ready    bool

	Ticks uint64
}

// NewMovementState returns a ready state standing at pos.
func NewMovementState(pos omath.Vec3) *MovementState {
	return &MovementState{Pos: pos, LastPos: pos, Client: ClientState{Pos: pos, LastPos: pos}, Ready: true}
}

func (s *MovementState) SetPos(newPos omath.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

func (s *MovementState) SetVel(newVel omath.Vec3) {
	s.LastVel = s.Vel
	s.Vel = newVel
}

func (s *MovementState) SetMov(newMov omath.Vec3) {
	s.LastMov = s.Mov
	s.Mov = newMov
}

// Checksum returns the xxh3 checksum of the state's authoritative fields.
func (s *MovementState) Checksum() uint64 {
	return Checksum(s.Pos, s.Vel, s.GravityForce, s.OnGround)
}
