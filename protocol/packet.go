package protocol

import (
	"github.com/oomph-ac/strafe/omath"
)

// MessageType identifies the payload of an Envelope.
type MessageType uint8

const (
	MessageTypeInput MessageType = iota + 1
	MessageTypeCorrection
)

// Message is implemented by every payload that can be sent inside an Envelope.
type Message interface {
	Type() MessageType
}

// Vec is the wire form of a vector, encoded as a three element array.
type Vec [3]float32

// VecFrom converts a vector to its wire form.
func VecFrom(v omath.Vec3) Vec {
	return Vec{v.X, v.Y, v.Z}
}

// Vec3 converts the wire form back into a vector.
func (v Vec) Vec3() omath.Vec3 {
	return omath.NewVec3(v[0], v[1], v[2])
}

// InputFrame is sent by a client once per predicted tick. It carries the input that drove the prediction, the
// position and velocity the client ended up with, and a checksum of its resulting movement state. The server
// re-simulates the input and only answers with a Correction when it disagrees.
type InputFrame struct {
	_ struct{} `cbor:",toarray"`

	Tick      uint64
	Direction Vec
	DeltaTime float32
	Sprint    bool
	Crouch    bool
	Jump      bool

	ClientPos Vec
	ClientVel Vec
	Checksum  uint64
}

func (*InputFrame) Type() MessageType { return MessageTypeInput }

// Correction is the authoritative movement state of a player after the given tick.
type Correction struct {
	_ struct{} `cbor:",toarray"`

	Tick         uint64
	Position     Vec
	Velocity     Vec
	GravityForce Vec
	OnGround     bool
	Checksum     uint64
}

func (*Correction) Type() MessageType { return MessageTypeCorrection }
