package protocol

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/oomph-ac/strafe/omath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFrameRoundTrip(t *testing.T) {
	in := &InputFrame{
		Tick:      42,
		Direction: VecFrom(omath.NewVec3(0.6, 0, -0.8)),
		DeltaTime: 1.0 / 60,
		Sprint:    true,
		Jump:      true,
		ClientPos: Vec{1, 2, 3},
		ClientVel: Vec{-1, 0, 0.5},
		Checksum:  0xdeadbeefcafe,
	}
	data, err := Encode(in)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)
	out, ok := msg.(*InputFrame)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, in, out)
	assert.Equal(t, omath.NewVec3(0.6, 0, -0.8), out.Direction.Vec3())
}

func TestCorrectionRoundTrip(t *testing.T) {
	in := &Correction{Tick: 7, Position: Vec{0, 1, 0}, GravityForce: Vec{0, -0.1, 0}, OnGround: true, Checksum: 99}
	data, err := Encode(in)
	require.NoError(t, err)

	msg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeCorrection, msg.Type())
	assert.Equal(t, in, msg)
}

func TestDecodeUnknownType(t *testing.T) {
	data, err := cbor.Marshal(Envelope{Type: 200, Payload: cbor.RawMessage{0xf6}})
	require.NoError(t, err)
	_, err = Decode(data)
	assert.ErrorContains(t, err, "unknown message type 200")
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x00})
	assert.Error(t, err)
}
