package movesim

import (
	"encoding/binary"
	"math"

	"github.com/oomph-ac/strafe/internal"
	"github.com/oomph-ac/strafe/omath"
	"github.com/zeebo/xxh3"
)

// Checksum hashes the exact bit patterns of the given movement values. Two simulations agree on a tick if and
// only if their checksums match, which lets a client prove it predicted the same state with eight bytes.
func Checksum(pos, vel, gravityForce omath.Vec3, onGround bool) uint64 {
	var buf [37]byte
	for i, v := range [...]omath.Vec3{pos, vel, gravityForce} {
		binary.LittleEndian.PutUint32(buf[i*12:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[i*12+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(buf[i*12+8:], math.Float32bits(v.Z))
	}
	if onGround {
		buf[36] = 1
	}

	h := internal.HasherPool.Get().(*xxh3.Hasher)
	defer internal.HasherPool.Put(h)
	h.Reset()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}
