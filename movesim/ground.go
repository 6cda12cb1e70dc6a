package movesim

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/simulation"
)

// GroundProvider bridges the caller's collision system. It returns the contact under a player standing at pos,
// and false when there is nothing below.
type GroundProvider interface {
	GroundContact(pos omath.Vec3) (simulation.GroundContact, bool)
}

// Resolver is implemented by ground providers that can push a position that ended up inside the ground back
// onto its surface. It reports whether the position was moved.
type Resolver interface {
	Resolve(pos omath.Vec3) (omath.Vec3, bool)
}

// PlaneGround is an infinite plane through the points p where Normal·p == Offset. The normal does not need to be
// unit length.
type PlaneGround struct {
	Normal omath.Vec3
	Offset float32
}

// FlatGround returns a horizontal plane at the given height.
func FlatGround(height float32) PlaneGround {
	return PlaneGround{Normal: omath.NewVec3(0, 1, 0), Offset: height}
}

func (g PlaneGround) height(pos omath.Vec3) (omath.Vec3, float32) {
	n := g.Normal.Normalize()
	return n, pos.Dot(n) - g.Offset/g.Normal.Len()
}

// GroundContact ...
func (g PlaneGround) GroundContact(pos omath.Vec3) (simulation.GroundContact, bool) {
	n, h := g.height(pos)
	if n.IsZero() {
		return simulation.GroundContact{}, false
	}
	return simulation.GroundContactFromNormal(n, max(h, 0)), true
}

// Resolve ...
func (g PlaneGround) Resolve(pos omath.Vec3) (omath.Vec3, bool) {
	n, h := g.height(pos)
	if n.IsZero() || h >= 0 {
		return pos, false
	}
	return pos.Sub(n.Mul(h)), true
}

// BoxGround is a set of axis aligned platforms. Only their top faces act as ground, and positions are only ever
// pushed upwards out of a box.
type BoxGround struct {
	Boxes []cube.BBox
}

// under returns the top of the highest box below or around pos.
func (g BoxGround) under(pos omath.Vec3) (top float32, inside, ok bool) {
	for _, bb := range g.Boxes {
		min, max := bb.Min(), bb.Max()
		if pos.X < min.X() || pos.X > max.X() || pos.Z < min.Z() || pos.Z > max.Z() {
			continue
		}
		if pos.Y < min.Y() {
			continue
		}
		if !ok || max.Y() > top {
			top, ok = max.Y(), true
			inside = pos.Y < max.Y()
		}
	}
	return top, inside, ok
}

// GroundContact ...
func (g BoxGround) GroundContact(pos omath.Vec3) (simulation.GroundContact, bool) {
	top, _, ok := g.under(pos)
	if !ok {
		return simulation.GroundContact{}, false
	}
	return simulation.NewGroundContact(0, 1, 0, max(pos.Y-top, 0)), true
}

// Resolve ...
func (g BoxGround) Resolve(pos omath.Vec3) (omath.Vec3, bool) {
	top, inside, ok := g.under(pos)
	if !ok || !inside {
		return pos, false
	}
	pos.Y = top
	return pos, true
}
