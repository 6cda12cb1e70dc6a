package prediction

import (
	"testing"

	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forward() movesim.InputState {
	return movesim.InputState{Direction: omath.NewVec3(1, 0, 0), DeltaTime: game.DefaultDeltaTime}
}

func newPredictor(capacity int) *Predictor {
	return NewPredictor(movesim.New(movesim.FlatGround(0), movesim.DefaultOptions()), omath.Vec3{}, capacity)
}

func TestPredictBuildsFrames(t *testing.T) {
	p := newPredictor(0)
	for i := range 3 {
		res, frame := p.Predict(forward())
		assert.Equal(t, uint64(i), frame.Tick)
		assert.Equal(t, res.Checksum, frame.Checksum)
		assert.Equal(t, protocol.VecFrom(res.Position), frame.ClientPos)
		assert.Equal(t, protocol.VecFrom(omath.NewVec3(1, 0, 0)), frame.Direction)
	}
	assert.Equal(t, 3, p.Pending())
	assert.Equal(t, uint64(3), p.Tick())
	assert.InDelta(t, 3*game.DefaultDeltaTime, p.State().Pos.X, 1e-5)
}

func TestPendingCapacity(t *testing.T) {
	p := newPredictor(4)
	for range 10 {
		p.Predict(forward())
	}
	assert.Equal(t, 4, p.Pending())
}

func TestReconcileMatchingCorrection(t *testing.T) {
	p := newPredictor(0)
	_, first := p.Predict(forward())
	p.Predict(forward())
	before := p.State().Pos

	replayed := p.Reconcile(protocol.Correction{Tick: first.Tick, Checksum: first.Checksum})
	assert.False(t, replayed)
	assert.Equal(t, 1, p.Pending())
	assert.Equal(t, before, p.State().Pos)
	assert.Zero(t, p.Replays())
}

func TestReconcileReplaysPendingInputs(t *testing.T) {
	p := newPredictor(0)
	for range 5 {
		p.Predict(forward())
	}

	corrected := omath.NewVec3(10, 0, 0)
	replayed := p.Reconcile(protocol.Correction{
		Tick:     1,
		Position: protocol.VecFrom(corrected),
		OnGround: true,
	})
	require.True(t, replayed)
	assert.Equal(t, 3, p.Pending())
	assert.Equal(t, uint64(1), p.Replays())

	sim := movesim.New(movesim.FlatGround(0), movesim.DefaultOptions())
	ref := movesim.NewMovementState(corrected)
	ref.OnGround = true
	var last movesim.SimulationResult
	for range 3 {
		last = sim.Simulate(ref, forward())
	}
	assert.Equal(t, ref.Pos, p.State().Pos)
	assert.Equal(t, ref.Checksum(), p.State().Checksum())
	assert.InDelta(t, 10+3*game.DefaultDeltaTime, p.State().Pos.X, 1e-4)

	// Replayed entries carry the new checksums, so a later matching correction is accepted.
	assert.False(t, p.Reconcile(protocol.Correction{Tick: 4, Checksum: last.Checksum}))
	assert.Zero(t, p.Pending())
}

func TestReconcileForgottenTick(t *testing.T) {
	p := newPredictor(2)
	for range 5 {
		p.Predict(forward())
	}
	// Tick 0 was overwritten, so the correction cannot be checked and is applied.
	assert.True(t, p.Reconcile(protocol.Correction{Tick: 0, Position: protocol.Vec{0, 0, 0}, OnGround: true}))
	assert.Equal(t, 2, p.Pending())
	assert.InDelta(t, 2*game.DefaultDeltaTime, p.State().Pos.X, 1e-5)
}
