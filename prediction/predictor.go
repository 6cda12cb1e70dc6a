// Package prediction runs movement locally on the client ahead of the server and reconciles the local state
// when the server disagrees with it.
package prediction

import (
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/protocol"
	"github.com/oomph-ac/strafe/utils"
)

// DefaultPendingCapacity is the number of unacknowledged inputs kept by a Predictor, two seconds at 60 ticks per
// second.
const DefaultPendingCapacity = 120

// PendingInput is an input that was predicted locally but not yet acknowledged by the server.
type PendingInput struct {
	Tick     uint64
	Input    movesim.InputState
	Checksum uint64
}

// Predictor simulates a single player on the client. It is not safe for concurrent use.
type Predictor struct {
	sim     *movesim.Simulator
	state   *movesim.MovementState
	pending *utils.CircularQueue[PendingInput]
	tick    uint64

	replays uint64
}

// NewPredictor returns a predictor for a player standing at pos. The simulator must be configured the same way
// as the server's, otherwise every tick will be corrected.
func NewPredictor(sim *movesim.Simulator, pos omath.Vec3, capacity int) *Predictor {
	if capacity <= 0 {
		capacity = DefaultPendingCapacity
	}
	return &Predictor{
		sim:     sim,
		state:   movesim.NewMovementState(pos),
		pending: utils.NewCircularQueue[PendingInput](capacity),
	}
}

// State returns the predicted movement state.
func (p *Predictor) State() *movesim.MovementState {
	return p.state
}

// Tick returns the tick the next call to Predict will use.
func (p *Predictor) Tick() uint64 {
	return p.tick
}

// Pending returns the number of inputs waiting for acknowledgement.
func (p *Predictor) Pending() int {
	return p.pending.Len()
}

// Replays returns how many times a correction forced pending inputs to be replayed.
func (p *Predictor) Replays() uint64 {
	return p.replays
}

// Predict simulates input locally and returns the result together with the frame to send to the server. When
// more inputs are pending than the predictor can hold, the oldest one is forgotten.
func (p *Predictor) Predict(input movesim.InputState) (movesim.SimulationResult, protocol.InputFrame) {
	res := p.sim.Simulate(p.state, input)

	// The client trusts itself, so the state it reports is the one it just predicted.
	input.ClientPos, input.ClientVel = res.Position, res.Velocity
	p.state.Client.Pos, p.state.Client.Vel = res.Position, res.Velocity

	tick := p.tick
	p.tick++
	_ = p.pending.Append(PendingInput{Tick: tick, Input: input, Checksum: res.Checksum})

	return res, protocol.InputFrame{
		Tick:      tick,
		Direction: protocol.VecFrom(input.Direction),
		DeltaTime: input.DeltaTime,
		Sprint:    input.Sprint,
		Crouch:    input.Crouch,
		Jump:      input.Jump,
		ClientPos: protocol.VecFrom(res.Position),
		ClientVel: protocol.VecFrom(res.Velocity),
		Checksum:  res.Checksum,
	}
}

// Reconcile applies an authoritative correction. Inputs up to and including the corrected tick are dropped.
// When the correction agrees with what was predicted for that tick nothing else happens. Otherwise, including
// when the tick is no longer pending, the state is reset to the correction and every newer pending input is
// simulated again. Reconcile reports whether a replay
// took place.
func (p *Predictor) Reconcile(c protocol.Correction) bool {
	var (
		predicted PendingInput
		found     bool
	)
	for {
		head, ok := p.pending.Peek()
		if !ok || head.Tick > c.Tick {
			break
		}
		p.pending.Pop()
		if head.Tick == c.Tick {
			predicted, found = head, true
		}
	}
	if found && predicted.Checksum == c.Checksum {
		return false
	}

	p.state.SetPos(c.Position.Vec3())
	p.state.SetVel(c.Velocity.Vec3())
	p.state.GravityForce = c.GravityForce.Vec3()
	p.state.OnGround = c.OnGround

	for i := range p.pending.Len() {
		entry, _ := p.pending.Get(i)
		res := p.sim.Simulate(p.state, entry.Input)
		entry.Input.ClientPos, entry.Input.ClientVel = res.Position, res.Velocity
		entry.Checksum = res.Checksum
		_ = p.pending.Set(i, entry)
	}
	p.replays++
	return true
}
