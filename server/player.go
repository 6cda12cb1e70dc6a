package server

import (
	"github.com/google/uuid"
	"github.com/oomph-ac/strafe/assert"
	"github.com/oomph-ac/strafe/detection"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/protocol"
	"github.com/sasha-s/go-deadlock"
)

// Player is a player simulated by the server.
type Player struct {
	ID   uuid.UUID
	Name string

	// state is only touched by the worker ticking the player.
	state      *movesim.MovementState
	detections []detection.Detection

	inputMu   deadlock.Mutex
	inputs    []protocol.InputFrame
	maxInputs int
}

// State returns the authoritative movement state. It must not be read while the server is ticking.
func (p *Player) State() *movesim.MovementState {
	return p.state
}

// Detections returns the detections running for the player.
func (p *Player) Detections() []detection.Detection {
	return p.detections
}

// queue adds a frame to be simulated on the next tick.
func (p *Player) queue(frame protocol.InputFrame) bool {
	p.inputMu.Lock()
	defer p.inputMu.Unlock()
	if len(p.inputs) >= p.maxInputs {
		return false
	}
	p.inputs = append(p.inputs, frame)
	return true
}

func (p *Player) drain() []protocol.InputFrame {
	p.inputMu.Lock()
	defer p.inputMu.Unlock()
	frames := p.inputs
	p.inputs = nil
	return frames
}

// tickStats is what a player reports back after being ticked.
type tickStats struct {
	inputs     int
	rejected   int
	correction *protocol.Correction
}

// process simulates every queued frame and returns the correction to send, if the client ended up disagreeing
// with the server after its last frame.
func (p *Player) process(sim *movesim.Simulator) tickStats {
	assert.IsTrue(p.state != nil, game.ErrorInternalNilState)

	var stats tickStats
	for _, frame := range p.drain() {
		res := sim.Simulate(p.state, movesim.InputState{
			Direction: frame.Direction.Vec3(),
			DeltaTime: frame.DeltaTime,
			Sprint:    frame.Sprint,
			Crouch:    frame.Crouch,
			Jump:      frame.Jump,
			ClientPos: frame.ClientPos.Vec3(),
			ClientVel: frame.ClientVel.Vec3(),
		})
		stats.inputs++
		if res.Outcome == movesim.SimulationOutcomeRejected {
			stats.rejected++
		}
		for _, d := range p.detections {
			d.Handle(int64(frame.Tick), res)
		}

		if !res.NeedsCorrection && res.Checksum == frame.Checksum {
			stats.correction = nil
			continue
		}
		stats.correction = &protocol.Correction{
			Tick:         frame.Tick,
			Position:     protocol.VecFrom(res.Position),
			Velocity:     protocol.VecFrom(res.Velocity),
			GravityForce: protocol.VecFrom(res.GravityForce),
			OnGround:     res.OnGround,
			Checksum:     res.Checksum,
		}
	}
	return stats
}
