package movesim

import (
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/simulation"
)

// Simulate runs one tick of movement for the given state and returns the result. The state is updated in place.
// A nil state yields the zero result.
func (s *Simulator) Simulate(state *MovementState, input InputState) SimulationResult {
	if state == nil {
		return SimulationResult{}
	}
	defer func() { state.Ticks++ }()

	if !input.valid() {
		s.debugf("tick %d: rejected input (dir=%v, dt=%v)", state.Ticks, input.Direction, input.DeltaTime)
		res := s.resultFromState(state)
		res.Outcome = SimulationOutcomeRejected
		res.NeedsCorrection = true
		return res
	}

	s.applyInput(state, input)
	outcome := s.simulateCore(state, input)
	res := s.resultFromState(state)
	res.Outcome = outcome
	return res
}

func (s *Simulator) applyInput(state *MovementState, input InputState) {
	state.Client.LastPos = state.Client.Pos
	state.Client.Pos = input.ClientPos
	state.Client.LastVel = state.Client.Vel
	state.Client.Vel = input.ClientVel
}

func (s *Simulator) simulateCore(state *MovementState, input InputState) SimulationOutcome {
	if !state.Ready {
		s.debugf("tick %d: player is immobile", state.Ticks)
		state.SetVel(omath.Zero)
		state.SetMov(omath.Zero)
		state.GravityForce = omath.Zero
		return SimulationOutcomeImmobile
	}

	s.debugf("BEGIN movement sim for tick %d", state.Ticks)
	defer s.debugf("END movement sim for tick %d", state.Ticks)
	s.simulateMovement(state, input)
	return SimulationOutcomeNormal
}

func (s *Simulator) simulateMovement(state *MovementState, input InputState) {
	opts := s.Options
	dt := input.DeltaTime
	mods := simulation.Modifiers{Sprint: input.Sprint, Crouch: input.Crouch}
	wish := input.Direction.Mul(opts.MoveSpeed)
	up := s.up()

	vel := state.Vel
	var disp omath.Vec3

	if ground := s.groundAt(state.Pos); ground.Present() {
		walk := simulation.PlayerMove(wish, dt, mods, ground)
		vel = omath.Zero
		if dt > 0 {
			vel = walk.Mul(1 / dt)
		}
		state.GravityForce = omath.Zero
		s.debugf("ground move (walk=%v)", walk)

		if !input.Jump {
			s.finishMove(state, vel, walk, up, false)
			return
		}
		if opts.GravityMode == GravityModeInfluence {
			// The accumulator is a per-tick displacement, so the impulse is scaled the same way gravity is.
			state.GravityForce = up.Mul(opts.JumpSpeed * dt * game.GravityDownScale)
		} else {
			vel = vel.Add(up.Mul(opts.JumpSpeed))
		}
		s.debugf("jump force applied (vel=%v, gravityForce=%v)", vel, state.GravityForce)
	} else if opts.AirStrafe {
		wishDir := input.Direction.Normalize()
		wishSpeed := input.Direction.Len() * opts.MoveSpeed * mods.Multiplier()
		vel = simulation.AirAccelerate(vel, wishDir, wishSpeed, opts.AirAccelerate, opts.MaxAirWishSpeed, dt)
		s.debugf("air acceleration applied (wishSpeed=%v): %v", wishSpeed, vel)
	} else {
		disp = simulation.PlayerMove(wish, dt, mods, simulation.Airborne())
		s.debugf("air move: %v", disp)
	}

	switch opts.GravityMode {
	case GravityModeInfluence:
		state.GravityForce = simulation.GravityInfluence(state.GravityForce, opts.Gravity, dt)
		disp = disp.Add(state.GravityForce)
	default:
		vel = vel.Add(simulation.GravityForceAcceleration(opts.Gravity, dt))
	}
	s.debugf("gravity applied (vel=%v, gravityForce=%v)", vel, state.GravityForce)

	disp = disp.Add(vel.Mul(dt))
	s.finishMove(state, vel, disp, up, true)
}

// finishMove applies the displacement, resolves collisions with the ground and updates the ground state. An
// airborne player whose velocity or gravity accumulator points against gravity never lands, and one that does
// land is snapped onto the contact.
func (s *Simulator) finishMove(state *MovementState, vel, disp, up omath.Vec3, airborne bool) {
	newPos := state.Pos.Add(disp)
	if r, ok := s.Ground.(Resolver); ok {
		if resolved, hit := r.Resolve(newPos); hit {
			s.debugf("resolved ground collision (%v -> %v)", newPos, resolved)
			newPos = resolved
			vel = removeInto(vel, up)
			state.GravityForce = omath.Zero
		}
	}

	ground := s.groundAt(newPos)
	if airborne {
		if vel.Dot(up) > 0 || state.GravityForce.Dot(up) > 0 {
			ground = simulation.Airborne()
		}
		if contact, ok := ground.Contact(); ok {
			newPos = newPos.Sub(contact.Normal.Normalize().Mul(contact.Distance))
			vel = removeInto(vel, up)
			state.GravityForce = omath.Zero
			s.debugf("landed at %v", newPos)
		}
	}

	state.SetVel(vel)
	state.SetMov(newPos.Sub(state.Pos))
	state.SetPos(newPos)
	state.OnGround = ground.Present()
}

// removeInto strips the part of vel that points against up.
func removeInto(vel, up omath.Vec3) omath.Vec3 {
	if into := vel.Dot(up); into < 0 {
		return vel.Sub(up.Mul(into))
	}
	return vel
}

// groundAt returns the ground under pos, treating contacts further away than the snap distance as airborne.
func (s *Simulator) groundAt(pos omath.Vec3) simulation.Ground {
	if s.Ground == nil {
		return simulation.Airborne()
	}
	contact, ok := s.Ground.GroundContact(pos)
	if !ok || contact.Distance > s.Options.GroundSnapDistance {
		return simulation.Airborne()
	}
	return simulation.OnGround(contact)
}

func (s *Simulator) resultFromState(state *MovementState) SimulationResult {
	res := SimulationResult{
		Position:      state.Pos,
		Velocity:      state.Vel,
		Movement:      state.Mov,
		GravityForce:  state.GravityForce,
		OnGround:      state.OnGround,
		PositionDelta: state.Pos.Sub(state.Client.Pos),
		VelocityDelta: state.Vel.Sub(state.Client.Vel),
		Checksum:      state.Checksum(),
	}
	if t := s.Options.PositionCorrectionThreshold; t > 0 && res.PositionDelta.Len() > t {
		res.NeedsCorrection = true
	}
	if t := s.Options.VelocityCorrectionThreshold; t > 0 && res.VelocityDelta.Len() > t {
		res.NeedsCorrection = true
	}
	return res
}
