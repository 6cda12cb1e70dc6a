package movesim

import (
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/omath"
)

// GravityMode selects the gravity formula used while airborne.
type GravityMode uint8

const (
	// GravityModeVelocity adds gravity*dt to the velocity each tick.
	GravityModeVelocity GravityMode = iota
	// GravityModeInfluence accumulates gravity*dt*dt*game.GravityDownScale in MovementState.GravityForce and adds
	// the accumulator to the displacement each tick. A jump seeds the accumulator with
	// up*JumpSpeed*dt*game.GravityDownScale, so a jump lasts as long as in GravityModeVelocity while its height is
	// scaled by game.GravityDownScale.
	GravityModeInfluence
)

// SimulationOptions define simulator tuning and correction thresholds.
type SimulationOptions struct {
	MoveSpeed       float32
	AirAccelerate   float32
	MaxAirWishSpeed float32
	JumpSpeed       float32

	Gravity     omath.Vec3
	GravityMode GravityMode

	// AirStrafe enables Source style air acceleration while airborne. Without it the wish direction moves the
	// player directly, the same way it does on the ground.
	AirStrafe bool

	// GroundSnapDistance is the largest contact distance that still counts as standing on the ground.
	GroundSnapDistance float32

	PositionCorrectionThreshold float32
	VelocityCorrectionThreshold float32

	// Debugf receives internal simulation trace logs for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// DefaultOptions returns options with the default tuning, air strafing enabled and corrections disabled.
func DefaultOptions() SimulationOptions {
	return SimulationOptions{
		MoveSpeed:          game.DefaultMoveSpeed,
		AirAccelerate:      game.DefaultAirAccelerate,
		MaxAirWishSpeed:    game.DefaultMaxAirWishSpeed,
		JumpSpeed:          game.DefaultJumpSpeed,
		Gravity:            omath.NewVec3(0, game.DefaultGravityY, 0),
		AirStrafe:          true,
		GroundSnapDistance: game.GroundSnapDistance,
	}
}

// Simulator orchestrates movement simulation for one tick of one player. A Simulator holds no per-player state
// and may be shared between goroutines as long as its Ground provider is safe for concurrent reads.
type Simulator struct {
	Ground  GroundProvider
	Options SimulationOptions
}

// New returns a simulator using the given ground provider and options.
func New(ground GroundProvider, opts SimulationOptions) *Simulator {
	return &Simulator{Ground: ground, Options: opts}
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}

// up returns the direction opposite to gravity, or +Y when there is no gravity.
func (s *Simulator) up() omath.Vec3 {
	up := s.Options.Gravity.Normalize().Neg()
	if up.IsZero() {
		return omath.NewVec3(0, 1, 0)
	}
	return up
}
