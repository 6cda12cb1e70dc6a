package movesim

import "github.com/oomph-ac/strafe/omath"

// SimulationOutcome describes which path the simulator took for the current tick.
type SimulationOutcome uint8

const (
	SimulationOutcomeNormal SimulationOutcome = iota
	SimulationOutcomeImmobile
	SimulationOutcomeRejected
)

func (o SimulationOutcome) String() string {
	switch o {
	case SimulationOutcomeNormal:
		return "normal"
	case SimulationOutcomeImmobile:
		return "immobile"
	case SimulationOutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SimulationResult captures the outcome of a single simulation tick.
type SimulationResult struct {
	Position     omath.Vec3
	Velocity     omath.Vec3
	Movement     omath.Vec3
	GravityForce omath.Vec3

	OnGround bool

	PositionDelta   omath.Vec3
	VelocityDelta   omath.Vec3
	NeedsCorrection bool

	Checksum uint64
	Outcome  SimulationOutcome
}
