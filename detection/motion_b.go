package detection

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
)

const DetectionIDMotionB = "strafe:motion_b"

// MotionB checks if the velocity reported by the client deviates from the simulated one.
type MotionB struct {
	BaseDetection

	Threshold float32
}

func NewMotionB(threshold float32) *MotionB {
	d := &MotionB{Threshold: threshold}
	d.Type = "Motion"
	d.SubType = "B"

	d.Description = "Checks if the velocity reported by a player deviates from the simulated velocity."
	d.Punishable = false

	d.MaxViolations = 30
	d.FailBuffer = 5
	d.MaxBuffer = 10
	d.trustDuration = -1

	return d
}

func (d *MotionB) ID() string {
	return DetectionIDMotionB
}

func (d *MotionB) Handle(tick int64, res movesim.SimulationResult) {
	if res.Outcome != movesim.SimulationOutcomeNormal {
		return
	}

	deviation := res.VelocityDelta.Len()
	if deviation <= d.Threshold {
		d.Debuff(0.1)
		return
	}

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("deviation", omath.Round32(deviation, 4))
	data.Set("velocity", omath.RoundVec(res.Velocity, 3))
	d.Fail(d, tick, data)
}
