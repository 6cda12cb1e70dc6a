package detection

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
)

const DetectionIDMotionA = "strafe:motion_a"

// MotionA checks if the position reported by the client deviates from the simulated one.
type MotionA struct {
	BaseDetection

	// Threshold is the largest position deviation that is tolerated.
	Threshold float32
}

func NewMotionA(threshold float32) *MotionA {
	d := &MotionA{Threshold: threshold}
	d.Type = "Motion"
	d.SubType = "A"

	d.Description = "Checks if the position reported by a player deviates from the simulated position."
	d.Punishable = true

	d.MaxViolations = 20
	d.FailBuffer = 3
	d.MaxBuffer = 6
	d.trustDuration = game.TicksPerSecond * 30

	return d
}

func (d *MotionA) ID() string {
	return DetectionIDMotionA
}

func (d *MotionA) Handle(tick int64, res movesim.SimulationResult) {
	if res.Outcome != movesim.SimulationOutcomeNormal {
		return
	}

	deviation := res.PositionDelta.Len()
	if deviation <= d.Threshold {
		d.Debuff(0.05)
		return
	}

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("deviation", omath.Round32(deviation, 4))
	data.Set("onGround", res.OnGround)
	d.Fail(d, tick, data)
}
