package detection

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviated(pos float32) movesim.SimulationResult {
	return movesim.SimulationResult{PositionDelta: omath.NewVec3(pos, 0, 0)}
}

func TestMotionABuffersBeforeFlagging(t *testing.T) {
	log, hook := test.NewNullLogger()
	d := NewMotionA(0.1)
	d.Player, d.Log = "steve", log

	d.Handle(1, deviated(1))
	d.Handle(2, deviated(1))
	assert.Zero(t, d.Violations)
	assert.Empty(t, hook.AllEntries())

	d.Handle(3, deviated(1))
	assert.Greater(t, d.Violations, float32(0))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "steve flagged Motion (A)")
	assert.Contains(t, hook.LastEntry().Message, "deviation=1")
}

func TestMotionAIgnoresSmallDeviation(t *testing.T) {
	d := NewMotionA(0.1)
	d.Buffer = 2
	for tick := range int64(20) {
		d.Handle(tick, deviated(0.05))
	}
	assert.Zero(t, d.Violations)
	assert.InDelta(t, 1, d.Buffer, 1e-4)
}

func TestMotionASkipsRejectedTicks(t *testing.T) {
	d := NewMotionA(0.1)
	res := deviated(5)
	res.Outcome = movesim.SimulationOutcomeRejected
	for tick := range int64(10) {
		d.Handle(tick, res)
	}
	assert.Zero(t, d.Buffer)
}

func TestTrustDurationScalesViolations(t *testing.T) {
	d := NewMotionA(0)
	d.Buffer = d.FailBuffer

	d.Fail(d, 5000, nil)
	first := d.Violations
	assert.Zero(t, first, "first flag long after the last one should not count")

	d.Fail(d, 5001, nil)
	assert.InDelta(t, 1-1/float32(d.trustDuration), d.Violations-first, 1e-4)
}

func TestExceeded(t *testing.T) {
	d := NewMotionB(0.1)
	d.MaxViolations = 1
	d.Buffer = d.FailBuffer
	d.Fail(d, 1, nil)
	assert.Equal(t, float32(1), d.Violations)
	assert.False(t, d.Exceeded(), "MotionB is not punishable")

	a := NewMotionA(0.1)
	a.Violations = a.MaxViolations
	assert.True(t, a.Exceeded())
}

func TestFlagHandlerCancels(t *testing.T) {
	var seen []string
	d := NewMotionB(0.1)
	d.Player = "alex"
	d.OnFlag = func(det Detection, player string, extra *orderedmap.OrderedMap[string, any]) bool {
		seen = append(seen, det.ID()+" "+player)
		_, ok := extra.Get("tick")
		assert.True(t, ok)
		return false
	}
	d.Buffer = d.FailBuffer
	assert.False(t, d.Fail(d, 1, nil))
	assert.Zero(t, d.Violations)
	assert.Equal(t, []string{DetectionIDMotionB + " alex"}, seen)
}

func TestRegister(t *testing.T) {
	list := Register("p", nil, Config{Enabled: true, MaxViolations: 7, Threshold: 0.2}, Config{}, nil)
	require.Len(t, list, 1)
	assert.Equal(t, DetectionIDMotionA, list[0].ID())
	assert.Equal(t, float32(7), list[0].Base().MaxViolations)
	assert.Equal(t, "p", list[0].Base().Player)

	list = Register("p", nil, Config{Enabled: true}, Config{Enabled: true}, nil)
	require.Len(t, list, 2)
	assert.Equal(t, DetectionIDMotionB, list[1].ID())
}

func TestBaseIDPanics(t *testing.T) {
	assert.Panics(t, func() { (&BaseDetection{}).ID() })
}
