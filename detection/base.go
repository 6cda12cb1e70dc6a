package detection

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/utils"
	"github.com/sirupsen/logrus"
)

// Detection inspects the simulation result of every tick of a player.
type Detection interface {
	// ID returns the unique ID of the detection, e.g. "strafe:motion_a".
	ID() string
	// Base returns the buffer and violation bookkeeping of the detection.
	Base() *BaseDetection
	// Handle lets the detection look at the result of the given tick for suspicious behavior.
	Handle(tick int64, res movesim.SimulationResult)
}

// FlagHandler is called every time a detection flags a player. Returning false cancels the flag.
type FlagHandler func(d Detection, player string, extraData *orderedmap.OrderedMap[string, any]) bool

type BaseDetection struct {
	Type        string
	SubType     string
	Description string

	Violations    float32
	MaxViolations float32

	Buffer     float32
	FailBuffer float32
	MaxBuffer  float32

	Punishable bool

	// Player is the name logged next to flags.
	Player string
	Log    *logrus.Logger
	// OnFlag, if set, is called before a flag is counted.
	OnFlag FlagHandler

	// trustDuration is the amount of ticks needed w/o flags before the detection trusts the player.
	trustDuration int64
	// lastFlagged is the last tick the detection was flagged.
	lastFlagged int64
}

// ID returns the ID of the detection.
func (d *BaseDetection) ID() string {
	panic(oerror.New("detection.ID() not implemented"))
}

// Base ...
func (d *BaseDetection) Base() *BaseDetection {
	return d
}

// Exceeded reports whether a punishable detection reached its maximum violations.
func (d *BaseDetection) Exceeded() bool {
	return d.Punishable && d.Violations >= d.MaxViolations
}

// Fail is called by the detection owning d when the player shows abnormal behavior on the given tick. It
// reports whether the failure was counted as a violation.
func (d *BaseDetection) Fail(owner Detection, tick int64, extraData *orderedmap.OrderedMap[string, any]) bool {
	if extraData == nil {
		extraData = orderedmap.NewOrderedMap[string, any]()
	}
	extraData.Set("tick", tick)

	d.Buffer = math32.Min(d.Buffer+1, d.MaxBuffer)
	if d.Buffer < d.FailBuffer {
		return false
	}
	if d.OnFlag != nil && !d.OnFlag(owner, d.Player, extraData) {
		return false
	}

	if d.trustDuration > 0 {
		d.Violations += math32.Max(0, float32(d.trustDuration)-float32(tick-d.lastFlagged)) / float32(d.trustDuration)
	} else {
		d.Violations++
	}

	d.lastFlagged = tick
	if d.Violations >= 0.5 && d.Log != nil {
		d.Log.Warnf("%s flagged %s (%s) <x%v> %s", d.Player, d.Type, d.SubType, omath.Round32(d.Violations, 2), utils.OrderedMapToString(extraData))
	}
	if d.Exceeded() && d.Log != nil {
		d.Log.Warnf("%s exceeded the maximum violations for %s (%s)", d.Player, d.Type, d.SubType)
	}
	return true
}

// Debuff...
func (d *BaseDetection) Debuff(amount float32) {
	d.Buffer = math32.Max(d.Buffer-amount, 0)
}

// Handle does nothing and is meant to be overridden.
func (d *BaseDetection) Handle(int64, movesim.SimulationResult) {
}
