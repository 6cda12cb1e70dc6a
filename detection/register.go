package detection

import "github.com/sirupsen/logrus"

// Config holds the per detection settings used by Register.
type Config struct {
	Enabled       bool
	MaxViolations float32
	Threshold     float32
}

// Register returns the enabled movement detections for the named player.
func Register(player string, log *logrus.Logger, motionA, motionB Config, onFlag FlagHandler) []Detection {
	var list []Detection
	if motionA.Enabled {
		d := NewMotionA(motionA.Threshold)
		apply(&d.BaseDetection, player, log, motionA, onFlag)
		list = append(list, d)
	}
	if motionB.Enabled {
		d := NewMotionB(motionB.Threshold)
		apply(&d.BaseDetection, player, log, motionB, onFlag)
		list = append(list, d)
	}
	return list
}

func apply(d *BaseDetection, player string, log *logrus.Logger, cfg Config, onFlag FlagHandler) {
	d.Player = player
	d.Log = log
	d.OnFlag = onFlag
	if cfg.MaxViolations > 0 {
		d.MaxViolations = cfg.MaxViolations
	}
}
