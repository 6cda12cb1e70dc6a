package main

import (
	"context"
	"time"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/prediction"
	"github.com/oomph-ac/strafe/protocol"
	"github.com/oomph-ac/strafe/server"
	"github.com/oomph-ac/strafe/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// bot is a client that circles around its spawn point, jumping now and then.
type bot struct {
	id        uuid.UUID
	predictor *prediction.Predictor
	phase     float32
}

func (b *bot) input(tick uint64) movesim.InputState {
	angle := b.phase + float32(tick)*0.02
	return movesim.InputState{
		Direction: omath.NewVec3(math32.Cos(angle), 0, math32.Sin(angle)),
		DeltaTime: game.DefaultDeltaTime,
		Sprint:    tick%120 < 60,
		Jump:      tick%90 == 0,
	}
}

// runBots runs a server fed by simulated clients talking through the wire codec, until ctx is done.
func runBots(ctx context.Context, lg *logrus.Logger, s settings.Settings, reg prometheus.Registerer, count int) error {
	opts, err := s.SimulationOptions()
	if err != nil {
		return err
	}
	ground := movesim.FlatGround(0)
	srv, err := server.New(server.Config{
		Simulator: movesim.New(ground, opts),
		Log:       lg,
		TickRate:  s.Server.TickRate,
		Workers:   s.Server.Workers,
		Registry:  reg,
		MotionA:   s.Motion.A.Config(),
		MotionB:   s.Motion.B.Config(),
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	bots := make(map[uuid.UUID]*bot, count)
	for i := range count {
		start := omath.NewVec3(float32(i)*4, 0, 0)
		p := srv.Join("bot-"+uuid.NewString()[:8], start)
		bots[p.ID] = &bot{
			id:        p.ID,
			predictor: prediction.NewPredictor(movesim.New(ground, opts), start, 0),
			phase:     float32(i),
		}
	}

	// Clients send their frames right before the server ticks.
	ticker := time.NewTicker(time.Second / time.Duration(s.Server.TickRate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			lg.Infof("stopped after %d ticks", srv.CurrentTick())
			return ctx.Err()
		case <-ticker.C:
		}

		for _, b := range bots {
			_, frame := b.predictor.Predict(b.input(b.predictor.Tick()))
			data, err := protocol.Encode(&frame)
			if err != nil {
				return err
			}
			if err := srv.HandleMessage(b.id, data); err != nil {
				lg.Warnf("input from %s: %v", b.id, err)
			}
		}
		for _, o := range srv.Tick() {
			data, err := protocol.Encode(&o.Correction)
			if err != nil {
				return err
			}
			msg, err := protocol.Decode(data)
			if err != nil {
				return err
			}
			if b, ok := bots[o.Player]; ok && b.predictor.Reconcile(*msg.(*protocol.Correction)) {
				lg.Debugf("%s replayed %d pending inputs", o.Player, b.predictor.Pending())
			}
		}
	}
}
