// Package server simulates every connected player authoritatively and tells clients when their prediction
// went wrong.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/oomph-ac/strafe/detection"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/omath"
	"github.com/oomph-ac/strafe/protocol"
	"github.com/oomph-ac/strafe/utils"
	"github.com/oomph-ac/strafe/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// DefaultMaxQueuedInputs is the amount of input frames a player may send ahead of the server.
const DefaultMaxQueuedInputs = 64

// Config holds the settings for a Server.
type Config struct {
	Simulator *movesim.Simulator
	Log       *logrus.Logger

	// TickRate is the amount of ticks per second Run processes.
	TickRate int
	// Workers is the size of the worker pool. Zero uses one worker per CPU.
	Workers         int
	MaxQueuedInputs int

	// Registry receives the server's prometheus collectors. It may be nil.
	Registry prometheus.Registerer

	MotionA detection.Config
	MotionB detection.Config
}

// Outgoing is a correction addressed to a player.
type Outgoing struct {
	Player     uuid.UUID
	Correction protocol.Correction
}

// Server owns the authoritative movement state of every player.
type Server struct {
	conf    Config
	log     *logrus.Logger
	pool    *worker.Pool
	metrics *Metrics

	mu      deadlock.RWMutex
	players *orderedmap.OrderedMap[uuid.UUID, *Player]

	tick atomic.Uint64
}

// New creates a server from the config.
func New(conf Config) (*Server, error) {
	if conf.TickRate <= 0 {
		return nil, oerror.New(game.ErrorInvalidTickRate, conf.TickRate)
	}
	if conf.Simulator == nil {
		conf.Simulator = movesim.New(nil, movesim.DefaultOptions())
	}
	if conf.Log == nil {
		conf.Log = logrus.New()
		conf.Log.Formatter = &logrus.TextFormatter{ForceColors: true}
	}
	if conf.MaxQueuedInputs <= 0 {
		conf.MaxQueuedInputs = DefaultMaxQueuedInputs
	}
	return &Server{
		conf:    conf,
		log:     conf.Log,
		pool:    worker.New(conf.Workers),
		metrics: NewMetrics(conf.Registry),
		players: orderedmap.NewOrderedMap[uuid.UUID, *Player](),
	}, nil
}

// Join adds a player standing at pos and returns it.
func (s *Server) Join(name string, pos omath.Vec3) *Player {
	p := &Player{
		ID:        uuid.New(),
		Name:      name,
		state:     movesim.NewMovementState(pos),
		maxInputs: s.conf.MaxQueuedInputs,
	}
	p.detections = detection.Register(name, s.log, s.conf.MotionA, s.conf.MotionB, s.onFlag)

	s.mu.Lock()
	s.players.Set(p.ID, p)
	count := s.players.Len()
	s.mu.Unlock()

	s.metrics.players.Set(float64(count))
	s.log.Infof("%s joined (id=%s, pos=%v)", name, p.ID, pos)
	return p
}

// Leave removes the player with the given ID.
func (s *Server) Leave(id uuid.UUID) error {
	s.mu.Lock()
	p, ok := s.players.Get(id)
	if ok {
		s.players.Delete(id)
	}
	count := s.players.Len()
	s.mu.Unlock()

	if !ok {
		return oerror.New(game.ErrorUnknownPlayer, id)
	}
	s.metrics.players.Set(float64(count))
	s.log.Infof("%s left", p.Name)
	return nil
}

// Player returns the player with the given ID.
func (s *Server) Player(id uuid.UUID) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players.Get(id)
}

// Players returns every player in the order they joined.
func (s *Server) Players() []*Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*Player, 0, s.players.Len())
	for el := s.players.Front(); el != nil; el = el.Next() {
		list = append(list, el.Value)
	}
	return list
}

// HandleInput queues an input frame to be simulated on the next tick.
func (s *Server) HandleInput(id uuid.UUID, frame protocol.InputFrame) error {
	p, ok := s.Player(id)
	if !ok {
		return oerror.New(game.ErrorUnknownPlayer, id)
	}
	if !p.queue(frame) {
		return oerror.New(game.ErrorInputQueueFull, p.Name)
	}
	return nil
}

// HandleMessage decodes a message sent by a player and handles it.
func (s *Server) HandleMessage(id uuid.UUID, data []byte) error {
	msg, err := protocol.Decode(data)
	if err != nil {
		return fmt.Errorf("message from %s: %w", id, err)
	}
	frame, ok := msg.(*protocol.InputFrame)
	if !ok {
		return oerror.New(game.ErrorUnknownMessage, msg.Type())
	}
	return s.HandleInput(id, *frame)
}

// CurrentTick returns the number of ticks processed so far.
func (s *Server) CurrentTick() uint64 {
	return s.tick.Load()
}

// Tick simulates the queued inputs of every player on the worker pool and returns the corrections to send, in
// the order the players joined.
func (s *Server) Tick() []Outgoing {
	start := time.Now()
	players := s.Players()
	stats := make([]tickStats, len(players))

	var wg sync.WaitGroup
	wg.Add(len(players))
	for i, p := range players {
		s.pool.Submit(func() {
			defer wg.Done()
			stats[i] = p.process(s.conf.Simulator)
		})
	}
	wg.Wait()

	var out []Outgoing
	for i, st := range stats {
		s.metrics.inputs.Add(float64(st.inputs))
		s.metrics.rejected.Add(float64(st.rejected))
		if st.correction == nil {
			continue
		}
		out = append(out, Outgoing{Player: players[i].ID, Correction: *st.correction})
		if s.log.IsLevelEnabled(logrus.DebugLevel) {
			s.log.Debugf("correcting %s %s", players[i].Name, utils.KeyValsToString(
				"tick", st.correction.Tick,
				"pos", st.correction.Position,
				"onGround", st.correction.OnGround,
			))
		}
	}

	s.metrics.corrections.Add(float64(len(out)))
	s.metrics.ticks.Inc()
	s.metrics.tickDuration.Observe(time.Since(start).Seconds())
	s.tick.Inc()
	return out
}

// Run ticks the server at the configured tick rate until ctx is cancelled, passing every correction to send.
func (s *Server) Run(ctx context.Context, send func(Outgoing)) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.conf.TickRate))
	defer ticker.Stop()

	s.log.Infof("server running at %d ticks per second", s.conf.TickRate)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, o := range s.Tick() {
				if send != nil {
					send(o)
				}
			}
		}
	}
}

// Close stops the worker pool. The server must not be ticked afterwards.
func (s *Server) Close() {
	s.pool.Close()
}

func (s *Server) onFlag(d detection.Detection, _ string, _ *orderedmap.OrderedMap[string, any]) bool {
	s.metrics.flags.WithLabelValues(d.ID()).Inc()
	return true
}
