// Package scenario reads scripted input sequences from YAML files and plays them through a simulator.
package scenario

import (
	"fmt"
	"os"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/omath"
	"gopkg.in/yaml.v3"
)

// Vec is a vector written as a three element YAML sequence.
type Vec []float32

func (v Vec) vec3(field string) (omath.Vec3, error) {
	switch len(v) {
	case 0:
		return omath.Vec3{}, nil
	case 3:
		return omath.NewVec3(v[0], v[1], v[2]), nil
	}
	return omath.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(v))
}

// Ground describes the ground a scenario is played on. Type is one of "none", "flat", "plane" or "boxes".
type Ground struct {
	Type   string      `yaml:"type"`
	Height float32     `yaml:"height"`
	Normal Vec         `yaml:"normal"`
	Offset float32     `yaml:"offset"`
	Boxes  [][]float32 `yaml:"boxes"`
}

// Step is an input held for Repeat ticks.
type Step struct {
	Direction Vec     `yaml:"direction"`
	Sprint    bool    `yaml:"sprint"`
	Crouch    bool    `yaml:"crouch"`
	Jump      bool    `yaml:"jump"`
	Repeat    int     `yaml:"repeat"`
	DeltaTime float32 `yaml:"dt"`
}

// Scenario is a scripted sequence of inputs for a single player.
type Scenario struct {
	Name      string  `yaml:"name"`
	Ground    Ground  `yaml:"ground"`
	Start     Vec     `yaml:"start"`
	Velocity  Vec     `yaml:"velocity"`
	DeltaTime float32 `yaml:"dt"`
	Steps     []Step  `yaml:"steps"`
}

// Parse decodes a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, oerror.New(game.ErrorScenarioEmpty)
	}
	if s.DeltaTime == 0 {
		s.DeltaTime = game.DefaultDeltaTime
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Inputs expands the steps into one input per tick. A step without a repeat count lasts a single tick.
func (s *Scenario) Inputs() ([]movesim.InputState, error) {
	var inputs []movesim.InputState
	for i, step := range s.Steps {
		dir, err := step.Direction.vec3(fmt.Sprintf("steps[%d].direction", i))
		if err != nil {
			return nil, err
		}
		dt := step.DeltaTime
		if dt == 0 {
			dt = s.DeltaTime
		}
		for range max(step.Repeat, 1) {
			inputs = append(inputs, movesim.InputState{
				Direction: dir,
				DeltaTime: dt,
				Sprint:    step.Sprint,
				Crouch:    step.Crouch,
				Jump:      step.Jump,
			})
		}
	}
	return inputs, nil
}

// GroundProvider builds the ground described by the scenario. It returns nil for "none".
func (s *Scenario) GroundProvider() (movesim.GroundProvider, error) {
	g := s.Ground
	switch g.Type {
	case "", "none":
		return nil, nil
	case "flat":
		return movesim.FlatGround(g.Height), nil
	case "plane":
		n, err := g.Normal.vec3("ground.normal")
		if err != nil {
			return nil, err
		}
		if n.IsZero() {
			return nil, fmt.Errorf("ground.normal must not be zero")
		}
		return movesim.PlaneGround{Normal: n, Offset: g.Offset}, nil
	case "boxes":
		boxes := make([]cube.BBox, 0, len(g.Boxes))
		for i, b := range g.Boxes {
			if len(b) != 6 {
				return nil, fmt.Errorf("ground.boxes[%d]: expected 6 components, got %d", i, len(b))
			}
			boxes = append(boxes, cube.Box(b[0], b[1], b[2], b[3], b[4], b[5]))
		}
		return movesim.BoxGround{Boxes: boxes}, nil
	}
	return nil, fmt.Errorf("unknown ground type %q", g.Type)
}

// Run plays the scenario through a simulator with the given options and returns the result of every tick.
func (s *Scenario) Run(opts movesim.SimulationOptions) ([]movesim.SimulationResult, error) {
	ground, err := s.GroundProvider()
	if err != nil {
		return nil, err
	}
	inputs, err := s.Inputs()
	if err != nil {
		return nil, err
	}
	start, err := s.Start.vec3("start")
	if err != nil {
		return nil, err
	}
	vel, err := s.Velocity.vec3("velocity")
	if err != nil {
		return nil, err
	}

	sim := movesim.New(ground, opts)
	state := movesim.NewMovementState(start)
	state.Vel = vel

	results := make([]movesim.SimulationResult, 0, len(inputs))
	for _, in := range inputs {
		in.ClientPos, in.ClientVel = state.Pos, state.Vel
		results = append(results, sim.Simulate(state, in))
	}
	return results, nil
}
