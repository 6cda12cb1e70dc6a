package scenario

import (
	"testing"

	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/omath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExpandsRepeats(t *testing.T) {
	s, err := Load("testdata/bunny_hop.yaml")
	require.NoError(t, err)
	assert.Equal(t, "bunny hop", s.Name)
	assert.Equal(t, game.DefaultDeltaTime, s.DeltaTime)

	inputs, err := s.Inputs()
	require.NoError(t, err)
	require.Len(t, inputs, 30+1+40+40)
	assert.True(t, inputs[29].Sprint)
	assert.False(t, inputs[29].Jump)
	assert.True(t, inputs[30].Jump)
	assert.Equal(t, omath.NewVec3(-0.7071, 0, 0.7071), inputs[len(inputs)-1].Direction)
}

func TestRunBunnyHop(t *testing.T) {
	s, err := Load("testdata/bunny_hop.yaml")
	require.NoError(t, err)

	results, err := s.Run(movesim.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 111)

	assert.True(t, results[29].OnGround)
	assert.False(t, results[30].OnGround)
	assert.Greater(t, results[30].Position.Y, float32(0))
	last := results[len(results)-1]
	assert.Greater(t, last.Position.Z, results[30].Position.Z)
	for i, res := range results {
		require.Equal(t, movesim.SimulationOutcomeNormal, res.Outcome, "tick %d", i)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("name: nothing\n"))
	assert.ErrorContains(t, err, game.ErrorScenarioEmpty)

	_, err = Parse([]byte("steps: {"))
	assert.ErrorContains(t, err, "decode scenario")

	s, err := Parse([]byte("steps:\n  - direction: [1, 0]\n"))
	require.NoError(t, err)
	_, err = s.Inputs()
	assert.ErrorContains(t, err, "steps[0].direction: expected 3 components")
}

func TestGroundProvider(t *testing.T) {
	for _, tc := range []struct {
		yaml string
		want movesim.GroundProvider
	}{
		{"ground: {type: none}", nil},
		{"ground: {type: flat, height: 2}", movesim.FlatGround(2)},
		{"ground: {type: plane, normal: [0, 1, 1], offset: 1}", movesim.PlaneGround{Normal: omath.NewVec3(0, 1, 1), Offset: 1}},
	} {
		s, err := Parse([]byte(tc.yaml + "\nsteps: [{}]\n"))
		require.NoError(t, err)
		g, err := s.GroundProvider()
		require.NoError(t, err)
		assert.Equal(t, tc.want, g, tc.yaml)
	}

	s, err := Parse([]byte("ground: {type: boxes, boxes: [[-1, -1, -1, 1, 0, 1]]}\nsteps: [{}]\n"))
	require.NoError(t, err)
	g, err := s.GroundProvider()
	require.NoError(t, err)
	boxes, ok := g.(movesim.BoxGround)
	require.True(t, ok)
	require.Len(t, boxes.Boxes, 1)
	assert.Equal(t, float32(0), boxes.Boxes[0].Max().Y())

	for _, bad := range []string{
		"ground: {type: lava}",
		"ground: {type: plane, normal: [0, 0, 0]}",
		"ground: {type: boxes, boxes: [[1, 2, 3]]}",
	} {
		s, err := Parse([]byte(bad + "\nsteps: [{}]\n"))
		require.NoError(t, err)
		_, err = s.GroundProvider()
		assert.Error(t, err, bad)
	}
}
