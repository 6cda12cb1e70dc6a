package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	require.NoError(t, SaveDefault(path))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	assert.ErrorContains(t, SaveDefault(path), game.ErrorSettingsExists)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, game.ErrorSettingsMissing)
}

func TestLoadCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	data := "[Movement]\nGravityMode = \"influence\"\nJumpSpeed = 7.5\n\n[Server]\nTickRate = 20\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Server.TickRate)
	assert.Equal(t, 7.5, s.Movement.JumpSpeed)

	opts, err := s.SimulationOptions()
	require.NoError(t, err)
	assert.Equal(t, movesim.GravityModeInfluence, opts.GravityMode)
	assert.Equal(t, float32(7.5), opts.JumpSpeed)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Server]\nTickRate = 0\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "tick rate must be positive")

	require.NoError(t, os.WriteFile(path, []byte("[Movement]\nGravityMode = \"sideways\"\n\n[Server]\nTickRate = 20\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unknown gravity mode")

	require.NoError(t, os.WriteFile(path, []byte("not toml = = ="), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "error decoding config")
}

func TestDefaultSimulationOptions(t *testing.T) {
	opts, err := DefaultSettings().SimulationOptions()
	require.NoError(t, err)
	def := movesim.DefaultOptions()
	assert.Equal(t, def.MoveSpeed, opts.MoveSpeed)
	assert.Equal(t, def.Gravity, opts.Gravity)
	assert.Equal(t, def.GroundSnapDistance, opts.GroundSnapDistance)
	assert.True(t, opts.AirStrafe)
	assert.Equal(t, float32(0.3), opts.PositionCorrectionThreshold)
}

func TestBasicsConfig(t *testing.T) {
	cfg := DefaultSettings().Motion.A.Config()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, float32(20), cfg.MaxViolations)
	assert.Equal(t, float32(0.3), cfg.Threshold)
}
