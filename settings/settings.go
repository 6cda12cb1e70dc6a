package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/strafe/detection"
	"github.com/oomph-ac/strafe/game"
	"github.com/oomph-ac/strafe/movesim"
	"github.com/oomph-ac/strafe/oerror"
	"github.com/oomph-ac/strafe/omath"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the simulator, the server and each detection.
type Settings struct {
	Movement struct {
		MoveSpeed       float64
		AirAccelerate   float64
		MaxAirWishSpeed float64
		JumpSpeed       float64
		GravityY        float64
		// GravityMode is either "velocity" or "influence".
		GravityMode        string
		AirStrafe          bool
		GroundSnapDistance float64
	}
	Correction struct {
		PositionThreshold float64
		VelocityThreshold float64
	}
	Server struct {
		TickRate int
		// Workers is the amount of goroutines simulating players. Zero uses one per CPU.
		Workers       int
		LogLevel      string
		MetricsAddr   string
		StatsviewAddr string
		SentryDSN     string
	}
	Motion struct {
		A Basics
		B Basics
	}
}

// Basics are the basic settings for a detection.
type Basics struct {
	// Enabled is whether the detection should run or not.
	Enabled bool
	// MaxViolations is the amount of violations until a punishable detection is exceeded.
	MaxViolations float64
	// Threshold is the largest deviation that is tolerated.
	Threshold float64
}

// Config converts the basics into a detection configuration.
func (b Basics) Config() detection.Config {
	return detection.Config{Enabled: b.Enabled, MaxViolations: float32(b.MaxViolations), Threshold: float32(b.Threshold)}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Movement.MoveSpeed = float64(game.DefaultMoveSpeed)
	settings.Movement.AirAccelerate = float64(game.DefaultAirAccelerate)
	settings.Movement.MaxAirWishSpeed = float64(game.DefaultMaxAirWishSpeed)
	settings.Movement.JumpSpeed = float64(game.DefaultJumpSpeed)
	settings.Movement.GravityY = float64(game.DefaultGravityY)
	settings.Movement.GravityMode = "velocity"
	settings.Movement.AirStrafe = true
	settings.Movement.GroundSnapDistance = float64(game.GroundSnapDistance)

	settings.Correction.PositionThreshold = 0.3
	settings.Correction.VelocityThreshold = 1

	settings.Server.TickRate = game.TicksPerSecond
	settings.Server.LogLevel = "info"
	settings.Server.MetricsAddr = ":9100"

	settings.Motion.A = Basics{Enabled: true, MaxViolations: 20, Threshold: 0.3}
	settings.Motion.B = Basics{Enabled: true, MaxViolations: 30, Threshold: 1}
	return settings
}

// SimulationOptions converts the movement and correction settings into simulator options.
func (s Settings) SimulationOptions() (movesim.SimulationOptions, error) {
	opts := movesim.DefaultOptions()
	opts.MoveSpeed = float32(s.Movement.MoveSpeed)
	opts.AirAccelerate = float32(s.Movement.AirAccelerate)
	opts.MaxAirWishSpeed = float32(s.Movement.MaxAirWishSpeed)
	opts.JumpSpeed = float32(s.Movement.JumpSpeed)
	opts.Gravity = omath.NewVec3(0, float32(s.Movement.GravityY), 0)
	opts.AirStrafe = s.Movement.AirStrafe
	opts.GroundSnapDistance = float32(s.Movement.GroundSnapDistance)
	opts.PositionCorrectionThreshold = float32(s.Correction.PositionThreshold)
	opts.VelocityCorrectionThreshold = float32(s.Correction.VelocityThreshold)

	switch strings.ToLower(s.Movement.GravityMode) {
	case "", "velocity":
		opts.GravityMode = movesim.GravityModeVelocity
	case "influence":
		opts.GravityMode = movesim.GravityModeInfluence
	default:
		return opts, fmt.Errorf("unknown gravity mode %q", s.Movement.GravityMode)
	}
	return opts, nil
}

// Validate checks the settings that cannot be used as they are.
func (s Settings) Validate() error {
	if s.Server.TickRate <= 0 {
		return oerror.New(game.ErrorInvalidTickRate, s.Server.TickRate)
	}
	if s.Server.Workers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", s.Server.Workers)
	}
	_, err := s.SimulationOptions()
	return err
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return oerror.New(game.ErrorSettingsExists)
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, oerror.New(game.ErrorSettingsMissing)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
