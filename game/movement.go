package game

const (
	// SprintMultiplier scales a displacement while the sprint key is held.
	SprintMultiplier = float32(1.5)
	// CrouchMultiplier scales a displacement while crouching.
	CrouchMultiplier = float32(0.67)

	DefaultMoveSpeed       = float32(1.0)
	DefaultAirAccelerate   = float32(10.0)
	DefaultMaxAirWishSpeed = float32(30.0)
	DefaultJumpSpeed       = float32(5.0)
	DefaultGravityY        = float32(-9.8)

	// GravityDownScale is applied together with the squared time step by the gravity influence formula.
	GravityDownScale = float32(0.0875)

	// GroundSnapDistance is how far below the player a ground contact may be and still count as standing on it.
	GroundSnapDistance = float32(0.05)

	TicksPerSecond = 60
	// DefaultDeltaTime is the fixed step used when a scenario or client does not supply its own.
	DefaultDeltaTime = float32(1.0) / TicksPerSecond
)
