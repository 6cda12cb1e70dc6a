package game

const (
	ErrorUnknownPlayer    = "unknown player %s"
	ErrorUnknownMessage   = "unknown message type %d"
	ErrorInputQueueFull   = "input queue full for player %s"
	ErrorSettingsMissing  = "settings file doesn't exist"
	ErrorSettingsExists   = "settings file already exists"
	ErrorScenarioEmpty    = "scenario has no steps"
	ErrorInvalidTickRate  = "tick rate must be positive, got %d"
	ErrorInternalNilState = "movement state required to simulate movement"
)
