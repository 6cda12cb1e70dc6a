package oerror

import "fmt"

// StrafeError is an error raised by the outer layers of the module. The kinematics formulas never return one.
type StrafeError struct {
	Err string
}

// New returns a StrafeError with a formatted message.
func New(format string, args ...any) *StrafeError {
	return &StrafeError{Err: fmt.Sprintf(format, args...)}
}

func (e *StrafeError) Error() string {
	return e.Err
}
