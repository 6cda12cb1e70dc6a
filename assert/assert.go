package assert

import "github.com/oomph-ac/strafe/oerror"

// IsTrue panics with a StrafeError when ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
