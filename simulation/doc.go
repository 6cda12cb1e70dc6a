// Package simulation implements the per-tick player kinematics formulas shared by the client and the server:
// Source style air acceleration, ground movement projected onto the contact surface and gravity accumulation.
//
// Every function is a pure function of its arguments. None of them keep state between calls, so players may be
// simulated concurrently as long as a single player's vectors are only touched by one goroutine at a time.
package simulation
