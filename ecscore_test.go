package ecscore

// Shared test fixtures.

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

// resetWorldForTest gives each test a fresh package state, bypassing
// Init's double-init guard so tests don't have to share global
// component-type/system registrations with one another.
func resetWorldForTest() {
	world = &worldState{}
	Init()
}
