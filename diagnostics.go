package ecscore

import "github.com/TheBitDrifter/bark"

// fail aborts the process with a trace-annotated diagnostic. It is
// used for programmer-error preconditions on operations with no
// meaningful sentinel value to return.
func fail(err error) {
	logger().WithField("kind", "precondition-violation").Error(err)
	panic(bark.AddTrace(err))
}

// failIf calls fail(err) when cond is true. A tiny helper so
// precondition checks at call sites read as a single line.
func failIf(cond bool, err error) {
	if cond {
		fail(err)
	}
}
