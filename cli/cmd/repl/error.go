package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds = errors.New("index out of range")

	// ErrUnknownTarget ends the session. It is returned when the "target"
	// command names a target that the dump does not define.
	ErrUnknownTarget = errors.New("unknown target")

	ErrReadInput = errors.New("read input")
)
