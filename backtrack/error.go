package backtrack

import "errors"

// Engine errors.
var (
	// ErrResourceExhausted indicates the backtracking search crossed its
	// step budget and was aborted. It is distinct from a no-match
	// outcome: the caller cannot know whether the pattern matches.
	ErrResourceExhausted = errors.New("retrace: backtracking step budget exhausted")

	// ErrTooComplex indicates the pattern compiled to a program larger
	// than the configured instruction limit.
	ErrTooComplex = errors.New("retrace: pattern too complex")
)
