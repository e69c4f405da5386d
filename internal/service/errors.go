package service

import "errors"

var (
	// ErrInvalidChange indicates a change record that failed structural
	// validation before tracking.
	ErrInvalidChange = errors.New("invalid change record")

	// ErrNotStarted indicates an operation that requires a started
	// orchestrator.
	ErrNotStarted = errors.New("orchestrator not started")

	// ErrUnknownStrategy indicates a conflict resolution request with an
	// unrecognised merge strategy.
	ErrUnknownStrategy = errors.New("unknown merge strategy")
)
