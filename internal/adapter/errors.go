package adapter

import "errors"

// Sentinel errors mapped from transport failures. [ErrUnavailable] marks the
// transient class (timeouts, 5xx) that is safe to retry; everything else is a
// definitive remote verdict and must surface to the caller unchanged.
var (
	// ErrUnauthorized indicates a missing, expired or rejected token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrUniqueViolation indicates the remote rejected an insert because
	// the client-generated primary key already exists.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrValidation indicates the remote rejected the payload as
	// malformed.
	ErrValidation = errors.New("remote validation error")
	// ErrNotFound indicates the addressed row does not exist remotely.
	ErrNotFound = errors.New("remote row not found")
	// ErrUnavailable indicates a transient transport or server failure;
	// the sync cycle aborts and the queue is retried next cycle.
	ErrUnavailable = errors.New("remote unavailable")
)
