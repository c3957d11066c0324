package application

import (
	"errors"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

// Kind is the category of an error returned by a use case. Adapters switch
// on it to decide how to present the failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// UserNotFoundError is returned when no user matches the requested id.
type UserNotFoundError struct {
	UserID user.ID
}

func (e *UserNotFoundError) Error() string {
	return "User with id " + e.UserID.String() + " not found"
}

// UpstreamError carries a failure from a port (repository, auth service).
// The wrapped error is kept as is.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// KindOf classifies err. Upstream wins over anything the port error itself
// may wrap, so a provider failure is never reported as a validation problem.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var up *UpstreamError
	if errors.As(err, &up) {
		return KindUpstream
	}
	var nf *UserNotFoundError
	if errors.As(err, &nf) {
		return KindNotFound
	}
	var ve *user.ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	return KindUnknown
}
