package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures reported by the remote marketplace collaborator.
var (
	// ErrBusinessRejected indicates that the server refused an otherwise
	// well-formed request. The local view should be refreshed before retrying.
	ErrBusinessRejected = errors.New("business rule rejected")
	// ErrTransport indicates that a request to the server did not complete.
	// The operation may be retried as-is by re-triggering the action.
	ErrTransport = errors.New("transport failure")
)

// Kind classifies a failure into one of the categories callers must
// distinguish: local validation, server-side business rejection, or a
// transport fault. The category decides whether a retry is safe without
// refreshing local state first.
type Kind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota
	// KindValidation is a local validation failure raised before any network call.
	KindValidation
	// KindBusiness is a rejection reported by the server for a well-formed request.
	KindBusiness
	// KindTransport is a network or protocol failure; the request did not complete.
	KindTransport
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusiness:
		return "business"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// BusinessRejectionError carries a server-reported rejection of a well-formed
// request, preserving the server-provided message for display to the user.
type BusinessRejectionError struct {
	Operation string
	Message   string
	Cause     error
}

// NewBusinessRejectionError creates a BusinessRejectionError without an underlying cause.
func NewBusinessRejectionError(operation, message string) *BusinessRejectionError {
	return &BusinessRejectionError{Operation: operation, Message: message}
}

// NewBusinessRejectionErrorWithCause creates a BusinessRejectionError wrapping an underlying cause.
func NewBusinessRejectionErrorWithCause(operation, message string, cause error) *BusinessRejectionError {
	return &BusinessRejectionError{Operation: operation, Message: message, Cause: cause}
}

func (e *BusinessRejectionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s: %s (cause: %s)", ErrBusinessRejected, e.Operation, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s: %s", ErrBusinessRejected, e.Operation, e.Message))
}

func (e *BusinessRejectionError) Unwrap() error {
	return ErrBusinessRejected
}

// TransportError carries a network-level failure for a named operation.
type TransportError struct {
	Operation string
	Cause     error
}

// NewTransportError creates a TransportError wrapping the underlying network failure.
func NewTransportError(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransport, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransport, e.Operation))
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// KindOf classifies an error into one of the failure categories.
//
// Classification rules:
//   - ErrTransport             -> KindTransport
//   - ErrBusinessRejected      -> KindBusiness
//   - ErrObjectNotFound        -> KindBusiness (refresh before retry)
//   - ErrValueIsInvalid,
//     ErrValueIsRequired,
//     ErrValueIsOutOfRange     -> KindValidation
//   - anything else            -> KindUnknown
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrBusinessRejected), errors.Is(err, ErrObjectNotFound):
		return KindBusiness
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindUnknown
	}
}

// IsRetryable reports whether the operation may be retried as-is, without
// refreshing the local view first. Only transport failures qualify.
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransport
}
