// Package apierror defines the error taxonomy shared by every core component.
// All failures surfaced to the boundary go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, driver
// errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the boundary layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindValidation
	KindCapacityExceeded
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation_error"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error is the canonical structured failure. Detail is safe to show to users;
// the wrapped cause is for logs only and never serialized.
type Error struct {
	Kind   Kind              `json:"kind"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func NotFound(detail string) *Error { return New(KindNotFound, detail) }

func Unauthorized(detail string) *Error { return New(KindUnauthorized, detail) }

func Forbidden(detail string) *Error { return New(KindForbidden, detail) }

func CapacityExceeded(detail string) *Error { return New(KindCapacityExceeded, detail) }

// Validation wraps per-field messages from payload validation.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Detail: "validation failed", Fields: fields}
}

// StoreUnavailable wraps a raw store/driver error. The cause is kept for
// logging but is not part of the user-visible detail.
func StoreUnavailable(cause error) *Error {
	return &Error{Kind: KindStoreUnavailable, Detail: "store unavailable", cause: cause}
}

// KindOf extracts the taxonomy kind from any error chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
