// errors.go defines the validation error type and its sentinel categories.
//
// Separated to centralise error definitions. Every validator returns a
// *Error so callers have exactly one failure kind to branch on, while the
// wrapped sentinel keeps errors.Is checks type-safe per category.
//
// Design: The reason string is what the caller sees. It may echo the
// rejected input only in bounded form (truncated identifiers, normalised
// network names), never secrets or monetary amounts.

package validate

import "errors"

var (
	ErrInvalidAddress       = errors.New("invalid address")
	ErrInvalidNetwork       = errors.New("invalid network")
	ErrInvalidOperationHash = errors.New("invalid operation hash")
	ErrNotInteger           = errors.New("not an integer")
	ErrNotString            = errors.New("not a string")
	ErrTooSmall             = errors.New("value too small")
	ErrTooLarge             = errors.New("value too large")
)

// Error is a validation failure. Validator names the check that rejected
// the input ("address", "network", "limit", ...); Reason is the
// human-readable explanation returned to the caller.
type Error struct {
	Validator string
	Reason    string
	kind      error
}

func newError(validator string, kind error, reason string) *Error {
	return &Error{Validator: validator, Reason: reason, kind: kind}
}

// Error returns the reason. The validator name is not prefixed because
// reasons already start with the parameter they describe.
func (e *Error) Error() string {
	return e.Reason
}

// Unwrap exposes the sentinel category for errors.Is.
func (e *Error) Unwrap() error {
	return e.kind
}

// IsValidation reports whether err (or anything it wraps) is a validation
// failure.
func IsValidation(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
