package booking

import "fmt"

// ValidationError covers missing or malformed request fields, identifier
// format errors and worker/salon mismatches. The caller can recover by
// correcting the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced worker, salon, booking or voucher
// does not exist (or, for vouchers, is already used).
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(resource, format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: fmt.Sprintf(format, args...)}
}

// ConflictError signals a lost slot race: the requested slot was taken between
// the availability query and the insert. The caller should re-fetch available
// slots rather than retry the same one.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ExpiredError signals a voucher past its expiry date.
type ExpiredError struct {
	Message string
}

func (e *ExpiredError) Error() string { return e.Message }

// InsufficientFundsError signals a voucher that does not cover the full
// booking total; partial redemption is not supported.
type InsufficientFundsError struct {
	Required  float64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Voucher amount insufficient. Required: %.0f RON, Available: %d RON", e.Required, e.Available)
}

// InvalidStateError signals an operation on a booking whose lifecycle state
// does not admit it, such as cancelling an already-cancelled booking.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// ParseError signals malformed stored data, such as an availability entry
// whose "HH:MM" strings cannot be parsed.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }
