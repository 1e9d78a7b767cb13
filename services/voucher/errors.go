package voucher

import "fmt"

// Purchase/validation error codes.
const (
	CodeInvalidAmount       = "invalidAmount"
	CodePaymentNotConfirmed = "paymentNotConfirmed"
	CodePaymentMismatch     = "paymentMismatch"
	CodeAlreadyIssued       = "alreadyIssued"
	CodeNotFound            = "notFound"
	CodeExpired             = "expired"
	CodeInsufficient        = "insufficient"
)

// VoucherError carries a machine-readable code alongside the message so
// handlers can map it to a status without string matching.
type VoucherError struct {
	Code    string
	Message string
}

func (e *VoucherError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewVoucherError(code, format string, args ...interface{}) error {
	return &VoucherError{Code: code, Message: fmt.Sprintf(format, args...)}
}
