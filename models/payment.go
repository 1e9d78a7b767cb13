package models

// PaymentIntentInfo is returned when a voucher purchase is initiated; the
// client completes the payment with the secret, then calls back to mint the
// voucher.
type PaymentIntentInfo struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// VoucherValidation is the answer to a pre-booking voucher check.
type VoucherValidation struct {
	Valid   bool            `json:"valid"`
	Voucher *AppliedVoucher `json:"voucher,omitempty"`
	Message string          `json:"message,omitempty"`
}
