package models

import (
	"crypto/rand"
	"math/big"
	"time"
)

// VoucherAmounts are the only denominations a voucher can be issued in (RON).
var VoucherAmounts = []int64{100, 200, 500}

// VoucherValidity is the lifetime of a voucher from issuance.
const VoucherValidity = 365 * 24 * time.Hour

// Voucher is a prepaid, fixed-denomination credit redeemable once against a
// single booking. Restoration after cancellation mints a fresh voucher; the
// consumed one stays spent.
type Voucher struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Code            string    `bson:"code" json:"code"`
	Amount          int64     `bson:"amount" json:"amount"`
	UserID          string    `bson:"userId" json:"userId"`
	Used            bool      `bson:"used" json:"used"`
	UsedAt          time.Time `bson:"usedAt,omitempty" json:"usedAt,omitempty"`
	UsedForBooking  string    `bson:"usedForBooking,omitempty" json:"usedForBooking,omitempty"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt       time.Time `bson:"expiresAt" json:"expiresAt"`
}

// IsValidVoucherAmount reports whether the amount is an allowed denomination.
func IsValidVoucherAmount(amount int64) bool {
	for _, a := range VoucherAmounts {
		if a == amount {
			return true
		}
	}
	return false
}

const voucherCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVoucherCode returns a random 8-character uppercase alphanumeric code.
// Uniqueness is enforced by the vouchers collection index; callers retry on
// collision.
func GenerateVoucherCode() string {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(voucherCodeChars)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failures are not recoverable here
			panic(err)
		}
		code[i] = voucherCodeChars[n.Int64()]
	}
	return string(code)
}
