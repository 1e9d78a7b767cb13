package voucherRepo

import (
	"context"
	"errors"
	"time"

	"salonix/models"
)

var (
	// ErrNotFound is returned when no voucher matches the lookup, including
	// Consume calls on vouchers that are already spent.
	ErrNotFound = errors.New("voucher not found")
	// ErrDuplicate is returned when inserting a voucher whose code or
	// paymentIntentId already exists.
	ErrDuplicate = errors.New("voucher already exists")
)

// VoucherRef locates a voucher by id or by code; exactly one field is set.
type VoucherRef struct {
	ID   string
	Code string
}

// VoucherRepository defines data access for vouchers.
type VoucherRepository interface {
	// Create inserts a new voucher. Returns ErrDuplicate on a code or
	// paymentIntentId collision.
	Create(ctx context.Context, voucher *models.Voucher) error
	GetByID(ctx context.Context, id string) (*models.Voucher, error)
	// FindUnused returns the unused voucher matching the reference, or
	// ErrNotFound.
	FindUnused(ctx context.Context, ref VoucherRef) (*models.Voucher, error)
	// Consume atomically flips used=false to used=true, recording usedAt and
	// the consuming booking, and returns the updated voucher. Returns
	// ErrNotFound if the voucher is absent or was consumed concurrently.
	Consume(ctx context.Context, ref VoucherRef, bookingID string, at time.Time) (*models.Voucher, error)
	ListByUser(ctx context.Context, userID string) ([]models.Voucher, error)
	// ExistsForPaymentIntent reports whether a voucher was already minted for
	// the given payment, preventing double issuance.
	ExistsForPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}
