package voucher

import (
	"context"
	"errors"
	"fmt"
	"time"

	voucherRepo "salonix/database/repository/voucher"
	"salonix/models"
	"salonix/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// VoucherService covers the voucher purchase flow: opening a payment intent,
// minting the voucher once the payment succeeded, and pre-booking checks.
type VoucherService interface {
	CreatePaymentIntent(ctx context.Context, userID string, amount int64) (*models.PaymentIntentInfo, error)
	CreateVoucher(ctx context.Context, userID string, amount int64, paymentIntentID string) (*models.Voucher, error)
	ListUserVouchers(ctx context.Context, userID string) ([]models.Voucher, error)
	ValidateVoucher(ctx context.Context, userID string, ref voucherRepo.VoucherRef, amount float64) (*models.VoucherValidation, error)
}

// DefaultVoucherService implements VoucherService.
type DefaultVoucherService struct {
	Repo    voucherRepo.VoucherRepository
	Gateway PaymentGateway
}

// CreatePaymentIntent opens a payment intent for one of the fixed voucher
// denominations.
func (s *DefaultVoucherService) CreatePaymentIntent(ctx context.Context, userID string, amount int64) (*models.PaymentIntentInfo, error) {
	if !models.IsValidVoucherAmount(amount) {
		return nil, NewVoucherError(CodeInvalidAmount, "Invalid voucher amount. Must be 100, 200, or 500 RON.")
	}
	intent, err := s.Gateway.CreateIntent(userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	utils.GetLogger().Info("payment intent created",
		zap.String("intentId", intent.ID), zap.Int64("amount", amount))
	return &models.PaymentIntentInfo{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

// CreateVoucher mints a voucher for a confirmed payment. Issuance is
// idempotent per payment intent: both the pre-check and the unique index on
// paymentIntentId reject a second voucher for the same payment.
func (s *DefaultVoucherService) CreateVoucher(ctx context.Context, userID string, amount int64, paymentIntentID string) (*models.Voucher, error) {
	if !models.IsValidVoucherAmount(amount) {
		return nil, NewVoucherError(CodeInvalidAmount, "Invalid voucher amount")
	}
	if paymentIntentID == "" {
		return nil, NewVoucherError(CodeInvalidAmount, "Payment intent ID is required")
	}

	intent, err := s.Gateway.GetIntent(paymentIntentID)
	if err != nil {
		return nil, NewVoucherError(CodePaymentNotConfirmed, "Invalid payment intent ID")
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, NewVoucherError(CodePaymentNotConfirmed, "Payment not successful. Status: %s", intent.Status)
	}
	if intent.Metadata["userId"] != userID {
		return nil, NewVoucherError(CodePaymentMismatch, "Payment intent user mismatch")
	}

	exists, err := s.Repo.ExistsForPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewVoucherError(CodeAlreadyIssued, "Voucher already created for this payment")
	}

	now := time.Now()
	voucher := &models.Voucher{
		ID:              uuid.New().String(),
		Amount:          amount,
		UserID:          userID,
		PaymentIntentID: paymentIntentID,
		CreatedAt:       now,
		ExpiresAt:       now.Add(models.VoucherValidity),
	}

	const maxAttempts = 10
	for attempt := 0; ; attempt++ {
		voucher.Code = models.GenerateVoucherCode()
		err = s.Repo.Create(ctx, voucher)
		if err == nil {
			break
		}
		if !errors.Is(err, voucherRepo.ErrDuplicate) || attempt+1 >= maxAttempts {
			return nil, fmt.Errorf("failed to create voucher: %w", err)
		}
	}

	utils.GetLogger().Info("voucher created",
		zap.String("code", voucher.Code), zap.Int64("amount", amount))
	return voucher, nil
}

func (s *DefaultVoucherService) ListUserVouchers(ctx context.Context, userID string) ([]models.Voucher, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ValidateVoucher checks a voucher ahead of booking confirmation without
// consuming it. The answer is advisory; redemption re-checks atomically.
func (s *DefaultVoucherService) ValidateVoucher(ctx context.Context, userID string, ref voucherRepo.VoucherRef, amount float64) (*models.VoucherValidation, error) {
	voucher, err := s.Repo.FindUnused(ctx, ref)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrNotFound) {
			return nil, NewVoucherError(CodeNotFound, "Voucher not found or already used")
		}
		return nil, err
	}
	if voucher.UserID != userID {
		return nil, NewVoucherError(CodeNotFound, "Voucher not found or already used")
	}
	if time.Now().After(voucher.ExpiresAt) {
		return nil, NewVoucherError(CodeExpired, "Voucher has expired")
	}
	if float64(voucher.Amount) < amount {
		return nil, NewVoucherError(CodeInsufficient,
			"Voucher amount (%d RON) is less than service cost (%.0f RON)", voucher.Amount, amount)
	}
	return &models.VoucherValidation{
		Valid: true,
		Voucher: &models.AppliedVoucher{
			Code:      voucher.Code,
			Amount:    voucher.Amount,
			Remaining: float64(voucher.Amount) - amount,
		},
	}, nil
}
