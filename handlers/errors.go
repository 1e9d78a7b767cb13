package handlers

import (
	"errors"
	"net/http"

	"salonix/services/booking"
	"salonix/services/voucher"
	"salonix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service-layer errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr   *booking.ValidationError
		notFoundErr     *booking.NotFoundError
		conflictErr     *booking.ConflictError
		expiredErr      *booking.ExpiredError
		insufficientErr *booking.InsufficientFundsError
		stateErr        *booking.InvalidStateError
		voucherErr      *voucher.VoucherError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, "")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Message, "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Message, "")
	case errors.As(err, &expiredErr):
		utils.JSONError(c, http.StatusBadRequest, expiredErr.Message, "")
	case errors.As(err, &insufficientErr):
		utils.JSONError(c, http.StatusBadRequest, insufficientErr.Error(), "")
	case errors.As(err, &stateErr):
		utils.JSONError(c, http.StatusConflict, stateErr.Message, "")
	case errors.As(err, &voucherErr):
		utils.JSONError(c, voucherStatus(voucherErr.Code), voucherErr.Message, "")
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

func voucherStatus(code string) int {
	switch code {
	case voucher.CodeNotFound:
		return http.StatusNotFound
	case voucher.CodeAlreadyIssued:
		return http.StatusConflict
	case voucher.CodePaymentMismatch:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
