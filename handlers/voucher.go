package handlers

import (
	"net/http"

	voucherRepo "salonix/database/repository/voucher"
	"salonix/services/voucher"
	"salonix/utils"

	"github.com/gin-gonic/gin"
)

var VoucherService voucher.VoucherService

// CreateVoucherPaymentIntent opens a payment intent for a voucher purchase.
func CreateVoucherPaymentIntent(c *gin.Context) {
	var input struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	info, err := VoucherService.CreatePaymentIntent(c.Request.Context(), c.GetString("userID"), input.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// CreateVoucher mints a voucher after the payment intent succeeded.
func CreateVoucher(c *gin.Context) {
	var input struct {
		Amount          int64  `json:"amount"`
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	v, err := VoucherService.CreateVoucher(c.Request.Context(), c.GetString("userID"), input.Amount, input.PaymentIntentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetMyVouchers lists the authenticated user's vouchers, newest first.
func GetMyVouchers(c *gin.Context) {
	vouchers, err := VoucherService.ListUserVouchers(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vouchers)
}

// ValidateVoucher checks a voucher against a booking amount without spending it.
func ValidateVoucher(c *gin.Context) {
	var input struct {
		VoucherID   string  `json:"voucherId"`
		VoucherCode string  `json:"voucherCode"`
		Amount      float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if input.VoucherID == "" && input.VoucherCode == "" {
		utils.JSONError(c, http.StatusBadRequest, "voucherId or voucherCode is required", "")
		return
	}

	ref := voucherRepo.VoucherRef{ID: input.VoucherID, Code: input.VoucherCode}
	validation, err := VoucherService.ValidateVoucher(c.Request.Context(), c.GetString("userID"), ref, input.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, validation)
}
