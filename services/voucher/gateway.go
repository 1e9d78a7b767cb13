package voucher

import (
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway abstracts the external payment-intent provider. The core
// only ever needs to open an intent and read one back by id.
type PaymentGateway interface {
	CreateIntent(userID string, amount int64) (*stripe.PaymentIntent, error)
	GetIntent(id string) (*stripe.PaymentIntent, error)
}

// StripeGateway implements PaymentGateway against the Stripe API. The global
// stripe.Key must be set before use.
type StripeGateway struct{}

func (StripeGateway) CreateIntent(userID string, amount int64) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount * 100), // RON in bani
		Currency: stripe.String(string(stripe.CurrencyRON)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("voucherAmount", strconv.FormatInt(amount, 10))
	params.AddMetadata("type", "voucher_purchase")
	return paymentintent.New(params)
}

func (StripeGateway) GetIntent(id string) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, nil)
}
