package services

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/stayvista/stayvista-server/internal/httperr"
)

// CreatePaymentIntent asks Stripe for a payment intent over the booking
// price and returns the client secret the frontend confirms with. Price is
// in dollars; Stripe wants cents.
func CreatePaymentIntent(price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount < 1 {
		return "", fmt.Errorf("%w: amount must be at least 1 cent", httperr.ErrInvalidInput)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return intent.ClientSecret, nil
}
