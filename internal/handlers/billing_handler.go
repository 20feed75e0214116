package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// IntentCreator forwards an amount to the payment gateway.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
}

type BillingHandler struct {
	billing IntentCreator
}

func NewBillingHandler(billing IntentCreator) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// CreatePaymentIntent returns the gateway client secret for client-side
// confirmation. Gateway failures surface as 500 with the gateway's message.
func (h *BillingHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var body struct {
		AmountInCents int64 `json:"amountInCents"`
	}
	if err := c.BodyParser(&body); err != nil || body.AmountInCents <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be a positive number of cents"})
	}

	clientSecret, err := h.billing.CreatePaymentIntent(c.Context(), body.AmountInCents)
	if err != nil {
		log.Error().Err(err).Msg("payment intent creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}
