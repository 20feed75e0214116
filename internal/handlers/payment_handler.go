package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/models"
	"trackforce/internal/services"
)

// PaymentStore is the persistence surface the payment routes need.
type PaymentStore interface {
	ListAll(ctx context.Context) ([]models.Payment, error)
	Get(ctx context.Context, id string) (models.Payment, error)
	HistoryByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Create(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	MarkPaid(ctx context.Context, id, transactionID string) (*mongo.UpdateResult, error)
}

// PayslipProvider turns a settled payment into a downloadable payslip URL.
type PayslipProvider interface {
	PresignedPayslip(ctx context.Context, paymentID string) (string, error)
}

type PaymentHandler struct {
	payments PaymentStore
	payslips PayslipProvider
}

func NewPaymentHandler(payments PaymentStore, payslips PayslipProvider) *PaymentHandler {
	return &PaymentHandler{payments: payments, payslips: payslips}
}

// List returns every payment request for the HR view.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.payments.ListAll(c.Context())
	if err != nil {
		return internalError(c, err, "Failed to fetch payments")
	}
	return c.JSON(payments)
}

// Get returns one payment by id.
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	payment, err := h.payments.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return internalError(c, err, "Failed to fetch payment")
	}
	return c.JSON(payment)
}

// History returns all payments for the required email query parameter,
// sorted by year then month ascending.
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email query parameter is required"})
	}

	payments, err := h.payments.HistoryByEmail(c.Context(), email)
	if err != nil {
		return internalError(c, err, "Failed to fetch payment history")
	}
	return c.JSON(payments)
}

// Create inserts a payment request with a server-stamped createdAt and a
// pending status.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if payment.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}

	result, err := h.payments.Create(c.Context(), payment)
	if err != nil {
		return internalError(c, err, "Failed to create payment")
	}
	return c.JSON(result)
}

// MarkPaid settles a payment with the supplied transaction id.
func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	var body struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.BodyParser(&body); err != nil || body.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transaction id is required"})
	}

	result, err := h.payments.MarkPaid(c.Context(), c.Params("id"), body.TransactionID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		return internalError(c, err, "Failed to update payment")
	}
	return c.JSON(result)
}

// Payslip returns a presigned download URL for the payslip PDF of a settled
// payment.
func (h *PaymentHandler) Payslip(c *fiber.Ctx) error {
	url, err := h.payslips.PresignedPayslip(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, services.ErrNotSettled) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment is not settled"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return internalError(c, err, "Failed to generate payslip")
	}
	return c.JSON(fiber.Map{"url": url, "expires_in": "24 hours"})
}
