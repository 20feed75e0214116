package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/models"
)

// ReviewStore is the persistence surface the review route needs.
type ReviewStore interface {
	Create(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error)
}

type ReviewHandler struct {
	reviews ReviewStore
}

func NewReviewHandler(reviews ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create inserts a review.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.reviews.Create(c.Context(), review)
	if err != nil {
		return internalError(c, err, "Failed to create review")
	}
	return c.JSON(result)
}
