package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/models"
	"trackforce/internal/services"
)

// WorkStore is the persistence surface the work-log routes need.
type WorkStore interface {
	List(ctx context.Context, email string) ([]models.Work, error)
	Get(ctx context.Context, id string) (models.Work, error)
	Create(ctx context.Context, work models.Work) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, patch bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type WorkHandler struct {
	works WorkStore
}

func NewWorkHandler(works WorkStore) *WorkHandler {
	return &WorkHandler{works: works}
}

// List returns work entries newest date first, optionally filtered by the
// email query parameter.
func (h *WorkHandler) List(c *fiber.Ctx) error {
	works, err := h.works.List(c.Context(), c.Query("email"))
	if err != nil {
		return internalError(c, err, "Failed to fetch works")
	}
	return c.JSON(works)
}

// Get returns the raw record, or null when the id does not resolve.
func (h *WorkHandler) Get(c *fiber.Ctx) error {
	work, err := h.works.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(nil)
		}
		return internalError(c, err, "Failed to fetch work")
	}
	return c.JSON(work)
}

// Create inserts a work entry with a server-stamped createdAt.
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var work models.Work
	if err := c.BodyParser(&work); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if work.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}

	result, err := h.works.Create(c.Context(), work)
	if err != nil {
		return internalError(c, err, "Failed to create work")
	}
	return c.JSON(result)
}

type workPatch struct {
	Email *string    `json:"email"`
	Task  *string    `json:"task"`
	Hours *float64   `json:"hours"`
	Date  *time.Time `json:"date"`
}

// Update applies a field-set patch: only supplied fields are overwritten.
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	var body workPatch
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	patch := bson.M{}
	if body.Email != nil {
		patch["email"] = *body.Email
	}
	if body.Task != nil {
		patch["task"] = *body.Task
	}
	if body.Hours != nil {
		patch["hours"] = *body.Hours
	}
	if body.Date != nil {
		patch["date"] = *body.Date
	}
	if len(patch) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	result, err := h.works.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		return internalError(c, err, "Failed to update work")
	}
	return c.JSON(result)
}

// Delete removes the entry by id.
func (h *WorkHandler) Delete(c *fiber.Ctx) error {
	result, err := h.works.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		return internalError(c, err, "Failed to delete work")
	}
	return c.JSON(result)
}
