package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/models"
	"trackforce/internal/services"
	"trackforce/internal/utils"
)

// PeopleStore is the persistence surface the people routes need.
type PeopleStore interface {
	ListByRole(ctx context.Context, role string) ([]models.Person, error)
	ListVerified(ctx context.Context) ([]models.Person, error)
	GetByEmail(ctx context.Context, email string) (models.Person, error)
	GetByID(ctx context.Context, id string) (models.Person, error)
	Register(ctx context.Context, person models.Person) (*mongo.InsertOneResult, error)
	ToggleVerified(ctx context.Context, id string) (bool, error)
	Fire(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Promote(ctx context.Context, id string) (*mongo.UpdateResult, error)
	SetSalary(ctx context.Context, id string, salary float64) (*mongo.UpdateResult, error)
}

// PaymentHistory provides the salary history merged into the person profile.
type PaymentHistory interface {
	HistoryFor(ctx context.Context, employeeID, email string) ([]models.Payment, error)
}

type PeopleHandler struct {
	people   PeopleStore
	payments PaymentHistory
}

func NewPeopleHandler(people PeopleStore, payments PaymentHistory) *PeopleHandler {
	return &PeopleHandler{people: people, payments: payments}
}

// ListEmployees returns all people with the employee role. The role filter is
// fixed, not request-driven.
func (h *PeopleHandler) ListEmployees(c *fiber.Ctx) error {
	people, err := h.people.ListByRole(c.Context(), models.RoleEmployee)
	if err != nil {
		return internalError(c, err, "Failed to fetch people")
	}
	return c.JSON(people)
}

// ListVerified returns verified non-admin people.
func (h *PeopleHandler) ListVerified(c *fiber.Ctx) error {
	people, err := h.people.ListVerified(c.Context())
	if err != nil {
		return internalError(c, err, "Failed to fetch people")
	}
	return c.JSON(people)
}

// RoleByEmail returns {role: value-or-null}. A missing person is not an
// error, the role is simply null.
func (h *PeopleHandler) RoleByEmail(c *fiber.Ctx) error {
	person, err := h.people.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(fiber.Map{"role": nil})
		}
		return internalError(c, err, "Failed to fetch role")
	}
	return c.JSON(fiber.Map{"role": person.Role})
}

type personWithHistory struct {
	models.Person
	SalaryHistory []models.Payment `json:"salaryHistory"`
}

// GetByID returns the person merged with their salary history. Person and
// payments are fetched concurrently since the history is keyed by the same id.
func (h *PeopleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx := c.Context()

	results, errs := utils.RunParallelTasks([]utils.ParallelTask{
		func() (interface{}, error) { return h.people.GetByID(ctx, id) },
		func() (interface{}, error) { return h.payments.HistoryFor(ctx, id, "") },
	})

	if err := errs[0]; err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Person not found"})
		}
		return internalError(c, err, "Failed to fetch person")
	}
	if err := errs[1]; err != nil {
		return internalError(c, err, "Failed to fetch salary history")
	}

	return c.JSON(personWithHistory{
		Person:        results[0].(models.Person),
		SalaryHistory: results[1].([]models.Payment),
	})
}

// Register inserts a person keyed by email. Re-registering an existing email
// is a no-op reported with inserted:false, not an error.
func (h *PeopleHandler) Register(c *fiber.Ctx) error {
	var person models.Person
	if err := c.BodyParser(&person); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if person.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}

	_, err := h.people.GetByEmail(c.Context(), person.Email)
	if err == nil {
		return c.JSON(fiber.Map{"message": "Person already exists", "inserted": false})
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return internalError(c, err, "Failed to register person")
	}

	result, err := h.people.Register(c.Context(), person)
	if err != nil {
		return internalError(c, err, "Failed to register person")
	}
	return c.JSON(result)
}

// ToggleVerified flips isVerified for the person.
func (h *PeopleHandler) ToggleVerified(c *fiber.Ctx) error {
	verified, err := h.people.ToggleVerified(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Person not found"})
		}
		return internalError(c, err, "Failed to update person")
	}
	return c.JSON(fiber.Map{"isVerified": verified})
}

// Fire unconditionally sets isFired.
func (h *PeopleHandler) Fire(c *fiber.Ctx) error {
	result, err := h.people.Fire(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		return internalError(c, err, "Failed to update person")
	}
	return c.JSON(result)
}

// Promote unconditionally sets the hr role.
func (h *PeopleHandler) Promote(c *fiber.Ctx) error {
	result, err := h.people.Promote(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		return internalError(c, err, "Failed to update person")
	}
	return c.JSON(result)
}

// SetSalary updates the salary. The new value must be numeric and strictly
// greater than the current one.
func (h *PeopleHandler) SetSalary(c *fiber.Ctx) error {
	var body struct {
		Salary *float64 `json:"salary"`
	}
	if err := c.BodyParser(&body); err != nil || body.Salary == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Salary must be a number"})
	}

	person, err := h.people.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Person not found"})
		}
		return internalError(c, err, "Failed to fetch person")
	}

	if *body.Salary <= person.Salary {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Salary can only be increased"})
	}

	result, err := h.people.SetSalary(c.Context(), c.Params("id"), *body.Salary)
	if err != nil {
		return internalError(c, err, "Failed to update salary")
	}
	return c.JSON(result)
}
