package handler

import (
	"errors"
	"log"

	"go-inventory-genie/internal/middleware"
	"go-inventory-genie/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID reads the identity set by the auth middleware.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(middleware.LocalUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// fail maps a service error to the response taxonomy. Cross-tenant and
// missing ids share one NotFound message so existence never leaks.
func fail(c *fiber.Ctx, err error) error {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, service.ErrDuplicateUsername), errors.Is(err, service.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
