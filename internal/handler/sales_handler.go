package handler

import (
	"go-inventory-genie/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	sales service.SalesService
}

func NewSalesHandler(sales service.SalesService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// List returns the caller's sales, newest first.
// GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	sales, err := h.sales.ListSales(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sales)
}

// Record sells from a batch: one operation that decrements stock and
// writes the ledger entry, so a stock failure leaves no sale behind.
// POST /api/sales
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	var req service.SellRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sale, err := h.sales.Sell(currentUserID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(sale)
}

// Clear deletes all of the caller's sales.
// DELETE /api/sales
func (h *SalesHandler) Clear(c *fiber.Ctx) error {
	deleted, err := h.sales.ClearSales(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sales cleared", "deleted": deleted})
}
