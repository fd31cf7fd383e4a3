package handler

import (
	"go-inventory-genie/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	catalog service.CatalogService
}

func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns the caller's batches in expiry order.
// GET /api/products?category=&status=&days=&threshold=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	opts := service.ListOptions{
		Category:          c.Query("category"),
		Status:            c.Query("status"),
		ExpiryWindowDays:  c.QueryInt("days"),
		LowStockThreshold: c.QueryInt("threshold"),
	}

	batches, err := h.catalog.ListBatches(currentUserID(c), opts)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(batches)
}

// Create adds a batch, finding or creating its base product.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	batch, err := h.catalog.CreateBatch(currentUserID(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(batch)
}

// Update mutates batch-level fields only.
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	batch, err := h.catalog.UpdateBatch(currentUserID(c), batchID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(batch)
}

// Delete removes a batch.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.catalog.DeleteBatch(currentUserID(c), batchID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product batch deleted successfully"})
}

// Grouped returns batches keyed by base product.
// GET /api/products/grouped
func (h *ProductHandler) Grouped(c *fiber.Ctx) error {
	grouped, err := h.catalog.GroupedByBaseProduct(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(grouped)
}

// ByName searches batches by base product name.
// GET /api/products/by-name/:name
func (h *ProductHandler) ByName(c *fiber.Ctx) error {
	batches, err := h.catalog.FindBatchesByName(currentUserID(c), c.Params("name"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(batches)
}

// Alerts buckets the caller's stock into expired / expiring / low.
// GET /api/products/alerts?days=&threshold=
func (h *ProductHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.catalog.Alerts(currentUserID(c), c.QueryInt("days"), c.QueryInt("threshold"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(alerts)
}

// Legacy serves the flat pre-batch product rows for old clients.
// GET /api/products/legacy
func (h *ProductHandler) Legacy(c *fiber.Ctx) error {
	products, err := h.catalog.LegacyProducts(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}
