package handler

import (
	"time"

	"go-inventory-genie/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// referenceMonth parses ?month=YYYY-MM, defaulting to now.
func referenceMonth(c *fiber.Ctx) (time.Time, error) {
	month := c.Query("month")
	if month == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01", month)
}

// Monthly returns the caller's report for the requested month.
// GET /api/reports/monthly?month=YYYY-MM
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	ref, err := referenceMonth(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month, use YYYY-MM"})
	}

	summary, err := h.reports.Monthly(currentUserID(c), ref)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// Share snapshots the current month's report under an opaque token.
// POST /api/reports/share
func (h *ReportHandler) Share(c *fiber.Ctx) error {
	ref, err := referenceMonth(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month, use YYYY-MM"})
	}

	shared, err := h.reports.Share(currentUserID(c), ref)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(shared)
}

// Shared serves a snapshot publicly, read-only.
// GET /api/reports/shared/:id
func (h *ReportHandler) Shared(c *fiber.Ctx) error {
	shared, err := h.reports.Shared(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(shared)
}
