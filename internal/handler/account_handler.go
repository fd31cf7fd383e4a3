package handler

import (
	"go-inventory-genie/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accounts service.AccountService
}

func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// DeleteAccount removes the caller and everything they own.
// DELETE /api/user/delete
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	deleted, err := h.accounts.DeleteAccount(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Account and all associated data deleted successfully",
		"deleted_user": deleted,
	})
}
