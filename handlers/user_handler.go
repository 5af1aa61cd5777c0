package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fleachain_backend/store"
)

type UserHandler struct {
	Store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{Store: st}
}

// GetUser - GET /api/users/:id
//
// Seller profile with their listings. The listings slice is recomputed from
// the products table on every request, so it can never go stale.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.Store.SellerByID(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}
