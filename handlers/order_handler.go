package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fleachain_backend/store"
)

type OrderHandler struct {
	Store *store.Store
}

func NewOrderHandler(st *store.Store) *OrderHandler {
	return &OrderHandler{Store: st}
}

// PurchaseProduct - POST /api/products/:id/purchase
//
// Opens an escrow order on an active product and takes it off the
// marketplace. Funds are "held" in name only; there is no payment rail
// behind the status label.
func (h *OrderHandler) PurchaseProduct(c *fiber.Ctx) error {
	order, err := h.Store.PurchaseProduct(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order created in escrow", "data": order})
}

// GetMyOrders - GET /api/orders
//
// Union of orders where the current user is buyer or seller.
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	user, ok := h.Store.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	orders, err := h.Store.UserOrders(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch orders"})
	}

	return c.JSON(fiber.Map{"data": orders})
}

// CompleteOrder - POST /api/orders/:id/complete
//
// Any logged-in session may complete any order; buyer identity is not
// verified and a terminal order can be re-stamped.
func (h *OrderHandler) CompleteOrder(c *fiber.Ctx) error {
	order, err := h.Store.CompleteTransaction(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order completed", "data": order})
}

// CancelOrder - POST /api/orders/:id/cancel
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	order, err := h.Store.CancelTransaction(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order cancelled", "data": order})
}
