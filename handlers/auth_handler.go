package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/store"
	"fleachain_backend/utils"
)

type AuthHandler struct {
	Store    *store.Store
	TokenTTL time.Duration
}

func NewAuthHandler(st *store.Store, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{Store: st, TokenTTL: tokenTTL}
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login - POST /api/auth/login
//
// Resolves against the known users after the simulated wallet latency.
// The password field is accepted and ignored, matching the wallet-identity
// sign-in this fronts for.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username is required"})
	}

	ok, err := h.Store.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return storeError(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	user, _ := h.Store.CurrentUser()

	t, err := utils.GenerateToken(user.ID, h.TokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": t,
		"user": fiber.Map{
			"id":            user.ID,
			"username":      user.Username,
			"walletAddress": user.WalletAddress,
			"avatar":        user.Avatar,
			"reputation":    user.Reputation,
		},
	})
}

// Logout - POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Store.Logout()
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Profile - GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, ok := h.Store.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	// Listings are always derived from the products table, never read off
	// the user record.
	listings, err := h.Store.UserListings(user.ID)
	if err != nil {
		return storeError(c, err)
	}
	user.Listings = listings

	return c.JSON(fiber.Map{"data": user})
}
