package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/models"
	"fleachain_backend/store"
)

type ReviewHandler struct {
	Store *store.Store
}

func NewReviewHandler(st *store.Store) *ReviewHandler {
	return &ReviewHandler{Store: st}
}

// CreateReviewRequest
type CreateReviewRequest struct {
	OrderID    string `json:"orderId"`
	ReceiverID string `json:"receiverId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// CreateReview - POST /api/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var fieldErrors []models.ErrorDetail
	if strings.TrimSpace(req.OrderID) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("orderId", "Order is required"))
	}
	if strings.TrimSpace(req.ReceiverID) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("receiverId", "Receiver is required"))
	}
	if req.Rating < 1 || req.Rating > 5 {
		fieldErrors = append(fieldErrors, models.FieldError("rating", "Rating must be between 1 and 5"))
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Validation failed", models.ValidationErrors{Errors: fieldErrors}))
	}

	review, err := h.Store.CreateReview(store.ReviewInput{
		OrderID:    req.OrderID,
		ReceiverID: req.ReceiverID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review created", "data": review})
}

// GetUserReviews - GET /api/users/:id/reviews
func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	reviews, err := h.Store.ReviewsForUser(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch reviews"})
	}
	return c.JSON(fiber.Map{"data": reviews})
}
