package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/store"
)

type MessageHandler struct {
	Store *store.Store
}

func NewMessageHandler(st *store.Store) *MessageHandler {
	return &MessageHandler{Store: st}
}

// SendMessageRequest
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// SendMessage - POST /api/messages
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if strings.TrimSpace(req.ReceiverID) == "" || strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Receiver and content are required"})
	}

	message, err := h.Store.SendMessage(req.ReceiverID, req.Content)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message sent", "data": message})
}

// GetMyMessages - GET /api/messages
//
// Union of messages sent and received by the current user. There is no
// thread grouping; clients partition by participant id.
func (h *MessageHandler) GetMyMessages(c *fiber.Ctx) error {
	user, ok := h.Store.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	messages, err := h.Store.UserMessages(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch messages"})
	}

	return c.JSON(fiber.Map{"data": messages})
}
