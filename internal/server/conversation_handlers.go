package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/notifications"
)

// OpenConversation handles POST /api/conversations. Messaging is not
// implemented; a conversation is a placeholder between two users and opening
// one is idempotent.
func (s *Server) OpenConversation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("user_id is required"))
	}

	conversation, err := s.conversationService.OpenConversation(c.Context(), userID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if actor, actorErr := s.userRepo.GetByID(c.Context(), userID); actorErr == nil {
		s.notifyIfNotSelf(userID, req.UserID,
			notifications.ConversationOpenedEvent(actor.ID, actor.Username, conversation.ID))
	}

	return c.Status(fiber.StatusCreated).JSON(conversation)
}

// GetConversations handles GET /api/conversations
func (s *Server) GetConversations(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	conversations, err := s.conversationService.ListConversations(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(conversations)
}
