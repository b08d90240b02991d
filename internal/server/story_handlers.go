package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/service"
)

// CreateStory handles POST /api/stories
func (s *Server) CreateStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text     string `json:"text"`
		ImageURL string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.CreateStory(c.Context(), service.CreateStoryInput{
		UserID:   userID,
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(story)
}

// GetStoryFeed handles GET /api/stories/feed. It returns stories from users
// the viewer follows.
func (s *Server) GetStoryFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stories, err := s.storyService.Feed(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stories)
}

// GetMyStories handles GET /api/stories/me
func (s *Server) GetMyStories(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stories, err := s.storyService.OwnStories(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(stories)
}

// DeleteStory handles DELETE /api/stories/:id
func (s *Server) DeleteStory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	storyID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.storyService.DeleteStory(c.Context(), userID, storyID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAllMyStories handles DELETE /api/stories/me
func (s *Server) DeleteAllMyStories(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	deleted, err := s.storyService.DeleteAllStories(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}
