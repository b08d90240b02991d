package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/notifications"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Follow(c.Context(), userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	if actor, err := s.userRepo.GetByID(c.Context(), userID); err == nil {
		s.notifyIfNotSelf(userID, targetID, notifications.NewFollowerEvent(actor.ID, actor.Username))
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Unfollow(c.Context(), userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// BlockUser handles POST /api/users/:id/block
func (s *Server) BlockUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Block(c.Context(), userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnblockUser handles DELETE /api/users/:id/block
func (s *Server) UnblockUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.Unblock(c.Context(), userID, targetID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.relationService.GetFollowers(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.relationService.GetFollowing(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}

// GetBlockedUsers handles GET /api/users/me/blocked
func (s *Server) GetBlockedUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	blocked, err := s.relationService.GetBlocked(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(blocked)
}
