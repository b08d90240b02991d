package server

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/models"
	"ripple/internal/notifications"
	"ripple/internal/service"
)

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if post, postErr := s.postService.GetPost(c.Context(), postID, 0); postErr == nil {
		if actor, actorErr := s.userRepo.GetByID(c.Context(), userID); actorErr == nil {
			s.notifyIfNotSelf(userID, post.UserID,
				notifications.NewCommentEvent(actor.ID, actor.Username, postID, comment.ID))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)
	viewerID, _ := s.optionalUserID(c)

	comments, err := s.commentService.ListComments(c.Context(), postID, page.Limit, page.Offset, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// UpdateComment handles PUT /api/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), userID, commentID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), userID, commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.LikeComment(c.Context(), userID, commentID); err != nil {
		return respondServiceError(c, err)
	}

	if comment, commentErr := s.commentRepo.GetByID(c.Context(), commentID, 0); commentErr == nil {
		if actor, actorErr := s.userRepo.GetByID(c.Context(), userID); actorErr == nil {
			s.notifyIfNotSelf(userID, comment.UserID,
				notifications.CommentLikedEvent(actor.ID, actor.Username, commentID))
		}
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnlikeComment handles DELETE /api/comments/:id/like
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.UnlikeComment(c.Context(), userID, commentID); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateReply handles POST /api/comments/:id/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.commentService.CreateReply(c.Context(), service.ReplyInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if comment, commentErr := s.commentRepo.GetByID(c.Context(), commentID, 0); commentErr == nil {
		if actor, actorErr := s.userRepo.GetByID(c.Context(), userID); actorErr == nil {
			s.notifyIfNotSelf(userID, comment.UserID,
				notifications.NewReplyEvent(actor.ID, actor.Username, commentID, reply.ID))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}

// UpdateReply handles PUT /api/comments/:id/replies/:replyId
func (s *Server) UpdateReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.commentService.UpdateReply(c.Context(), service.ReplyInput{
		UserID:    userID,
		CommentID: commentID,
		ReplyID:   replyID,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(reply)
}

// DeleteReply handles DELETE /api/comments/:id/replies/:replyId
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteReply(c.Context(), service.ReplyInput{
		UserID:    userID,
		CommentID: commentID,
		ReplyID:   replyID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LikeReply handles POST /api/comments/:id/replies/:replyId/like
func (s *Server) LikeReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	if err := s.commentService.LikeReply(c.Context(), service.ReplyInput{
		UserID:    userID,
		CommentID: commentID,
		ReplyID:   replyID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// UnlikeReply handles DELETE /api/comments/:id/replies/:replyId/like
func (s *Server) UnlikeReply(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	if err := s.commentService.UnlikeReply(c.Context(), service.ReplyInput{
		UserID:    userID,
		CommentID: commentID,
		ReplyID:   replyID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
