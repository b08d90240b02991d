package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxCommentLen = 10000

// CommentService provides comment and reply business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput carries the fields for creating a comment.
type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// ReplyInput addresses a reply through its parent comment.
type ReplyInput struct {
	UserID    uint
	CommentID uint
	ReplyID   uint
	Content   string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment adds a comment to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

// ListComments returns a post's comments with authors and replies.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int, viewerID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.commentRepo.GetByPostID(ctx, postID, limit, offset, viewerID)
}

// UpdateComment edits a comment's content. Only the comment owner may edit.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID, userID)
}

// DeleteComment removes a comment, its replies and like rows. The comment
// owner and the post owner may delete.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID, 0)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID, 0)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return models.NewUnauthorizedError("You can only delete your own comments or comments on your posts")
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// LikeComment records a like. Liking twice is rejected.
func (s *CommentService) LikeComment(ctx context.Context, userID, commentID uint) error {
	if _, err := s.commentRepo.GetByID(ctx, commentID, 0); err != nil {
		return err
	}
	inserted, err := s.commentRepo.Like(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if !inserted {
		return models.NewAlreadyExistsError("You already liked this comment")
	}
	return nil
}

// UnlikeComment removes a like. Removing an absent like is rejected.
func (s *CommentService) UnlikeComment(ctx context.Context, userID, commentID uint) error {
	if _, err := s.commentRepo.GetByID(ctx, commentID, 0); err != nil {
		return err
	}
	removed, err := s.commentRepo.Unlike(ctx, userID, commentID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewInvalidOperationError("You have not liked this comment")
	}
	return nil
}

// CreateReply adds a reply under an existing comment.
func (s *CommentService) CreateReply(ctx context.Context, in ReplyInput) (*models.Reply, error) {
	if _, err := s.commentRepo.GetByID(ctx, in.CommentID, 0); err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Reply too long (max 10000 characters)")
	}

	reply := &models.Reply{
		Content:   in.Content,
		UserID:    in.UserID,
		CommentID: in.CommentID,
	}
	if err := s.commentRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return s.commentRepo.GetReply(ctx, in.CommentID, reply.ID)
}

// canEditReply reports whether userID may edit or delete the reply: the reply
// owner and the parent comment owner both qualify.
func (s *CommentService) canEditReply(ctx context.Context, userID uint, reply *models.Reply) (bool, error) {
	if reply.UserID == userID {
		return true, nil
	}
	comment, err := s.commentRepo.GetByID(ctx, reply.CommentID, 0)
	if err != nil {
		return false, err
	}
	return comment.UserID == userID, nil
}

// UpdateReply edits a reply's content.
func (s *CommentService) UpdateReply(ctx context.Context, in ReplyInput) (*models.Reply, error) {
	reply, err := s.commentRepo.GetReply(ctx, in.CommentID, in.ReplyID)
	if err != nil {
		return nil, err
	}
	ok, err := s.canEditReply(ctx, in.UserID, reply)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewUnauthorizedError("You can only edit your own replies or replies on your comments")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	reply.Content = in.Content
	if err := s.commentRepo.UpdateReply(ctx, reply); err != nil {
		return nil, err
	}
	return s.commentRepo.GetReply(ctx, in.CommentID, in.ReplyID)
}

// DeleteReply removes a reply and its like rows. The parent comment survives.
func (s *CommentService) DeleteReply(ctx context.Context, in ReplyInput) error {
	reply, err := s.commentRepo.GetReply(ctx, in.CommentID, in.ReplyID)
	if err != nil {
		return err
	}
	ok, err := s.canEditReply(ctx, in.UserID, reply)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewUnauthorizedError("You can only delete your own replies or replies on your comments")
	}
	return s.commentRepo.DeleteReply(ctx, in.ReplyID)
}

// LikeReply records a like on a reply. Liking twice is rejected.
func (s *CommentService) LikeReply(ctx context.Context, in ReplyInput) error {
	if _, err := s.commentRepo.GetReply(ctx, in.CommentID, in.ReplyID); err != nil {
		return err
	}
	inserted, err := s.commentRepo.LikeReply(ctx, in.UserID, in.ReplyID)
	if err != nil {
		return err
	}
	if !inserted {
		return models.NewAlreadyExistsError("You already liked this reply")
	}
	return nil
}

// UnlikeReply removes a like from a reply. Removing an absent like is rejected.
func (s *CommentService) UnlikeReply(ctx context.Context, in ReplyInput) error {
	if _, err := s.commentRepo.GetReply(ctx, in.CommentID, in.ReplyID); err != nil {
		return err
	}
	removed, err := s.commentRepo.UnlikeReply(ctx, in.UserID, in.ReplyID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewInvalidOperationError("You have not liked this reply")
	}
	return nil
}
