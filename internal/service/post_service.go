package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxCaptionLen = 2200

// PostService provides post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields for creating a post.
type CreatePostInput struct {
	UserID  uint
	Caption string
	Images  []string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a post owned by the given user.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Caption == "" && len(in.Images) == 0 {
		return nil, models.NewValidationError("A post needs a caption or at least one image")
	}
	if len(in.Caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2200 characters)")
	}

	post := &models.Post{
		UserID:  in.UserID,
		Caption: in.Caption,
		Images:  in.Images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns a post with viewer-dependent like state.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// Feed lists recent posts, excluding authors the viewer has blocked.
func (s *PostService) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.Feed(ctx, viewerID, limit, offset)
}

// ListUserPosts lists a user's posts.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, viewerID)
}

// UpdatePost edits a post's caption. Only the owner may edit.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, caption string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}
	if len(caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2200 characters)")
	}

	post.Caption = caption
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}

// DeletePost removes a post and its dependents. Only the owner may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records a like. Liking twice is rejected.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return err
	}
	inserted, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !inserted {
		return models.NewAlreadyExistsError("You already liked this post")
	}
	return nil
}

// UnlikePost removes a like. Removing an absent like is rejected.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return err
	}
	removed, err := s.postRepo.Unlike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewInvalidOperationError("You have not liked this post")
	}
	return nil
}
