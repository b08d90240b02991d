// Package service implements the application's business logic.
package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// RelationService provides follow and block business logic.
type RelationService struct {
	relationRepo repository.RelationRepository
	userRepo     repository.UserRepository
}

// NewRelationService returns a new RelationService.
func NewRelationService(relationRepo repository.RelationRepository, userRepo repository.UserRepository) *RelationService {
	return &RelationService{
		relationRepo: relationRepo,
		userRepo:     userRepo,
	}
}

// Follow creates a follow edge from userID to targetUserID.
func (s *RelationService) Follow(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewInvalidOperationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	created, err := s.relationRepo.CreateFollow(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !created {
		return models.NewAlreadyExistsError("You already follow this user")
	}
	return nil
}

// Unfollow removes the follow edge from userID to targetUserID.
func (s *RelationService) Unfollow(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewInvalidOperationError("You cannot unfollow yourself")
	}

	removed, err := s.relationRepo.DeleteFollow(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Follow", targetUserID)
	}
	return nil
}

// Block records that userID blocked targetUserID. Any follow edges between
// the two users are severed in the same transaction.
func (s *RelationService) Block(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewInvalidOperationError("You cannot block yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	created, err := s.relationRepo.CreateBlock(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !created {
		return models.NewAlreadyExistsError("You already blocked this user")
	}
	return nil
}

// Unblock removes the block edge. Follow edges severed by the block are not
// restored.
func (s *RelationService) Unblock(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewInvalidOperationError("You cannot unblock yourself")
	}

	removed, err := s.relationRepo.DeleteBlock(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Block", targetUserID)
	}
	return nil
}

// GetFollowers returns users following userID.
func (s *RelationService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relationRepo.GetFollowers(ctx, userID)
}

// GetFollowing returns users that userID follows.
func (s *RelationService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.relationRepo.GetFollowing(ctx, userID)
}

// GetBlocked returns users that userID has blocked.
func (s *RelationService) GetBlocked(ctx context.Context, userID uint) ([]models.User, error) {
	return s.relationRepo.GetBlocked(ctx, userID)
}
