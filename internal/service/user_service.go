package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// UserService provides profile and account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the editable profile fields. Nil pointers leave
// the corresponding field untouched.
type UpdateProfileInput struct {
	UserID         uint
	FullName       *string
	Bio            *string
	ProfilePicture *string
	CoverPicture   *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the user together with their most recent posts.
func (s *UserService) GetProfile(ctx context.Context, userID uint, postLimit int) (*models.User, error) {
	return s.userRepo.GetByIDWithPosts(ctx, userID, postLimit)
}

// UpdateProfile applies the provided profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfilePicture != nil {
		user.ProfilePicture = *in.ProfilePicture
	}
	if in.CoverPicture != nil {
		user.CoverPicture = *in.CoverPicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, in.UserID)
}

// Search finds users whose username or full name contains the query.
func (s *UserService) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.userRepo.Search(ctx, query, limit, offset)
}

// DeleteAccount removes the user and every row that references them. The
// storage layer performs the whole cascade in one transaction, so a failure
// leaves the account intact for a retry.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteCascade(ctx, userID)
}
