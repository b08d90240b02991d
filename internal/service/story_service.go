package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// StoryService provides story business logic.
type StoryService struct {
	storyRepo repository.StoryRepository
}

// CreateStoryInput carries the fields for creating a story.
type CreateStoryInput struct {
	UserID   uint
	Text     string
	ImageURL string
}

// NewStoryService returns a new StoryService.
func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// CreateStory publishes a story.
func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	if in.Text == "" && in.ImageURL == "" {
		return nil, models.NewValidationError("A story needs text or an image")
	}

	story := &models.Story{
		UserID:   in.UserID,
		Text:     in.Text,
		ImageURL: in.ImageURL,
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Feed returns stories from users the viewer follows.
func (s *StoryService) Feed(ctx context.Context, viewerID uint) ([]models.Story, error) {
	return s.storyRepo.GetFeed(ctx, viewerID)
}

// OwnStories returns the user's own stories.
func (s *StoryService) OwnStories(ctx context.Context, userID uint) ([]models.Story, error) {
	return s.storyRepo.GetByUserID(ctx, userID)
}

// DeleteStory removes one story. Only the owner may delete.
func (s *StoryService) DeleteStory(ctx context.Context, userID, storyID uint) error {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return err
	}
	if story.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own stories")
	}
	return s.storyRepo.Delete(ctx, storyID)
}

// DeleteAllStories removes every story the user owns and reports how many went.
func (s *StoryService) DeleteAllStories(ctx context.Context, userID uint) (int64, error) {
	return s.storyRepo.DeleteAllByUser(ctx, userID)
}
