// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint) (*models.Story, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Story, error)
	GetFeed(ctx context.Context, userID uint) ([]models.Story, error)
	Delete(ctx context.Context, id uint) error
	DeleteAllByUser(ctx context.Context, userID uint) (int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return models.NewStorageError("story.create", err)
	}
	cache.Invalidate(ctx, cache.StoryFeedKey(story.UserID))
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).Preload("User").First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Story", id)
		}
		return nil, models.NewStorageError("story.get", err)
	}
	return &story, nil
}

func (r *storyRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Story, error) {
	var stories []models.Story
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, models.NewStorageError("story.by_user", err)
	}
	return stories, nil
}

// GetFeed returns stories posted by the users the viewer follows.
func (r *storyRepository) GetFeed(ctx context.Context, userID uint) ([]models.Story, error) {
	var stories []models.Story
	err := cache.Aside(ctx, cache.StoryFeedKey(userID), &stories, cache.StoryFeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Where("user_id IN (?)",
				r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", userID)).
			Order("created_at DESC").
			Find(&stories).Error; err != nil {
			return models.NewStorageError("story.feed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *storyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Story{}, id).Error; err != nil {
		return models.NewStorageError("story.delete", err)
	}
	return nil
}

func (r *storyRepository) DeleteAllByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Story{})
	if res.Error != nil {
		return 0, models.NewStorageError("story.delete_all", res.Error)
	}
	cache.Invalidate(ctx, cache.StoryFeedKey(userID))
	return res.RowsAffected, nil
}
