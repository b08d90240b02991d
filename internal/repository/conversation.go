// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// ConversationRepository defines the interface for conversation data operations
type ConversationRepository interface {
	Create(ctx context.Context, conversation *models.Conversation) error
	GetByMembers(ctx context.Context, firstID, secondID uint) (*models.Conversation, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *models.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewAlreadyExistsError("Conversation already exists")
		}
		return models.NewStorageError("conversation.create", err)
	}
	return nil
}

// GetByMembers finds a conversation between the two users regardless of which
// side created it.
func (r *conversationRepository) GetByMembers(ctx context.Context, firstID, secondID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).
		Where("(first_member_id = ? AND second_member_id = ?) OR (first_member_id = ? AND second_member_id = ?)",
			firstID, secondID, secondID, firstID).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError("conversation.get", err)
	}
	return &conversation, nil
}

func (r *conversationRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := r.db.WithContext(ctx).
		Preload("FirstMember").
		Preload("SecondMember").
		Where("first_member_id = ? OR second_member_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, models.NewStorageError("conversation.by_user", err)
	}
	return conversations, nil
}
