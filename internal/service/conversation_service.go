package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// ConversationService provides conversation business logic. Messaging inside
// conversations is not implemented; this service only opens and lists them.
type ConversationService struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
}

// NewConversationService returns a new ConversationService.
func NewConversationService(conversationRepo repository.ConversationRepository, userRepo repository.UserRepository) *ConversationService {
	return &ConversationService{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
	}
}

// OpenConversation creates a conversation between two distinct users, or
// returns the existing one.
func (s *ConversationService) OpenConversation(ctx context.Context, userID, otherUserID uint) (*models.Conversation, error) {
	if userID == otherUserID {
		return nil, models.NewInvalidOperationError("A conversation needs two distinct participants")
	}
	if _, err := s.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}

	existing, err := s.conversationRepo.GetByMembers(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// Store the pair in normalized order so the unique index holds
	// regardless of which side opened it.
	firstID, secondID := userID, otherUserID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}
	conversation := &models.Conversation{
		FirstMemberID:  firstID,
		SecondMemberID: secondID,
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// ListConversations returns the user's conversations.
func (s *ConversationService) ListConversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	return s.conversationRepo.GetByUserID(ctx, userID)
}
