// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment and reply data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, commentID uint) (bool, error)
	Unlike(ctx context.Context, userID, commentID uint) (bool, error)

	CreateReply(ctx context.Context, reply *models.Reply) error
	GetReply(ctx context.Context, commentID, replyID uint) (*models.Reply, error)
	UpdateReply(ctx context.Context, reply *models.Reply) error
	DeleteReply(ctx context.Context, replyID uint) error
	LikeReply(ctx context.Context, userID, replyID uint) (bool, error)
	UnlikeReply(ctx context.Context, userID, replyID uint) (bool, error)
}

// commentRepository implements CommentRepository
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// applyCommentDetails adds subqueries to fetch counts and liked status in a single query.
func (r *commentRepository) applyCommentDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "comments.*, " +
		"(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM comment_likes WHERE comment_likes.comment_id = comments.id AND comment_likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewStorageError("comment.create", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewStorageError("comment.get", err)
	}
	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.applyCommentDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Select("replies.*, " +
				"(SELECT COUNT(*) FROM reply_likes WHERE reply_likes.reply_id = replies.id) as likes_count").
				Order("created_at ASC")
		}).
		Preload("Replies.User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error; err != nil {
		return nil, models.NewStorageError("comment.by_post", err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{ID: comment.ID}).
		Update("content", comment.Content).Error; err != nil {
		return models.NewStorageError("comment.update", err)
	}
	return nil
}

// Delete removes the comment, its replies and all associated like rows in one
// transaction.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentReplies := func() *gorm.DB {
			return tx.Model(&models.Reply{}).Select("id").Where("comment_id = ?", id)
		}

		if err := tx.Where("reply_id IN (?)", commentReplies()).Delete(&models.ReplyLike{}).Error; err != nil {
			return models.NewStorageError("comment.delete.reply_likes", err)
		}
		if err := tx.Where("comment_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
			return models.NewStorageError("comment.delete.replies", err)
		}
		if err := tx.Where("comment_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
			return models.NewStorageError("comment.delete.likes", err)
		}
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return models.NewStorageError("comment.delete", err)
		}
		return nil
	})
}

func (r *commentRepository) Like(ctx context.Context, userID, commentID uint) (bool, error) {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO comment_likes (user_id, comment_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, comment_id) DO NOTHING`,
		userID, commentID,
	)
	if res.Error != nil {
		return false, models.NewStorageError("comment.like", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *commentRepository) Unlike(ctx context.Context, userID, commentID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return false, models.NewStorageError("comment.unlike", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *commentRepository) CreateReply(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewStorageError("reply.create", err)
	}
	return nil
}

// GetReply looks up a reply by ID scoped to its parent comment, so a reply ID
// belonging to a different comment reads as absent.
func (r *commentRepository) GetReply(ctx context.Context, commentID, replyID uint) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.WithContext(ctx).
		Select("replies.*, (SELECT COUNT(*) FROM reply_likes WHERE reply_likes.reply_id = replies.id) as likes_count").
		Preload("User").
		Where("id = ? AND comment_id = ?", replyID, commentID).
		First(&reply).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reply", replyID)
		}
		return nil, models.NewStorageError("reply.get", err)
	}
	return &reply, nil
}

func (r *commentRepository) UpdateReply(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Reply{ID: reply.ID}).
		Update("content", reply.Content).Error; err != nil {
		return models.NewStorageError("reply.update", err)
	}
	return nil
}

// DeleteReply removes the reply and its like rows. The parent comment is left
// intact.
func (r *commentRepository) DeleteReply(ctx context.Context, replyID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reply_id = ?", replyID).Delete(&models.ReplyLike{}).Error; err != nil {
			return models.NewStorageError("reply.delete.likes", err)
		}
		if err := tx.Delete(&models.Reply{}, replyID).Error; err != nil {
			return models.NewStorageError("reply.delete", err)
		}
		return nil
	})
}

func (r *commentRepository) LikeReply(ctx context.Context, userID, replyID uint) (bool, error) {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO reply_likes (user_id, reply_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, reply_id) DO NOTHING`,
		userID, replyID,
	)
	if res.Error != nil {
		return false, models.NewStorageError("reply.like", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *commentRepository) UnlikeReply(ctx context.Context, userID, replyID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND reply_id = ?", userID, replyID).
		Delete(&models.ReplyLike{})
	if res.Error != nil {
		return false, models.NewStorageError("reply.unlike", res.Error)
	}
	return res.RowsAffected > 0, nil
}
