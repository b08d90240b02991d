// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Feed(ctx context.Context, currentUserID uint, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) (bool, error)
	Unlike(ctx context.Context, userID, postID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewStorageError("post.create", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	fetch := func() error {
		if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewStorageError("post.get", err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		// Viewer-independent reads can be served from the cache.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewStorageError("post.by_user", err)
	}
	return posts, nil
}

// Feed lists recent posts excluding those whose authors the viewer has blocked.
func (r *postRepository) Feed(ctx context.Context, currentUserID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	q := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User")
	if currentUserID != 0 {
		q = q.Where("user_id NOT IN (?)",
			r.db.Model(&models.Block{}).Select("blocked_id").Where("blocker_id = ?", currentUserID))
	}
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewStorageError("post.feed", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewStorageError("post.update", err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes the post together with its comments, replies and like rows
// in one transaction.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postComments := func() *gorm.DB {
			return tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
		}
		postReplies := func() *gorm.DB {
			return tx.Model(&models.Reply{}).Select("id").Where("comment_id IN (?)", postComments())
		}

		if err := tx.Where("reply_id IN (?)", postReplies()).Delete(&models.ReplyLike{}).Error; err != nil {
			return models.NewStorageError("post.delete.reply_likes", err)
		}
		if err := tx.Where("comment_id IN (?)", postComments()).Delete(&models.Reply{}).Error; err != nil {
			return models.NewStorageError("post.delete.replies", err)
		}
		if err := tx.Where("comment_id IN (?)", postComments()).Delete(&models.CommentLike{}).Error; err != nil {
			return models.NewStorageError("post.delete.comment_likes", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return models.NewStorageError("post.delete.comments", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return models.NewStorageError("post.delete.post_likes", err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return models.NewStorageError("post.delete", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING handles concurrent likes atomically;
	// RowsAffected == 0 means this user already liked the post.
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO post_likes (user_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID,
	)
	if res.Error != nil {
		return false, models.NewStorageError("post.like", res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.PostLike{})
	if res.Error != nil {
		return false, models.NewStorageError("post.unlike", res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return res.RowsAffected > 0, nil
}
