// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// RelationRepository defines the interface for follow and block edge operations.
// Edge inserts are conditional at the storage layer: the bool results report
// whether the edge actually changed, so callers can distinguish "created" from
// "already there" without a read-modify-write race.
type RelationRepository interface {
	CreateFollow(ctx context.Context, followerID, followeeID uint) (bool, error)
	DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	GetFollowers(ctx context.Context, userID uint) ([]models.User, error)
	GetFollowing(ctx context.Context, userID uint) ([]models.User, error)
	GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	CreateBlock(ctx context.Context, blockerID, blockedID uint) (bool, error)
	DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error)
	IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error)
	GetBlocked(ctx context.Context, blockerID uint) ([]models.User, error)
	GetBlockedIDs(ctx context.Context, blockerID uint) ([]uint, error)
}

type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository creates a new relation repository
func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) CreateFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING is atomic; RowsAffected == 0 means
	// the edge already existed.
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (follower_id, followee_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	if res.Error != nil {
		return false, models.NewStorageError("follow.create", res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateRelations(ctx, followerID)
		cache.InvalidateRelations(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, models.NewStorageError("follow.delete", res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateRelations(ctx, followerID)
		cache.InvalidateRelations(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewStorageError("follow.exists", err)
	}
	return count > 0, nil
}

func (r *relationRepository) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.FollowersKey(userID), &users, cache.RelationTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN follows f ON users.id = f.follower_id").
			Where("f.followee_id = ?", userID).
			Find(&users).Error; err != nil {
			return models.NewStorageError("follow.followers", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *relationRepository) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.FollowingKey(userID), &users, cache.RelationTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("users").
			Joins("JOIN follows f ON users.id = f.followee_id").
			Where("f.follower_id = ?", userID).
			Find(&users).Error; err != nil {
			return models.NewStorageError("follow.following", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *relationRepository) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, models.NewStorageError("follow.following_ids", err)
	}
	return ids, nil
}

// CreateBlock inserts the block edge and severs follow edges in both
// directions inside the same transaction.
func (r *relationRepository) CreateBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO blocks (blocker_id, blocked_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (blocker_id, blocked_id) DO NOTHING`,
			blockerID, blockedID,
		)
		if res.Error != nil {
			return models.NewStorageError("block.create", res.Error)
		}
		created = res.RowsAffected > 0
		if !created {
			return nil
		}

		if err := tx.
			Where("(follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)",
				blockerID, blockedID, blockedID, blockerID).
			Delete(&models.Follow{}).Error; err != nil {
			return models.NewStorageError("block.sever_follows", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		cache.InvalidateRelations(ctx, blockerID)
		cache.InvalidateRelations(ctx, blockedID)
	}
	return created, nil
}

// DeleteBlock removes the block edge. Severed follow edges are not restored.
func (r *relationRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if res.Error != nil {
		return false, models.NewStorageError("block.delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository) IsBlocked(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error; err != nil {
		return false, models.NewStorageError("block.exists", err)
	}
	return count > 0, nil
}

func (r *relationRepository) GetBlocked(ctx context.Context, blockerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN blocks b ON users.id = b.blocked_id").
		Where("b.blocker_id = ?", blockerID).
		Find(&users).Error; err != nil {
		return nil, models.NewStorageError("block.list", err)
	}
	return users, nil
}

func (r *relationRepository) GetBlockedIDs(ctx context.Context, blockerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Block{}).
		Where("blocker_id = ?", blockerID).
		Pluck("blocked_id", &ids).Error; err != nil {
		return nil, models.NewStorageError("block.list_ids", err)
	}
	return ids, nil
}
