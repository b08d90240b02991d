// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, query string, limit, offset int) ([]models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// applyUserDetails adds subqueries computing follower counts in a single query.
func applyUserDetails(db *gorm.DB) *gorm.DB {
	return db.Select("users.*, " +
		"(SELECT COUNT(*) FROM follows WHERE follows.followee_id = users.id) as followers_count, " +
		"(SELECT COUNT(*) FROM follows WHERE follows.follower_id = users.id) as following_count")
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := applyUserDetails(r.db.WithContext(ctx)).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewStorageError("user.get", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	var user models.User
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	if err := applyUserDetails(r.db.WithContext(ctx)).
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(limit)
		}).
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewStorageError("user.get_with_posts", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError("user.get_by_email", err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewStorageError("user.get_by_username", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewAlreadyExistsError("User already exists")
		}
		return models.NewStorageError("user.create", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.NewAlreadyExistsError("Username or email already taken")
		}
		return models.NewStorageError("user.update", err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	var users []models.User
	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("username ILIKE ? OR full_name ILIKE ?", like, like).
		Order("username ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewStorageError("user.search", err)
	}
	return users, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewStorageError("user.list", err)
	}
	return users, nil
}

// DeleteCascade removes a user and everything that references them inside a
// single transaction. Parents that merely lose leaf rows (a post losing a like,
// a comment losing a reply) survive; rows owned by or pointing at the user go.
// A failure at any step rolls the whole procedure back so the account is never
// left half-deleted.
func (r *userRepository) DeleteCascade(ctx context.Context, id uint) error {
	start := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewStorageError("user.delete", err)
		}

		// Subquery builders are single-use in GORM, so each step gets a
		// fresh one.
		ownedPosts := func() *gorm.DB {
			return tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		}
		deadComments := func() *gorm.DB {
			return tx.Model(&models.Comment{}).Select("id").
				Where("user_id = ? OR post_id IN (?)", id, ownedPosts())
		}
		deadReplies := func() *gorm.DB {
			return tx.Model(&models.Reply{}).Select("id").
				Where("user_id = ? OR comment_id IN (?)", id, deadComments())
		}

		// Leaves first so no foreign key is left dangling mid-transaction.
		steps := []struct {
			table string
			run   func() *gorm.DB
		}{
			{"reply_likes", func() *gorm.DB {
				return tx.Where("user_id = ? OR reply_id IN (?)", id, deadReplies()).Delete(&models.ReplyLike{})
			}},
			{"replies", func() *gorm.DB {
				return tx.Unscoped().
					Where("user_id = ? OR comment_id IN (?)", id, deadComments()).Delete(&models.Reply{})
			}},
			{"comment_likes", func() *gorm.DB {
				return tx.Where("user_id = ? OR comment_id IN (?)", id, deadComments()).Delete(&models.CommentLike{})
			}},
			{"comments", func() *gorm.DB {
				return tx.Unscoped().
					Where("user_id = ? OR post_id IN (?)", id, ownedPosts()).Delete(&models.Comment{})
			}},
			{"post_likes", func() *gorm.DB {
				return tx.Where("user_id = ? OR post_id IN (?)", id, ownedPosts()).Delete(&models.PostLike{})
			}},
			{"posts", func() *gorm.DB {
				return tx.Unscoped().Where("user_id = ?", id).Delete(&models.Post{})
			}},
			{"stories", func() *gorm.DB {
				return tx.Where("user_id = ?", id).Delete(&models.Story{})
			}},
			{"follows", func() *gorm.DB {
				return tx.Where("follower_id = ?", id).Or("followee_id = ?", id).Delete(&models.Follow{})
			}},
			{"blocks", func() *gorm.DB {
				return tx.Where("blocker_id = ?", id).Or("blocked_id = ?", id).Delete(&models.Block{})
			}},
			{"conversations", func() *gorm.DB {
				return tx.Where("first_member_id = ?", id).Or("second_member_id = ?", id).Delete(&models.Conversation{})
			}},
		}

		for _, step := range steps {
			res := step.run()
			if res.Error != nil {
				return models.NewStorageError("user.cascade."+step.table, res.Error)
			}
			observability.AccountCascadeRowsDeleted.WithLabelValues(step.table).Add(float64(res.RowsAffected))
		}

		if err := tx.Unscoped().Delete(&models.User{}, id).Error; err != nil {
			return models.NewStorageError("user.cascade.users", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	observability.AccountCascadeDuration.Observe(time.Since(start).Seconds())
	cache.InvalidateUser(ctx, id)
	cache.InvalidateRelations(ctx, id)
	return nil
}
