// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post in the Ripple application.
type Comment struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Content string  `gorm:"not null" json:"content"`
	UserID  uint    `gorm:"not null" json:"user_id"`
	PostID  uint    `gorm:"not null;index" json:"post_id"`
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Post    Post    `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Replies []Reply `gorm:"foreignKey:CommentID" json:"replies,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this comment (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reply represents a nested reply under a comment. Replies are addressed by
// their own ID rather than by position inside the parent comment.
type Reply struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"not null" json:"content"`
	UserID    uint   `gorm:"not null" json:"user_id"`
	CommentID uint   `gorm:"not null;index" json:"comment_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int            `gorm:"->" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
