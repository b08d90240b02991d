package models

import (
	"time"
)

// PostLike represents a user's like on a post.
// The combination of UserID and PostID must be unique. Like edges are
// hard-deleted so a removed like can be re-created without index conflicts.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"post"`
}

// CommentLike represents a user's like on a comment.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_like_user_comment" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment"`
}

// ReplyLike represents a user's like on a reply.
type ReplyLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reply_like_user_reply" json:"user_id"`
	ReplyID   uint      `gorm:"not null;uniqueIndex:idx_reply_like_user_reply" json:"reply_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user"`
	Reply Reply `gorm:"foreignKey:ReplyID" json:"reply"`
}
