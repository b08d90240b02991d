package models

import (
	"time"
)

// Follow represents a directed follow edge between two users.
// Follower and following lists are the two projections of this table,
// so the two views can never disagree.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// Block represents a directed block edge. Blocking is one-sided state:
// only the blocker's list records it, though creating the edge also severs
// follow edges in both directions.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`

	Blocker User `gorm:"foreignKey:BlockerID" json:"blocker,omitempty"`
	Blocked User `gorm:"foreignKey:BlockedID" json:"blocked,omitempty"`
}

// TableName specifies the table name for GORM
func (Block) TableName() string {
	return "blocks"
}
