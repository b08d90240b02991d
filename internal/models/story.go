package models

import (
	"time"
)

// Story represents a short-lived piece of content. Expiry is not enforced
// here; stories carry a creation timestamp so surrounding infrastructure
// can reap them.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
