package models

import (
	"time"
)

// Conversation links two distinct users. Messaging itself is out of scope;
// the record exists so clients can list who they have open threads with.
type Conversation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstMemberID  uint      `gorm:"not null;uniqueIndex:idx_conversation_members" json:"first_member_id"`
	SecondMemberID uint      `gorm:"not null;uniqueIndex:idx_conversation_members" json:"second_member_id"`
	CreatedAt      time.Time `json:"created_at"`

	FirstMember  User `gorm:"foreignKey:FirstMemberID" json:"first_member,omitempty"`
	SecondMember User `gorm:"foreignKey:SecondMemberID" json:"second_member,omitempty"`
}
