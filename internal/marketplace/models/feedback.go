package models

import (
	"time"

	"github.com/google/uuid"
)

// PlatformFeedback is a free-form note about the platform itself, left by
// an authenticated user. Only superusers read these back.
type PlatformFeedback struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Message   string     `gorm:"size:2000;not null" json:"message"`
	CreatedAt time.Time  `json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
}
