package models

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's rating of another after a completed collaboration.
// Creation requires an accepted ProjectRequest linking the two parties.
type Review struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID       uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	ReviewedUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewed_user_id"`
	Rating         int       `gorm:"not null;check:rating BETWEEN 1 AND 5" json:"rating"`
	Comment        string    `gorm:"size:2000" json:"comment"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Author       *User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author,omitempty"`
	ReviewedUser *User `gorm:"foreignKey:ReviewedUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviewed_user,omitempty"`
}
