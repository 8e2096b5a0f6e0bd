package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectShortlist marks a vendor as hand-picked by the project's owning
// company. Pure membership, no status; rows are cascade-deleted with either
// parent. The matcher treats membership as the top ranking tier.
type ProjectShortlist struct {
	ProjectID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	VendorProfileID uuid.UUID `gorm:"type:uuid;primaryKey" json:"vendor_profile_id"`
	CreatedAt       time.Time `json:"created_at"`

	Project *Project       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Vendor  *VendorProfile `gorm:"foreignKey:VendorProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
