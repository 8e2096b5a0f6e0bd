// Package models defines the domain entities of the vendors platform:
// accounts, the service catalog, projects, vendor profiles, connection
// requests, shortlists and reviews. The structs double as GORM models.
package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole distinguishes the two account kinds on the platform.
type UserRole string

const (
	RoleCompany UserRole = "company"
	RoleVendor  UserRole = "vendor"
)

// User is a platform account. Companies own projects, vendors own at most
// one VendorProfile.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	FullName       string    `gorm:"size:255;not null" json:"full_name"`
	CompanyName    string    `gorm:"size:255;not null" json:"company_name"`
	Location       string    `gorm:"size:255" json:"location"`
	LogoURL        string    `gorm:"size:255" json:"logo_url,omitempty"`
	Role           UserRole  `gorm:"size:16;not null;index" json:"role"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`

	// Relationships
	VendorProfile *VendorProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"vendor_profile,omitempty"`
	Projects      []Project      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
