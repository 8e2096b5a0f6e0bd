package models

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfile is a vendor account's public offering. At most one profile
// exists per user; the user reference survives as NULL if the user is
// removed, leaving an orphaned profile.
type VendorProfile struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	MainGoal       string     `gorm:"size:255" json:"main_goal"`
	SalesEmail     string     `gorm:"size:255" json:"sales_email"`
	ContactPhone   string     `gorm:"size:64" json:"contact_phone"`
	CompanyWebsite string     `gorm:"size:255" json:"company_website"`
	Description    string     `gorm:"size:2000" json:"description"`
	EmployeeCount  int        `json:"employee_count"`
	FoundedYear    int        `json:"founded_year"`
	Turnover       float64    `json:"turnover"`
	MinProjectSize float64    `json:"min_project_size"`
	AvgHourlyRate  float64    `json:"avg_hourly_rate"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"-"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
	Services []Service `gorm:"many2many:vendor_services;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

// ServiceIDSet returns the set of service IDs the vendor offers.
func (v *VendorProfile) ServiceIDSet() map[uuid.UUID]struct{} {
	return serviceIDSet(v.Services)
}
