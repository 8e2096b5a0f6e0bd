package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStart is the window in which a company wants the project started.
type ProjectStart string

const (
	StartWithin30Days ProjectStart = "Within 30 days"
	StartWithin60Days ProjectStart = "Within 60 days"
	StartAfter60Days  ProjectStart = "After 60+ days"
)

// Every project declares between MinProjectServices and MaxProjectServices
// required services at creation. Vendor profiles follow the same bounds.
const (
	MinProjectServices = 5
	MaxProjectServices = 10
)

// Project is a company's posted engagement. The owner reference survives as
// NULL if the owning user is removed.
type Project struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     *uuid.UUID   `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"size:2000" json:"description"`
	StartDate   ProjectStart `gorm:"size:32;not null" json:"start_date"`
	Location    string       `gorm:"size:255" json:"location,omitempty"`
	Website     string       `gorm:"size:255" json:"website,omitempty"`
	Budget      float64      `json:"budget"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"-"`

	// Relationships
	Owner    *User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner,omitempty"`
	Services []Service `gorm:"many2many:project_services;constraint:OnDelete:CASCADE" json:"services,omitempty"`
}

// ServiceIDSet returns the set of service IDs the project requires.
func (p *Project) ServiceIDSet() map[uuid.UUID]struct{} {
	return serviceIDSet(p.Services)
}
