package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a connection request.
// Sent is the only non-terminal state.
type RequestStatus string

const (
	StatusSent     RequestStatus = "sent"
	StatusAccepted RequestStatus = "accepted"
	StatusDeclined RequestStatus = "declined"
)

// RequestInitiator records which side created the request. The party that
// did not initiate is the one allowed to resolve it.
type RequestInitiator string

const (
	InitiatorCompany RequestInitiator = "company"
	InitiatorVendor  RequestInitiator = "vendor"
)

// ProjectRequest is a connection request between a project and a vendor
// profile. The composite unique index keeps at most one request per
// (project, vendor) pair; a duplicate insert fails at the database rather
// than relying on the check-then-create read. Either foreign key becomes
// NULL when its parent is deleted, preserving the request as history.
type ProjectRequest struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID       *uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_project_vendor_pair" json:"project_id,omitempty"`
	VendorProfileID *uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_project_vendor_pair" json:"vendor_profile_id,omitempty"`
	Initiator       RequestInitiator `gorm:"size:16;not null" json:"initiator"`
	Status          RequestStatus    `gorm:"size:16;not null;default:sent" json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Relationships
	Project *Project       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"project,omitempty"`
	Vendor  *VendorProfile `gorm:"foreignKey:VendorProfileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"vendor,omitempty"`
}

// Resolved reports whether the request reached a terminal state.
func (r *ProjectRequest) Resolved() bool {
	return r.Status != StatusSent
}
