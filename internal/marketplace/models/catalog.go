package models

import "github.com/google/uuid"

// Category groups services in the catalog.
type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label string    `gorm:"size:255;uniqueIndex;not null" json:"label"`

	Services []Service `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"services,omitempty"`
}

// Service is a single catalog tag. Projects declare the services they
// require and vendors the services they offer; the two many-to-many link
// tables form the service-tag index the matching engine works from.
type Service struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Label      string     `gorm:"size:255;not null" json:"label"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
}

// serviceIDSet collects the IDs of a service slice into a set.
func serviceIDSet(services []Service) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(services))
	for _, s := range services {
		set[s.ID] = struct{}{}
	}
	return set
}
