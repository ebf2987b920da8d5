package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents the workspace root entity
type Organization struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tags  []Tag  `json:"tags,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
