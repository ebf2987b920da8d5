package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents one team inside the organization
type Team struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string    `json:"description" gorm:"type:text"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`

	// Department drives generation-time placement and is not persisted
	Department string `json:"-" gorm:"-"`

	// Relationships
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Projects    []Project        `json:"projects,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
