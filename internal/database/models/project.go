package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a body of work owned by a team
type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string        `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	Description string        `json:"description" gorm:"type:text"`
	TeamID      uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	OwnerID     uuid.UUID     `json:"owner_id" gorm:"type:uuid;not null" validate:"required"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`
	DueDate     *time.Time    `json:"due_date,omitempty" gorm:"type:date"`
	Archived    bool          `json:"archived" gorm:"not null;default:false"`
	CreatedAt   time.Time     `json:"created_at" gorm:"not null"`

	// Department drives generation-time placement and is not persisted
	Department string `json:"-" gorm:"-"`

	// Relationships
	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks    []Task    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
