package models

import (
	"github.com/google/uuid"
)

// Section is a named column inside a project board
type Section struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position  int       `json:"position" gorm:"not null;default:0" validate:"gte=0"`
}

// TableName returns the table name for Section
func (Section) TableName() string {
	return "sections"
}
