package models

import (
	"github.com/google/uuid"
)

// Tag is an org-wide label that tasks can carry
type Tag struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_org_tag_name" validate:"required,max=100"`
	Color          string    `json:"color" gorm:"size:7" validate:"omitempty,hexcolor"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_tag_name" validate:"required"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// TaskTag joins a task to a tag
type TaskTag struct {
	TaskID uuid.UUID `json:"task_id" gorm:"type:uuid;primaryKey" validate:"required"`
	TagID  uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey" validate:"required"`
}

// TableName returns the table name for TaskTag
func (TaskTag) TableName() string {
	return "task_tags"
}
