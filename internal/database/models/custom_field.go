package models

import (
	"github.com/google/uuid"
)

// CustomFieldDefinition declares an org-wide field that tasks can carry.
// Options holds a JSON-encoded list of allowed values for enum fields
// and is nil for number and text fields.
type CustomFieldDefinition struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	FieldType      FieldType `json:"field_type" gorm:"type:varchar(20);not null" validate:"required"`
	Options        *string   `json:"options,omitempty" gorm:"type:text"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Values []CustomFieldValue `json:"values,omitempty" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CustomFieldDefinition
func (CustomFieldDefinition) TableName() string {
	return "custom_field_definitions"
}

// CustomFieldValue assigns a definition's value to one task
type CustomFieldValue struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FieldID uuid.UUID `json:"field_id" gorm:"type:uuid;not null;uniqueIndex:idx_field_task" validate:"required"`
	TaskID  uuid.UUID `json:"task_id" gorm:"type:uuid;not null;uniqueIndex:idx_field_task" validate:"required"`
	Value   string    `json:"value" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for CustomFieldValue
func (CustomFieldValue) TableName() string {
	return "custom_field_values"
}
