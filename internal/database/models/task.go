package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work, optionally nested under a parent task
type Task struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"not null;size:500" validate:"required,max=500"`
	Description  *string    `json:"description,omitempty" gorm:"type:text"`
	ProjectID    uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectionID    uuid.UUID  `json:"section_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssigneeID   *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID  uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null" validate:"required"`
	ParentTaskID *uuid.UUID `json:"parent_task_id,omitempty" gorm:"type:uuid;index"`
	DueDate      *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	Completed    bool       `json:"completed" gorm:"not null;default:false"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`
	Position     int        `json:"position" gorm:"not null;default:0" validate:"gte=0"`

	// Relationships
	Subtasks []Task    `json:"subtasks,omitempty" gorm:"foreignKey:ParentTaskID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsSubtask reports whether the task is nested under a parent
func (t *Task) IsSubtask() bool {
	return t.ParentTaskID != nil
}
