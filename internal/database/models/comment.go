package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a message left on a task
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TaskID    uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID  uuid.UUID `json:"author_id" gorm:"type:uuid;not null" validate:"required"`
	Text      string    `json:"text" gorm:"type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
