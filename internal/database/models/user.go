package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a workspace member
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name       string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Role       UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'junior'" validate:"required"`
	Department string    `json:"department" gorm:"size:100;index"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`

	// Relationships
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsSenior reports whether the user can take lead or ownership roles
func (u *User) IsSenior() bool {
	return u.Role == UserRoleSenior || u.Role == UserRoleLead
}
