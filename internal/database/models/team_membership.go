package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMembership links a user to a team with a role on that team
type TeamMembership struct {
	ID       uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID   uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_user" validate:"required"`
	UserID   uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_user" validate:"required"`
	Role     MembershipRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`
	JoinedAt time.Time      `json:"joined_at" gorm:"not null"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
