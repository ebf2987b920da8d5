package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleIsValid(t *testing.T) {
	t.Run("accepts known roles", func(t *testing.T) {
		for _, role := range []UserRole{UserRoleJunior, UserRoleMid, UserRoleSenior, UserRoleLead} {
			assert.True(t, role.IsValid(), "role %q should be valid", role)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		assert.False(t, UserRole("principal").IsValid())
		assert.False(t, UserRole("").IsValid())
	})
}

func TestMembershipRoleIsValid(t *testing.T) {
	assert.True(t, MembershipRoleMember.IsValid())
	assert.True(t, MembershipRoleLead.IsValid())
	assert.False(t, MembershipRole("owner").IsValid())
}

func TestProjectStatusIsValid(t *testing.T) {
	for _, status := range []ProjectStatus{ProjectStatusActive, ProjectStatusPaused, ProjectStatusCompleted} {
		assert.True(t, status.IsValid(), "status %q should be valid", status)
	}
	assert.False(t, ProjectStatus("cancelled").IsValid())
}

func TestFieldTypeIsValid(t *testing.T) {
	for _, ft := range []FieldType{FieldTypeEnum, FieldTypeNumber, FieldTypeText} {
		assert.True(t, ft.IsValid(), "field type %q should be valid", ft)
	}
	assert.False(t, FieldType("date").IsValid())
}

func TestUserIsSenior(t *testing.T) {
	assert.False(t, (&User{Role: UserRoleJunior}).IsSenior())
	assert.False(t, (&User{Role: UserRoleMid}).IsSenior())
	assert.True(t, (&User{Role: UserRoleSenior}).IsSenior())
	assert.True(t, (&User{Role: UserRoleLead}).IsSenior())
}

func TestTaskIsSubtask(t *testing.T) {
	parent := &Task{}
	assert.False(t, parent.IsSubtask())

	id := parent.ID
	child := &Task{ParentTaskID: &id}
	assert.True(t, child.IsSubtask())
}
