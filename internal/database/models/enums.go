package models

// UserRole defines seniority levels within the organization
type UserRole string

const (
	UserRoleJunior UserRole = "junior"
	UserRoleMid    UserRole = "mid"
	UserRoleSenior UserRole = "senior"
	UserRoleLead   UserRole = "lead"
)

// MembershipRole defines a user's role within one team
type MembershipRole string

const (
	MembershipRoleMember MembershipRole = "member"
	MembershipRoleLead   MembershipRole = "lead"
)

// ProjectStatus defines the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// FieldType defines the value type of a custom field
type FieldType string

const (
	FieldTypeEnum   FieldType = "enum"
	FieldTypeNumber FieldType = "number"
	FieldTypeText   FieldType = "text"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleJunior, UserRoleMid, UserRoleSenior, UserRoleLead:
		return true
	}
	return false
}

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleMember, MembershipRoleLead:
		return true
	}
	return false
}

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusPaused, ProjectStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the FieldType is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeEnum, FieldTypeNumber, FieldTypeText:
		return true
	}
	return false
}
