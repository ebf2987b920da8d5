package testutils

import (
	"fmt"
	"time"

	"workspace-simulator/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		ID:        uuid.New(),
		Name:      "Test Organization",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email carries a
// slice of the ID so repeated creates do not trip the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		ID:         id,
		Email:      fmt.Sprintf("user.%s@test.com", id.String()[:8]),
		Name:       "Jordan Doe",
		Role:       models.UserRoleMid,
		Department: "Engineering",
		IsActive:   true,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithDepartment sets a custom department for the user
func (f *UserFactory) WithDepartment(department string) *models.User {
	user := f.Create()
	user.Department = department
	return user
}

// Inactive creates a user who has left the organization
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		ID:             uuid.New(),
		Name:           "Platform Team",
		Description:    "Team focused on platform work.",
		OrganizationID: uuid.New(),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
		Department:     "Engineering",
	}
}

// WithOrganization sets the organization ID for the team
func (f *TeamFactory) WithOrganization(orgID uuid.UUID) *models.Team {
	team := f.Create()
	team.OrganizationID = orgID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// TeamMembershipFactory provides methods to create test TeamMembership data
type TeamMembershipFactory struct{}

// NewTeamMembershipFactory creates a new TeamMembershipFactory
func NewTeamMembershipFactory() *TeamMembershipFactory {
	return &TeamMembershipFactory{}
}

// Create creates a test TeamMembership with default values
func (f *TeamMembershipFactory) Create() *models.TeamMembership {
	return &models.TeamMembership{
		ID:       uuid.New(),
		TeamID:   uuid.New(),
		UserID:   uuid.New(),
		Role:     models.MembershipRoleMember,
		JoinedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Connect links an existing user to an existing team
func (f *TeamMembershipFactory) Connect(teamID, userID uuid.UUID) *models.TeamMembership {
	membership := f.Create()
	membership.TeamID = teamID
	membership.UserID = userID
	return membership
}

// WithRole sets a custom role for the membership
func (f *TeamMembershipFactory) WithRole(role models.MembershipRole) *models.TeamMembership {
	membership := f.Create()
	membership.Role = role
	return membership
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values. The name carries a
// slice of the ID so repeated creates do not trip the unique index.
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		ID:          id,
		Name:        fmt.Sprintf("Test Project %s", id.String()[:8]),
		Description: "A test project.",
		TeamID:      uuid.New(),
		OwnerID:     uuid.New(),
		Status:      models.ProjectStatusActive,
		Archived:    false,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Department:  "Engineering",
	}
}

// WithTeam sets the team ID for the project
func (f *ProjectFactory) WithTeam(teamID uuid.UUID) *models.Project {
	project := f.Create()
	project.TeamID = teamID
	return project
}

// WithOwner sets the owner ID for the project
func (f *ProjectFactory) WithOwner(ownerID uuid.UUID) *models.Project {
	project := f.Create()
	project.OwnerID = ownerID
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// SectionFactory provides methods to create test Section data
type SectionFactory struct{}

// NewSectionFactory creates a new SectionFactory
func NewSectionFactory() *SectionFactory {
	return &SectionFactory{}
}

// Create creates a test Section with default values
func (f *SectionFactory) Create() *models.Section {
	return &models.Section{
		ID:        uuid.New(),
		Name:      "To Do",
		ProjectID: uuid.New(),
		Position:  0,
	}
}

// WithProject sets the project ID for the section
func (f *SectionFactory) WithProject(projectID uuid.UUID) *models.Section {
	section := f.Create()
	section.ProjectID = projectID
	return section
}

// WithPosition sets the board position for the section
func (f *SectionFactory) WithPosition(position int) *models.Section {
	section := f.Create()
	section.Position = position
	return section
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		ID:          uuid.New(),
		Name:        "Fix login bug",
		ProjectID:   uuid.New(),
		SectionID:   uuid.New(),
		CreatedByID: uuid.New(),
		Completed:   false,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Position:    0,
	}
}

// WithProject sets the project and section IDs for the task
func (f *TaskFactory) WithProject(projectID, sectionID uuid.UUID) *models.Task {
	task := f.Create()
	task.ProjectID = projectID
	task.SectionID = sectionID
	return task
}

// WithAssignee sets the assignee ID for the task
func (f *TaskFactory) WithAssignee(userID uuid.UUID) *models.Task {
	task := f.Create()
	task.AssigneeID = &userID
	return task
}

// WithParent nests the task under a parent, on the parent's board
func (f *TaskFactory) WithParent(parent *models.Task) *models.Task {
	task := f.Create()
	task.ProjectID = parent.ProjectID
	task.SectionID = parent.SectionID
	task.ParentTaskID = &parent.ID
	task.CreatedAt = parent.CreatedAt.Add(time.Hour)
	return task
}

// Completed creates a task completed one day after creation
func (f *TaskFactory) Completed() *models.Task {
	task := f.Create()
	completedAt := task.CreatedAt.Add(24 * time.Hour)
	task.Completed = true
	task.CompletedAt = &completedAt
	return task
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment with default values
func (f *CommentFactory) Create() *models.Comment {
	return &models.Comment{
		ID:        uuid.New(),
		TaskID:    uuid.New(),
		AuthorID:  uuid.New(),
		Text:      "Looks good to me.",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// WithTask sets the task ID for the comment
func (f *CommentFactory) WithTask(taskID uuid.UUID) *models.Comment {
	comment := f.Create()
	comment.TaskID = taskID
	return comment
}

// WithAuthor sets the author ID for the comment
func (f *CommentFactory) WithAuthor(authorID uuid.UUID) *models.Comment {
	comment := f.Create()
	comment.AuthorID = authorID
	return comment
}

// WithText sets a custom text for the comment
func (f *CommentFactory) WithText(text string) *models.Comment {
	comment := f.Create()
	comment.Text = text
	return comment
}

// CustomFieldDefinitionFactory provides methods to create test CustomFieldDefinition data
type CustomFieldDefinitionFactory struct{}

// NewCustomFieldDefinitionFactory creates a new CustomFieldDefinitionFactory
func NewCustomFieldDefinitionFactory() *CustomFieldDefinitionFactory {
	return &CustomFieldDefinitionFactory{}
}

// Create creates a test enum CustomFieldDefinition with default values
func (f *CustomFieldDefinitionFactory) Create() *models.CustomFieldDefinition {
	options := `["High","Medium","Low"]`
	return &models.CustomFieldDefinition{
		ID:             uuid.New(),
		Name:           "Priority",
		FieldType:      models.FieldTypeEnum,
		Options:        &options,
		OrganizationID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the definition
func (f *CustomFieldDefinitionFactory) WithOrganization(orgID uuid.UUID) *models.CustomFieldDefinition {
	def := f.Create()
	def.OrganizationID = orgID
	return def
}

// WithFieldType sets the field type; options are cleared for non-enum types
func (f *CustomFieldDefinitionFactory) WithFieldType(fieldType models.FieldType) *models.CustomFieldDefinition {
	def := f.Create()
	def.FieldType = fieldType
	if fieldType != models.FieldTypeEnum {
		def.Options = nil
	}
	return def
}

// CustomFieldValueFactory provides methods to create test CustomFieldValue data
type CustomFieldValueFactory struct{}

// NewCustomFieldValueFactory creates a new CustomFieldValueFactory
func NewCustomFieldValueFactory() *CustomFieldValueFactory {
	return &CustomFieldValueFactory{}
}

// Create creates a test CustomFieldValue with default values
func (f *CustomFieldValueFactory) Create() *models.CustomFieldValue {
	return &models.CustomFieldValue{
		ID:      uuid.New(),
		FieldID: uuid.New(),
		TaskID:  uuid.New(),
		Value:   "High",
	}
}

// Connect links an existing definition to an existing task
func (f *CustomFieldValueFactory) Connect(fieldID, taskID uuid.UUID) *models.CustomFieldValue {
	value := f.Create()
	value.FieldID = fieldID
	value.TaskID = taskID
	return value
}

// WithValue sets a custom value
func (f *CustomFieldValueFactory) WithValue(raw string) *models.CustomFieldValue {
	value := f.Create()
	value.Value = raw
	return value
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with default values
func (f *TagFactory) Create() *models.Tag {
	return &models.Tag{
		ID:             uuid.New(),
		Name:           "bug",
		Color:          "#E53935",
		OrganizationID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the tag
func (f *TagFactory) WithOrganization(orgID uuid.UUID) *models.Tag {
	tag := f.Create()
	tag.OrganizationID = orgID
	return tag
}

// WithName sets a custom name for the tag
func (f *TagFactory) WithName(name string) *models.Tag {
	tag := f.Create()
	tag.Name = name
	return tag
}

// TaskTagFactory provides methods to create test TaskTag data
type TaskTagFactory struct{}

// NewTaskTagFactory creates a new TaskTagFactory
func NewTaskTagFactory() *TaskTagFactory {
	return &TaskTagFactory{}
}

// Connect links an existing task to an existing tag
func (f *TaskTagFactory) Connect(taskID, tagID uuid.UUID) *models.TaskTag {
	return &models.TaskTag{
		TaskID: taskID,
		TagID:  tagID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization    *OrganizationFactory
	User            *UserFactory
	Team            *TeamFactory
	Membership      *TeamMembershipFactory
	Project         *ProjectFactory
	Section         *SectionFactory
	Task            *TaskFactory
	Comment         *CommentFactory
	FieldDefinition *CustomFieldDefinitionFactory
	FieldValue      *CustomFieldValueFactory
	Tag             *TagFactory
	TaskTag         *TaskTagFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		User:            NewUserFactory(),
		Team:            NewTeamFactory(),
		Membership:      NewTeamMembershipFactory(),
		Project:         NewProjectFactory(),
		Section:         NewSectionFactory(),
		Task:            NewTaskFactory(),
		Comment:         NewCommentFactory(),
		FieldDefinition: NewCustomFieldDefinitionFactory(),
		FieldValue:      NewCustomFieldValueFactory(),
		Tag:             NewTagFactory(),
		TaskTag:         NewTaskTagFactory(),
	}
}

// WorkspaceFixture bundles a minimal linked object graph: one user on
// one team working one task on one project board.
type WorkspaceFixture struct {
	Organization *models.Organization
	Team         *models.Team
	User         *models.User
	Membership   *models.TeamMembership
	Project      *models.Project
	Section      *models.Section
	Task         *models.Task
}

// CreateWorkspaceFixture creates a complete workspace slice with all
// references wired, ready to insert parents before children.
func (fs *FactorySet) CreateWorkspaceFixture() *WorkspaceFixture {
	org := fs.Organization.Create()

	team := fs.Team.WithOrganization(org.ID)

	user := fs.User.WithRole(models.UserRoleSenior)

	membership := fs.Membership.Connect(team.ID, user.ID)
	membership.Role = models.MembershipRoleLead

	project := fs.Project.WithTeam(team.ID)
	project.OwnerID = user.ID

	section := fs.Section.WithProject(project.ID)

	task := fs.Task.WithProject(project.ID, section.ID)
	task.AssigneeID = &user.ID
	task.CreatedByID = user.ID

	return &WorkspaceFixture{
		Organization: org,
		Team:         team,
		User:         user,
		Membership:   membership,
		Project:      project,
		Section:      section,
		Task:         task,
	}
}
