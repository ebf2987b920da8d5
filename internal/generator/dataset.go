// Package generator produces a full synthetic workspace dataset from a
// seeded random stream. Stages run in dependency order and each stage
// only reads collections produced by earlier stages, so a given seed and
// configuration always yield the same dataset.
package generator

import (
	"workspace-simulator/internal/database/models"
)

// Dataset holds every collection one generation run produces, in the
// order the stages emit them.
type Dataset struct {
	Organization     models.Organization
	Teams            []models.Team
	Users            []models.User
	Memberships      []models.TeamMembership
	Projects         []models.Project
	Sections         []models.Section
	Tasks            []models.Task
	Subtasks         []models.Task
	Comments         []models.Comment
	FieldDefinitions []models.CustomFieldDefinition
	FieldValues      []models.CustomFieldValue
	Tags             []models.Tag
	TaskTags         []models.TaskTag
}

// AllTasks returns parent tasks followed by subtasks, the order they are
// persisted in so parent rows always precede their children.
func (d *Dataset) AllTasks() []models.Task {
	all := make([]models.Task, 0, len(d.Tasks)+len(d.Subtasks))
	all = append(all, d.Tasks...)
	all = append(all, d.Subtasks...)
	return all
}
