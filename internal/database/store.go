package database

import (
	"fmt"

	"gorm.io/gorm"

	"workspace-simulator/internal/database/models"
)

const defaultBatchSize = 1000

// Store persists generated entities in FK-safe batches. It implements
// the generator's Writer collaborator.
type Store struct {
	db        *gorm.DB
	batchSize int
}

// TableCount pairs a table name with its row count.
type TableCount struct {
	Table string
	Count int64
}

// NewStore wraps an open database connection.
func NewStore(db *gorm.DB, batchSize int) *Store {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Store{db: db, batchSize: batchSize}
}

// DB exposes the underlying connection for ad-hoc queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) WriteOrganization(org *models.Organization) error {
	if org == nil {
		return nil
	}
	return s.db.Create(org).Error
}

func (s *Store) WriteUsers(users []models.User) error {
	return writeBatch(s, users)
}

func (s *Store) WriteTeams(teams []models.Team) error {
	return writeBatch(s, teams)
}

func (s *Store) WriteMemberships(memberships []models.TeamMembership) error {
	return writeBatch(s, memberships)
}

func (s *Store) WriteProjects(projects []models.Project) error {
	return writeBatch(s, projects)
}

func (s *Store) WriteSections(sections []models.Section) error {
	return writeBatch(s, sections)
}

// WriteTasks expects parents to precede their subtasks so the
// parent_task_id foreign key resolves within one call.
func (s *Store) WriteTasks(tasks []models.Task) error {
	return writeBatch(s, tasks)
}

func (s *Store) WriteComments(comments []models.Comment) error {
	return writeBatch(s, comments)
}

func (s *Store) WriteFieldDefinitions(defs []models.CustomFieldDefinition) error {
	return writeBatch(s, defs)
}

func (s *Store) WriteFieldValues(values []models.CustomFieldValue) error {
	return writeBatch(s, values)
}

func (s *Store) WriteTags(tags []models.Tag) error {
	return writeBatch(s, tags)
}

func (s *Store) WriteTaskTags(taskTags []models.TaskTag) error {
	return writeBatch(s, taskTags)
}

func writeBatch[T any](s *Store, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return s.db.CreateInBatches(rows, s.batchSize).Error
}

// Stats returns per-table row counts in write order.
func (s *Store) Stats() ([]TableCount, error) {
	tables := []struct {
		name  string
		model any
	}{
		{"organizations", &models.Organization{}},
		{"users", &models.User{}},
		{"teams", &models.Team{}},
		{"team_memberships", &models.TeamMembership{}},
		{"projects", &models.Project{}},
		{"sections", &models.Section{}},
		{"tasks", &models.Task{}},
		{"comments", &models.Comment{}},
		{"custom_field_definitions", &models.CustomFieldDefinition{}},
		{"custom_field_values", &models.CustomFieldValue{}},
		{"tags", &models.Tag{}},
		{"task_tags", &models.TaskTag{}},
	}

	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		var count int64
		if err := s.db.Model(table.model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", table.name, err)
		}
		counts = append(counts, TableCount{Table: table.name, Count: count})
	}
	return counts, nil
}

// Verify runs integrity checks over the written dataset and returns a
// description of every issue found.
func (s *Store) Verify() ([]string, error) {
	var issues []string

	checks := []struct {
		query   string
		args    []any
		message string
	}{
		{
			query:   "SELECT COUNT(*) FROM tasks WHERE completed = ? AND completed_at IS NOT NULL AND completed_at < created_at",
			args:    []any{true},
			message: "%d tasks completed before creation",
		},
		{
			query:   "SELECT COUNT(*) FROM tasks WHERE completed = ? AND completed_at IS NULL",
			args:    []any{true},
			message: "%d completed tasks missing a completion time",
		},
		{
			query:   "SELECT COUNT(*) FROM tasks WHERE completed = ? AND completed_at IS NOT NULL",
			args:    []any{false},
			message: "%d open tasks carrying a completion time",
		},
		{
			query: `SELECT COUNT(*) FROM tasks t
				WHERE t.parent_task_id IS NOT NULL
				AND NOT EXISTS (SELECT 1 FROM tasks p WHERE p.id = t.parent_task_id)`,
			message: "%d orphaned subtasks",
		},
		{
			query: `SELECT COUNT(*) FROM tasks t
				JOIN tasks p ON t.parent_task_id = p.id
				WHERE p.parent_task_id IS NOT NULL`,
			message: "%d subtasks nested below another subtask",
		},
		{
			query: `SELECT COUNT(*) FROM teams tm
				WHERE EXISTS (
					SELECT 1 FROM team_memberships m WHERE m.team_id = tm.id
				)
				AND NOT EXISTS (
					SELECT 1 FROM team_memberships m
					WHERE m.team_id = tm.id AND m.role = 'lead'
				)`,
			message: "%d staffed teams without a lead",
		},
		{
			query: `SELECT COUNT(*) FROM (
				SELECT email FROM users GROUP BY email HAVING COUNT(*) > 1
			) duplicates`,
			message: "%d duplicated user emails",
		},
		{
			query: `SELECT COUNT(*) FROM (
				SELECT name FROM projects GROUP BY name HAVING COUNT(*) > 1
			) duplicates`,
			message: "%d duplicated project names",
		},
		{
			query: `SELECT COUNT(*) FROM (
				SELECT task_id, tag_id FROM task_tags GROUP BY task_id, tag_id HAVING COUNT(*) > 1
			) duplicates`,
			message: "%d duplicated task-tag pairs",
		},
	}

	for _, check := range checks {
		var count int64
		if err := s.db.Raw(check.query, check.args...).Scan(&count).Error; err != nil {
			return nil, fmt.Errorf("integrity check: %w", err)
		}
		if count > 0 {
			issues = append(issues, fmt.Sprintf(check.message, count))
		}
	}

	return issues, nil
}
