package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workspace-simulator/internal/database/models"
	apperrors "workspace-simulator/internal/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Initialize("sqlite", filepath.Join(t.TempDir(), "workspace.sqlite"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// sample is a minimal but fully linked dataset used by the store tests.
type sample struct {
	org      models.Organization
	users    []models.User
	team     models.Team
	project  models.Project
	sections []models.Section
	tasks    []models.Task
}

func writeSample(t *testing.T, store *Store) sample {
	t.Helper()

	orgCreated := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)

	org := models.Organization{ID: uuid.New(), Name: "Acme Robotics", CreatedAt: orgCreated}
	require.NoError(t, store.WriteOrganization(&org))

	users := []models.User{
		{ID: uuid.New(), Email: "dana.fox@acme.test", Name: "Dana Fox", Role: models.UserRoleLead, Department: "Engineering", IsActive: true, CreatedAt: orgCreated},
		{ID: uuid.New(), Email: "sam.reed@acme.test", Name: "Sam Reed", Role: models.UserRoleMid, Department: "Engineering", IsActive: true, CreatedAt: orgCreated.AddDate(0, 1, 0)},
	}
	require.NoError(t, store.WriteUsers(users))

	team := models.Team{ID: uuid.New(), Name: "Platform Team", Description: "Team focused on platform.", OrganizationID: org.ID, CreatedAt: orgCreated}
	require.NoError(t, store.WriteTeams([]models.Team{team}))

	memberships := []models.TeamMembership{
		{ID: uuid.New(), TeamID: team.ID, UserID: users[0].ID, Role: models.MembershipRoleLead, JoinedAt: orgCreated},
		{ID: uuid.New(), TeamID: team.ID, UserID: users[1].ID, Role: models.MembershipRoleMember, JoinedAt: orgCreated.AddDate(0, 1, 0)},
	}
	require.NoError(t, store.WriteMemberships(memberships))

	project := models.Project{
		ID: uuid.New(), Name: "API Redesign Q1 2025", Description: "Project focused on api redesign.",
		TeamID: team.ID, OwnerID: users[0].ID, Status: models.ProjectStatusActive, CreatedAt: orgCreated.AddDate(0, 2, 0),
	}
	require.NoError(t, store.WriteProjects([]models.Project{project}))

	sections := []models.Section{
		{ID: uuid.New(), Name: "To Do", ProjectID: project.ID, Position: 0},
		{ID: uuid.New(), Name: "Done", ProjectID: project.ID, Position: 1},
	}
	require.NoError(t, store.WriteSections(sections))

	taskCreated := project.CreatedAt.AddDate(0, 0, 3)
	completedAt := taskCreated.AddDate(0, 0, 2)
	parent := models.Task{
		ID: uuid.New(), Name: "Design API endpoints", ProjectID: project.ID, SectionID: sections[1].ID,
		AssigneeID: &users[1].ID, CreatedByID: users[0].ID,
		Completed: true, CompletedAt: &completedAt, CreatedAt: taskCreated, Position: 0,
	}
	subtask := models.Task{
		ID: uuid.New(), Name: "Research options", ProjectID: project.ID, SectionID: sections[1].ID,
		AssigneeID: &users[1].ID, CreatedByID: users[0].ID, ParentTaskID: &parent.ID,
		Completed: true, CompletedAt: &completedAt, CreatedAt: taskCreated.Add(6 * time.Hour), Position: 0,
	}
	open := models.Task{
		ID: uuid.New(), Name: "Write integration tests", ProjectID: project.ID, SectionID: sections[0].ID,
		CreatedByID: users[0].ID, Completed: false, CreatedAt: taskCreated.AddDate(0, 0, 1), Position: 1,
	}
	tasks := []models.Task{parent, subtask, open}
	require.NoError(t, store.WriteTasks(tasks))

	comments := []models.Comment{
		{ID: uuid.New(), TaskID: parent.ID, AuthorID: users[1].ID, Text: "Making good progress on this.", CreatedAt: taskCreated.Add(12 * time.Hour)},
	}
	require.NoError(t, store.WriteComments(comments))

	options := `["P0","P1","P2"]`
	defs := []models.CustomFieldDefinition{
		{ID: uuid.New(), Name: "Priority", FieldType: models.FieldTypeEnum, Options: &options, OrganizationID: org.ID},
	}
	require.NoError(t, store.WriteFieldDefinitions(defs))

	values := []models.CustomFieldValue{
		{ID: uuid.New(), FieldID: defs[0].ID, TaskID: parent.ID, Value: "P1"},
	}
	require.NoError(t, store.WriteFieldValues(values))

	tags := []models.Tag{
		{ID: uuid.New(), Name: "api", Color: "#fd7e14", OrganizationID: org.ID},
	}
	require.NoError(t, store.WriteTags(tags))

	taskTags := []models.TaskTag{
		{TaskID: parent.ID, TagID: tags[0].ID},
	}
	require.NoError(t, store.WriteTaskTags(taskTags))

	return sample{org: org, users: users, team: team, project: project, sections: sections, tasks: tasks}
}

func TestInitialize(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		db, err := Initialize("oracle", "dsn", nil)
		assert.Nil(t, db)
		assert.ErrorIs(t, err, apperrors.ErrUnknownDatabaseDriver)
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		db, err := Initialize("sqlite", "", nil)
		assert.Nil(t, db)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("sqlite creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "output", "workspace.sqlite")
		db, err := Initialize("sqlite", path, nil)
		require.NoError(t, err)

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	t.Run("migrates full schema", func(t *testing.T) {
		db := openTestDB(t)

		migrator := db.Migrator()
		for _, table := range []string{
			"organizations", "users", "teams", "team_memberships",
			"projects", "sections", "tasks", "comments",
			"custom_field_definitions", "custom_field_values", "tags", "task_tags",
		} {
			assert.True(t, migrator.HasTable(table), "missing table %s", table)
		}
	})

	t.Run("skip auto-migrate leaves schema empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bare.sqlite")
		db, err := Initialize("sqlite", path, &Options{SkipAutoMigrate: true})
		require.NoError(t, err)

		assert.False(t, db.Migrator().HasTable("tasks"))

		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})
}

func TestPrepareSQLiteDSN(t *testing.T) {
	t.Run("appends foreign key pragma", func(t *testing.T) {
		dir := t.TempDir()
		dsn, err := prepareSQLiteDSN(filepath.Join(dir, "db.sqlite"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "db.sqlite")+"?_foreign_keys=on", dsn)
	})

	t.Run("respects existing query string", func(t *testing.T) {
		dsn, err := prepareSQLiteDSN("file::memory:?cache=shared")
		require.NoError(t, err)
		assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", dsn)
	})

	t.Run("memory dsn skips directory creation", func(t *testing.T) {
		dsn, err := prepareSQLiteDSN(":memory:")
		require.NoError(t, err)
		assert.Equal(t, ":memory:?_foreign_keys=on", dsn)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		_, err := prepareSQLiteDSN("")
		assert.True(t, apperrors.IsConfiguration(err))
	})
}

func TestStoreWrites(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, 2)

	writeSample(t, store)

	stats, err := store.Stats()
	require.NoError(t, err)

	expected := map[string]int64{
		"organizations":            1,
		"users":                    2,
		"teams":                    1,
		"team_memberships":         2,
		"projects":                 1,
		"sections":                 2,
		"tasks":                    3,
		"comments":                 1,
		"custom_field_definitions": 1,
		"custom_field_values":      1,
		"tags":                     1,
		"task_tags":                1,
	}
	require.Len(t, stats, len(expected))
	for _, stat := range stats {
		assert.Equal(t, expected[stat.Table], stat.Count, stat.Table)
	}

	// Write order is part of the contract: parents before subtasks.
	assert.Equal(t, "organizations", stats[0].Table)
	assert.Equal(t, "task_tags", stats[len(stats)-1].Table)
}

func TestStoreEmptyBatches(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db, 0)

	assert.NoError(t, store.WriteOrganization(nil))
	assert.NoError(t, store.WriteUsers(nil))
	assert.NoError(t, store.WriteTasks([]models.Task{}))
	assert.NoError(t, store.WriteTaskTags(nil))

	stats, err := store.Stats()
	require.NoError(t, err)
	for _, stat := range stats {
		assert.Zero(t, stat.Count, stat.Table)
	}
}

func TestStoreVerify(t *testing.T) {
	t.Run("clean dataset", func(t *testing.T) {
		db := openTestDB(t)
		store := NewStore(db, 100)
		writeSample(t, store)

		issues, err := store.Verify()
		require.NoError(t, err)
		assert.Empty(t, issues)
	})

	t.Run("reports completion and membership issues", func(t *testing.T) {
		db := openTestDB(t)
		store := NewStore(db, 100)
		data := writeSample(t, store)

		created := data.project.CreatedAt.AddDate(0, 0, 10)
		before := created.AddDate(0, 0, -3)
		brokenTasks := []models.Task{
			{
				ID: uuid.New(), Name: "Completed before created", ProjectID: data.project.ID,
				SectionID: data.sections[0].ID, CreatedByID: data.users[0].ID,
				Completed: true, CompletedAt: &before, CreatedAt: created,
			},
			{
				ID: uuid.New(), Name: "Completed without timestamp", ProjectID: data.project.ID,
				SectionID: data.sections[0].ID, CreatedByID: data.users[0].ID,
				Completed: true, CreatedAt: created,
			},
			{
				ID: uuid.New(), Name: "Open with timestamp", ProjectID: data.project.ID,
				SectionID: data.sections[0].ID, CreatedByID: data.users[0].ID,
				Completed: false, CompletedAt: &created, CreatedAt: created,
			},
		}
		require.NoError(t, store.WriteTasks(brokenTasks))

		// A subtask hanging off another subtask breaks the two-level rule.
		nested := models.Task{
			ID: uuid.New(), Name: "Too deep", ProjectID: data.project.ID,
			SectionID: data.sections[0].ID, CreatedByID: data.users[0].ID,
			ParentTaskID: &data.tasks[1].ID, CreatedAt: created,
		}
		require.NoError(t, store.WriteTasks([]models.Task{nested}))

		leadless := models.Team{ID: uuid.New(), Name: "Leadless Team", OrganizationID: data.org.ID, CreatedAt: created}
		require.NoError(t, store.WriteTeams([]models.Team{leadless}))
		require.NoError(t, store.WriteMemberships([]models.TeamMembership{
			{ID: uuid.New(), TeamID: leadless.ID, UserID: data.users[1].ID, Role: models.MembershipRoleMember, JoinedAt: created},
		}))

		issues, err := store.Verify()
		require.NoError(t, err)
		require.Len(t, issues, 5)
		assert.Contains(t, issues, "1 tasks completed before creation")
		assert.Contains(t, issues, "1 completed tasks missing a completion time")
		assert.Contains(t, issues, "1 open tasks carrying a completion time")
		assert.Contains(t, issues, "1 subtasks nested below another subtask")
		assert.Contains(t, issues, "1 staffed teams without a lead")
	})
}
