package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	apperrors "workspace-simulator/internal/errors"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.NumUsers = 40
	cfg.NumTeams = 4
	cfg.MinTeamSize = 2
	cfg.NumProjects = 8
	cfg.NumTasks = 120
	cfg.SimulationEnd = "2025-06-01T00:00:00Z"
	require.NoError(t, cfg.DeriveWindow())

	return cfg
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Load("")
	require.NoError(t, err)

	return cat
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type recordingWriter struct {
	calls []string
}

func (w *recordingWriter) WriteOrganization(*models.Organization) error {
	w.calls = append(w.calls, "organization")
	return nil
}

func (w *recordingWriter) WriteTeams([]models.Team) error {
	w.calls = append(w.calls, "teams")
	return nil
}

func (w *recordingWriter) WriteUsers([]models.User) error {
	w.calls = append(w.calls, "users")
	return nil
}

func (w *recordingWriter) WriteMemberships([]models.TeamMembership) error {
	w.calls = append(w.calls, "memberships")
	return nil
}

func (w *recordingWriter) WriteProjects([]models.Project) error {
	w.calls = append(w.calls, "projects")
	return nil
}

func (w *recordingWriter) WriteSections([]models.Section) error {
	w.calls = append(w.calls, "sections")
	return nil
}

func (w *recordingWriter) WriteTasks([]models.Task) error {
	w.calls = append(w.calls, "tasks")
	return nil
}

func (w *recordingWriter) WriteComments([]models.Comment) error {
	w.calls = append(w.calls, "comments")
	return nil
}

func (w *recordingWriter) WriteFieldDefinitions([]models.CustomFieldDefinition) error {
	w.calls = append(w.calls, "field_definitions")
	return nil
}

func (w *recordingWriter) WriteFieldValues([]models.CustomFieldValue) error {
	w.calls = append(w.calls, "field_values")
	return nil
}

func (w *recordingWriter) WriteTags([]models.Tag) error {
	w.calls = append(w.calls, "tags")
	return nil
}

func (w *recordingWriter) WriteTaskTags([]models.TaskTag) error {
	w.calls = append(w.calls, "task_tags")
	return nil
}

type failingWriter struct {
	recordingWriter
}

func (w *failingWriter) WriteProjects([]models.Project) error {
	return errors.New("connection lost")
}

func TestPipelineRun(t *testing.T) {
	cfg := testConfig(t)
	cat := testCatalog(t)

	t.Run("produces identical datasets for identical seeds", func(t *testing.T) {
		first, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(42))
		require.NoError(t, err)
		second, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(42))
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("diverges across seeds", func(t *testing.T) {
		first, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(1))
		require.NoError(t, err)
		second, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(2))
		require.NoError(t, err)

		assert.NotEqual(t, first.Organization.ID, second.Organization.ID)
	})

	t.Run("passes the invariant sweep", func(t *testing.T) {
		ds, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(42))
		require.NoError(t, err)

		assert.Empty(t, ValidateDataset(cfg, ds))
	})

	t.Run("writes collections in dependency order", func(t *testing.T) {
		writer := &recordingWriter{}
		_, err := NewPipeline(cfg, cat, writer, nil).Run(newRNG(42))
		require.NoError(t, err)

		assert.Equal(t, []string{
			"organization", "teams", "users", "memberships",
			"projects", "sections", "tasks", "tasks",
			"comments", "field_definitions", "field_values",
			"tags", "task_tags",
		}, writer.calls)
	})

	t.Run("writing is transparent to generation", func(t *testing.T) {
		withWriter, err := NewPipeline(cfg, cat, &recordingWriter{}, nil).Run(newRNG(42))
		require.NoError(t, err)
		without, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(42))
		require.NoError(t, err)

		require.Equal(t, without, withWriter)
	})

	t.Run("wraps writer failures with the stage name", func(t *testing.T) {
		ds, err := NewPipeline(cfg, cat, &failingWriter{}, nil).Run(newRNG(42))
		require.Error(t, err)
		assert.Nil(t, ds)
		assert.True(t, apperrors.IsStage(err))
		assert.Contains(t, err.Error(), "stage projects")
	})
}

func TestValidateDataset(t *testing.T) {
	cfg := testConfig(t)
	cat := testCatalog(t)

	freshDataset := func(t *testing.T) *Dataset {
		ds, err := NewPipeline(cfg, cat, nil, nil).Run(newRNG(42))
		require.NoError(t, err)
		return ds
	}

	t.Run("flags a completed task without a timestamp", func(t *testing.T) {
		ds := freshDataset(t)
		ds.Tasks[0].Completed = true
		ds.Tasks[0].CompletedAt = nil

		issues := ValidateDataset(cfg, ds)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "no completion time")
	})

	t.Run("flags duplicate emails", func(t *testing.T) {
		ds := freshDataset(t)
		ds.Users[1].Email = ds.Users[0].Email

		issues := ValidateDataset(cfg, ds)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "duplicate email")
	})

	t.Run("flags a subtask nested below a subtask", func(t *testing.T) {
		ds := freshDataset(t)
		require.GreaterOrEqual(t, len(ds.Subtasks), 2)
		ds.Subtasks[1].ParentTaskID = &ds.Subtasks[0].ID

		assert.NotEmpty(t, ValidateDataset(cfg, ds))
	})

	t.Run("flags a comment outside its task window", func(t *testing.T) {
		ds := freshDataset(t)
		require.NotEmpty(t, ds.Comments)
		ds.Comments[0].CreatedAt = cfg.SimulationEndTime.AddDate(1, 0, 0)

		issues := ValidateDataset(cfg, ds)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "outside the window")
	})

	t.Run("flags a team left without a lead", func(t *testing.T) {
		ds := freshDataset(t)
		for i := range ds.Memberships {
			if ds.Memberships[i].TeamID == ds.Teams[0].ID {
				ds.Memberships[i].Role = models.MembershipRoleMember
			}
		}

		issues := ValidateDataset(cfg, ds)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "has no lead")
	})
}
