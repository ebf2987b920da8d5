package generator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/timegen"
)

func TestGenerateTasks(t *testing.T) {
	cfg := testConfig(t)
	cat := testCatalog(t)
	rng := newRNG(23)
	org := GenerateOrganization(rng, cfg)
	teams := GenerateTeams(rng, cfg, cat, org.ID)
	users := GenerateUsers(rng, cfg, cat)
	memberships := GenerateTeamMemberships(rng, cfg, teams, users)
	projects := GenerateProjects(rng, cfg, cat, teams, memberships, users)
	sections := GenerateSections(rng, cat, projects)

	tasks := GenerateTasks(rng, cfg, cat, projects, sections, memberships, users)

	projectByID := make(map[uuid.UUID]models.Project, len(projects))
	for _, project := range projects {
		projectByID[project.ID] = project
	}
	lastSection := make(map[uuid.UUID]uuid.UUID, len(projects))
	lastPosition := make(map[uuid.UUID]int, len(projects))
	sectionProject := make(map[uuid.UUID]uuid.UUID, len(sections))
	for _, section := range sections {
		sectionProject[section.ID] = section.ProjectID
		if pos, ok := lastPosition[section.ProjectID]; !ok || section.Position > pos {
			lastPosition[section.ProjectID] = section.Position
			lastSection[section.ProjectID] = section.ID
		}
	}

	t.Run("spends the whole task budget", func(t *testing.T) {
		require.Len(t, tasks, cfg.NumTasks)
	})

	t.Run("every project receives at least five tasks", func(t *testing.T) {
		perProject := make(map[uuid.UUID]int, len(projects))
		for _, task := range tasks {
			perProject[task.ProjectID]++
		}
		for _, project := range projects {
			assert.GreaterOrEqual(t, perProject[project.ID], 5, "project %q", project.Name)
		}
	})

	t.Run("completion state is coherent", func(t *testing.T) {
		for _, task := range tasks {
			if task.Completed {
				require.NotNil(t, task.CompletedAt, "completed task %q has no timestamp", task.Name)
				assert.True(t, task.CompletedAt.After(task.CreatedAt))
				assert.False(t, task.CompletedAt.After(cfg.SimulationEndTime))
			} else {
				assert.Nil(t, task.CompletedAt, "open task %q carries a timestamp", task.Name)
			}
		}
	})

	t.Run("completed tasks sit in the terminal section", func(t *testing.T) {
		for _, task := range tasks {
			assert.Equal(t, task.ProjectID, sectionProject[task.SectionID])
			if task.Completed {
				assert.Equal(t, lastSection[task.ProjectID], task.SectionID)
			}
		}
	})

	t.Run("creation stays inside the project window", func(t *testing.T) {
		for _, task := range tasks {
			project := projectByID[task.ProjectID]
			assert.False(t, task.CreatedAt.Before(project.CreatedAt))
			assert.False(t, task.CreatedAt.After(cfg.SimulationEndTime))
		}
	})

	t.Run("due dates never precede the creation date", func(t *testing.T) {
		for _, task := range tasks {
			if task.DueDate == nil {
				continue
			}
			assert.True(t, task.DueDate.After(timegen.DateOf(task.CreatedAt)),
				"task %q due %s created %s", task.Name, task.DueDate, task.CreatedAt)
		}
	})

	t.Run("people on tasks exist", func(t *testing.T) {
		userByID := make(map[uuid.UUID]models.User, len(users))
		for _, user := range users {
			userByID[user.ID] = user
		}
		for _, task := range tasks {
			if task.AssigneeID != nil {
				assert.Contains(t, userByID, *task.AssigneeID)
			}
			assert.Contains(t, userByID, task.CreatedByID)
		}
	})

	t.Run("names resolve every placeholder", func(t *testing.T) {
		for _, task := range tasks {
			assert.NotContains(t, task.Name, "{", "unresolved placeholder in %q", task.Name)
		}
	})
}

func TestPlaceTask(t *testing.T) {
	rng := newRNG(29)
	board := []models.Section{
		{ID: uuid.New(), Position: 0},
		{ID: uuid.New(), Position: 1},
		{ID: uuid.New(), Position: 2},
	}

	t.Run("completed tasks land in the last section", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			assert.Equal(t, board[2].ID, placeTask(rng, board, true).ID)
		}
	})

	t.Run("open tasks never land in the last section", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.NotEqual(t, board[2].ID, placeTask(rng, board, false).ID)
		}
	})

	t.Run("a single section board takes everything", func(t *testing.T) {
		single := board[:1]
		assert.Equal(t, board[0].ID, placeTask(rng, single, false).ID)
		assert.Equal(t, board[0].ID, placeTask(rng, single, true).ID)
	})
}

func TestTaskDescription(t *testing.T) {
	cfg := testConfig(t)

	t.Run("honors the empty rate", func(t *testing.T) {
		rng := newRNG(31)
		cfg.EmptyDescriptionRate = 1
		assert.Nil(t, taskDescription(rng, cfg, "Ship the feature"))
	})

	t.Run("writes briefs and checklists", func(t *testing.T) {
		rng := newRNG(31)
		cfg.EmptyDescriptionRate = 0

		checklists := 0
		for i := 0; i < 100; i++ {
			text := taskDescription(rng, cfg, "Ship the feature")
			require.NotNil(t, text)
			if strings.HasPrefix(*text, "Acceptance criteria:\n") {
				checklists++
				assert.GreaterOrEqual(t, strings.Count(*text, "\n- "), 1)
			}
		}
		assert.Greater(t, checklists, 0)
		assert.Less(t, checklists, 100)
	})
}

func TestCompletionRateFor(t *testing.T) {
	rates := []config.CompletionRate{
		{ProjectType: "sprint", Low: 0.7, High: 0.7},
		{ProjectType: "default", Low: 0.5, High: 0.5},
	}

	t.Run("uses the band for the project type", func(t *testing.T) {
		assert.InDelta(t, 0.7, completionRateFor(newRNG(37), rates, "sprint"), 1e-9)
	})

	t.Run("falls back to the default band", func(t *testing.T) {
		assert.InDelta(t, 0.5, completionRateFor(newRNG(37), rates, "campaign"), 1e-9)
	})

	t.Run("uses the built-in band when nothing is configured", func(t *testing.T) {
		rate := completionRateFor(newRNG(37), nil, "sprint")
		assert.GreaterOrEqual(t, rate, 0.5)
		assert.LessOrEqual(t, rate, 0.7)
	})
}
