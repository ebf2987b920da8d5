package generator

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// briefDescriptionShare splits non-empty descriptions between one-line
// briefs and acceptance checklists.
const briefDescriptionShare = 0.625

var taskChecklistItems = []string{
	"- Review existing implementation",
	"- Update relevant documentation",
	"- Add test coverage",
	"- Get code review approval",
	"- Deploy to staging first",
	"- Monitor for issues after deploy",
	"- Update stakeholders on completion",
}

// GenerateTasks allocates the task budget across projects with at least
// five per project, shuffles the allocation so project order carries no
// signal, and fills each project's share of tasks. Completion odds come
// from the project's lifecycle: finished or archived projects run
// 80-95% done, the rest follow the configured band for their type.
func GenerateTasks(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, projects []models.Project, sections []models.Section, memberships []models.TeamMembership, users []models.User) []models.Task {
	sectionsByProject := make(map[uuid.UUID][]models.Section, len(projects))
	for _, s := range sections {
		sectionsByProject[s.ProjectID] = append(sectionsByProject[s.ProjectID], s)
	}
	for id := range sectionsByProject {
		slices.SortFunc(sectionsByProject[id], func(a, b models.Section) int {
			return a.Position - b.Position
		})
	}

	teamMembers := make(map[uuid.UUID][]uuid.UUID)
	for _, m := range memberships {
		teamMembers[m.TeamID] = append(teamMembers[m.TeamID], m.UserID)
	}

	activeSet := make(map[uuid.UUID]struct{}, len(users))
	for _, u := range users {
		if u.IsActive {
			activeSet[u.ID] = struct{}{}
		}
	}
	fallbackPool := activeUserIDs(users)
	if len(fallbackPool) > 10 {
		fallbackPool = fallbackPool[:10]
	}

	counts := sampling.BucketAllocate(rng, cfg.NumTasks, len(projects), 5)
	rng.Shuffle(len(counts), func(i, j int) { counts[i], counts[j] = counts[j], counts[i] })

	var tasks []models.Task
	for projIdx, project := range projects {
		boardSections := sectionsByProject[project.ID]
		if len(boardSections) == 0 {
			continue
		}

		assignees := make([]uuid.UUID, 0, len(teamMembers[project.TeamID]))
		for _, id := range teamMembers[project.TeamID] {
			if _, active := activeSet[id]; active {
				assignees = append(assignees, id)
			}
		}
		if len(assignees) == 0 {
			assignees = fallbackPool
		}

		var rate float64
		if project.Status == models.ProjectStatusCompleted || project.Archived {
			rate = sampling.FloatBetween(rng, 0.80, 0.95)
		} else {
			projectType := "ongoing"
			if strings.Contains(project.Name, "Sprint") {
				projectType = "sprint"
			}
			rate = completionRateFor(rng, cfg.CompletionRates, projectType)
		}

		createdStart := project.CreatedAt
		if cfg.SimulationStart.After(createdStart) {
			createdStart = cfg.SimulationStart
		}
		createdEnd := cfg.SimulationEndTime.Add(-time.Hour)
		templates := cat.TaskTemplatesFor(project.Department)

		for i := 0; i < counts[projIdx]; i++ {
			name := fillTemplate(rng, cat, catalog.ScopeTask, sampling.Choice(rng, templates), func(placeholder string) (string, bool) {
				if placeholder == "quarter" {
					return fmt.Sprintf("Q%d", sampling.IntBetween(rng, 1, 4)), true
				}
				return "", false
			})

			description := taskDescription(rng, cfg, name)
			createdAt := timegen.BusinessBiased(rng, createdStart, createdEnd)
			completed := sampling.BiasedBool(rng, rate)
			section := placeTask(rng, boardSections, completed)

			var completedAt *time.Time
			if completed {
				at := timegen.CompletionTime(rng, cfg.CycleTime, createdAt, cfg.SimulationEndTime)
				completedAt = &at
			}

			var assigneeID *uuid.UUID
			if !sampling.BiasedBool(rng, cfg.UnassignedTaskRate) && len(assignees) > 0 {
				id := sampling.Choice(rng, assignees)
				assigneeID = &id
			}

			var createdByID uuid.UUID
			if assigneeID != nil && rng.Float64() < 0.7 {
				createdByID = *assigneeID
			} else if len(assignees) > 0 {
				createdByID = sampling.Choice(rng, assignees)
			}

			tasks = append(tasks, models.Task{
				ID:          namegen.NewID(rng),
				Name:        name,
				Description: description,
				ProjectID:   project.ID,
				SectionID:   section.ID,
				AssigneeID:  assigneeID,
				CreatedByID: createdByID,
				DueDate:     timegen.DueDate(rng, cfg.DueDateDistribution, createdAt, cfg.SimulationEndTime),
				Completed:   completed,
				CompletedAt: completedAt,
				CreatedAt:   createdAt,
				Position:    i,
			})
		}
	}

	return tasks
}

// placeTask puts completed tasks in the board's last section and spreads
// open tasks over the earlier ones, weighted toward the left.
func placeTask(rng *rand.Rand, boardSections []models.Section, completed bool) models.Section {
	if completed {
		return boardSections[len(boardSections)-1]
	}

	open := boardSections
	if len(boardSections) > 1 {
		open = boardSections[:len(boardSections)-1]
	}
	weights := make([]float64, len(open))
	for i := range open {
		weights[i] = 1.0 / float64(i+1)
	}
	return open[sampling.WeightedIndex(rng, weights)]
}

// taskDescription returns nil for the configured share of tasks, a short
// brief for most of the rest, and an acceptance checklist otherwise.
func taskDescription(rng *rand.Rand, cfg *config.Config, name string) *string {
	if sampling.BiasedBool(rng, cfg.EmptyDescriptionRate) {
		return nil
	}

	var text string
	if rng.Float64() < briefDescriptionShare {
		text = taskBrief(rng, name)
	} else {
		items := sampling.Sample(rng, taskChecklistItems, sampling.IntBetween(rng, 2, 4))
		text = "Acceptance criteria:\n" + strings.Join(items, "\n")
	}
	return &text
}

func taskBrief(rng *rand.Rand, name string) string {
	switch rng.Intn(5) {
	case 0:
		return "Complete the task: " + name
	case 1:
		return "Work on " + strings.ToLower(name) + " as part of current sprint."
	case 2:
		return "Priority item for the team."
	case 3:
		return "Follow up from team discussion."
	default:
		return "Blocked by dependencies - check status before starting."
	}
}

// completionRateFor draws a completion share from the band configured
// for the project type, falling back to the default band.
func completionRateFor(rng *rand.Rand, rates []config.CompletionRate, projectType string) float64 {
	low, high := 0.50, 0.70
	for _, pass := range []string{projectType, "default"} {
		found := false
		for _, r := range rates {
			if r.ProjectType == pass {
				low, high = r.Low, r.High
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	return sampling.FloatBetween(rng, low, high)
}
