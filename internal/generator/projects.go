package generator

import (
	"fmt"
	"math/rand"
	"strconv"
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

const (
	// projectDueDateShare is how many projects target a quarter end.
	projectDueDateShare = 0.60
	// matureProjectAge separates projects old enough to archive.
	matureProjectAge = 180 * 24 * time.Hour
)

var (
	projectStatuses = []models.ProjectStatus{
		models.ProjectStatusActive,
		models.ProjectStatusPaused,
		models.ProjectStatusCompleted,
	}
	matureStatusWeights = []float64{0.20, 0.10, 0.70}
	recentStatusWeights = []float64{0.70, 0.10, 0.20}

	projectDescriptionNotes = []string{
		"Key initiative for this quarter.",
		"Cross-functional collaboration required.",
		"High priority for leadership.",
		"Part of our strategic roadmap.",
		"Customer-facing improvements.",
	}
)

// GenerateProjects spreads the project count across teams in proportion
// to headcount, each team getting at least one until the budget runs
// out. Names come from department templates, owners from a lead-first
// fallback chain, and lifecycle state from the project's age.
func GenerateProjects(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, teams []models.Team, memberships []models.TeamMembership, users []models.User) []models.Project {
	teamLeads := make(map[uuid.UUID][]uuid.UUID, len(teams))
	teamMembers := make(map[uuid.UUID][]uuid.UUID, len(teams))
	for _, m := range memberships {
		teamMembers[m.TeamID] = append(teamMembers[m.TeamID], m.UserID)
		if m.Role == models.MembershipRoleLead {
			teamLeads[m.TeamID] = append(teamLeads[m.TeamID], m.UserID)
		}
	}

	var seniorActive []uuid.UUID
	seniorActiveSet := make(map[uuid.UUID]struct{})
	for _, u := range users {
		if u.IsActive && u.IsSenior() {
			seniorActive = append(seniorActive, u.ID)
			seniorActiveSet[u.ID] = struct{}{}
		}
	}

	totalMembers := 0
	for _, t := range teams {
		totalMembers += len(teamMembers[t.ID])
	}
	if totalMembers == 0 {
		totalMembers = 1
	}

	projects := make([]models.Project, 0, cfg.NumProjects)
	used := make(map[string]struct{}, cfg.NumProjects)

	for _, team := range teams {
		if len(projects) >= cfg.NumProjects {
			break
		}

		weight := float64(len(teamMembers[team.ID])) / float64(totalMembers)
		count := max(1, int(float64(cfg.NumProjects)*weight))
		templates := cat.ProjectTemplatesFor(team.Department)

		leads := teamLeads[team.ID]
		if len(leads) == 0 {
			leads = teamMembers[team.ID]
		}

		for i := 0; i < count && len(projects) < cfg.NumProjects; i++ {
			createdStart := team.CreatedAt
			if cfg.SimulationStart.After(createdStart) {
				createdStart = cfg.SimulationStart
			}
			createdAt := timegen.Between(rng, createdStart, cfg.SimulationEndTime.AddDate(0, 0, -7))

			name := uniqueProjectName(rng, cat, sampling.Choice(rng, templates), createdAt, used)
			used[name] = struct{}{}

			archived := false
			var status models.ProjectStatus
			if cfg.SimulationEndTime.Sub(createdAt) > matureProjectAge {
				archived = sampling.BiasedBool(rng, cfg.ArchivedProjectRate)
				status = projectStatuses[sampling.WeightedIndex(rng, matureStatusWeights)]
			} else {
				status = projectStatuses[sampling.WeightedIndex(rng, recentStatusWeights)]
			}

			description := "Project focused on " + strings.ToLower(name) + ". " +
				sampling.Choice(rng, projectDescriptionNotes)

			projects = append(projects, models.Project{
				ID:          namegen.NewID(rng),
				Name:        name,
				Description: description,
				TeamID:      team.ID,
				OwnerID:     projectOwner(rng, leads, seniorActive, seniorActiveSet, users),
				Status:      status,
				DueDate:     projectDueDate(rng, createdAt),
				Archived:    archived,
				CreatedAt:   createdAt,
				Department:  team.Department,
			})
		}
	}

	return projects
}

// uniqueProjectName fills the template with the quarter and year of the
// creation date plus catalog vocabulary, then suffixes a counter until
// the name is unused.
func uniqueProjectName(rng *rand.Rand, cat *catalog.Catalog, template string, createdAt time.Time, used map[string]struct{}) string {
	quarter := (int(createdAt.Month())-1)/3 + 1

	name := fillTemplate(rng, cat, catalog.ScopeProject, template, func(placeholder string) (string, bool) {
		switch placeholder {
		case "quarter":
			return strconv.Itoa(quarter), true
		case "year":
			return strconv.Itoa(createdAt.Year()), true
		case "version":
			return strconv.Itoa(sampling.IntBetween(rng, 2, 5)), true
		}
		return "", false
	})

	base := name
	for counter := 1; ; counter++ {
		if _, taken := used[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s (%d)", base, counter)
	}
}

// projectOwner draws from the first non-empty tier: senior active team
// leads, any team lead, any senior active user, then the whole
// directory.
func projectOwner(rng *rand.Rand, leads, seniorActive []uuid.UUID, seniorActiveSet map[uuid.UUID]struct{}, users []models.User) uuid.UUID {
	var seniorLeads []uuid.UUID
	for _, id := range leads {
		if _, ok := seniorActiveSet[id]; ok {
			seniorLeads = append(seniorLeads, id)
		}
	}
	everyone := make([]uuid.UUID, len(users))
	for i, u := range users {
		everyone[i] = u.ID
	}

	for _, tier := range [][]uuid.UUID{seniorLeads, leads, seniorActive, everyone} {
		if len(tier) > 0 {
			return sampling.Choice(rng, tier)
		}
	}
	return uuid.Nil
}

// projectDueDate targets one of the next two quarter ends in the
// creation year for most projects; when the project starts too late in
// the year it lands 30 to 90 days out instead. The rest have no due
// date.
func projectDueDate(rng *rand.Rand, createdAt time.Time) *time.Time {
	if !sampling.BiasedBool(rng, projectDueDateShare) {
		return nil
	}

	year := createdAt.Year()
	quarterEnds := []time.Time{
		time.Date(year, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	var upcoming []time.Time
	for _, end := range quarterEnds {
		if end.After(createdAt) {
			upcoming = append(upcoming, end)
		}
	}
	if len(upcoming) == 0 {
		due := timegen.DateOf(createdAt.AddDate(0, 0, sampling.IntBetween(rng, 30, 90)))
		return &due
	}
	if len(upcoming) > 2 {
		upcoming = upcoming[:2]
	}

	due := sampling.Choice(rng, upcoming)
	return &due
}
