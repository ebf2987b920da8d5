package generator

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// GenerateTeams splits the team count across departments by their
// configured shares and names each team from the department's template
// pool, falling back to numbered names when a pool runs dry. Teams are
// created within the first 180 days of the organization.
func GenerateTeams(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, orgID uuid.UUID) []models.Team {
	quotas := teamQuotas(rng, cfg)

	windowStart := cfg.OrgCreatedAt.AddDate(0, 0, 1)
	windowEnd := cfg.OrgCreatedAt.AddDate(0, 0, 180)

	teams := make([]models.Team, 0, cfg.NumTeams)
	used := make(map[string]struct{}, cfg.NumTeams)

	for deptIdx, dept := range cfg.DepartmentDistribution {
		available := slices.Clone(cat.TeamTemplatesFor(dept.Department))

		for i := 0; i < quotas[deptIdx]; i++ {
			var name string
			if len(available) > 0 {
				pick := rng.Intn(len(available))
				name = available[pick]
				available = slices.Delete(available, pick, pick+1)
			} else {
				name = fmt.Sprintf("%s Team %d", dept.Department, i+1)
				for {
					if _, taken := used[name]; !taken {
						break
					}
					name = fmt.Sprintf("%s Team %d", dept.Department, sampling.IntBetween(rng, 1, 100))
				}
			}
			used[name] = struct{}{}

			focus := teamFocus(name, dept.Department)
			description := strings.ReplaceAll(cat.TeamDescriptionFor(dept.Department), "{focus}", focus)

			teams = append(teams, models.Team{
				ID:             namegen.NewID(rng),
				Name:           name,
				Description:    description,
				OrganizationID: orgID,
				CreatedAt:      timegen.Between(rng, windowStart, windowEnd),
				Department:     dept.Department,
			})
		}
	}

	return teams
}

// teamQuotas reconciles rounded per-department quotas to exactly the
// configured team count: one team goes to a random department while
// short, the largest department gives one up while over. Ties go to the
// earliest configured department, and a department may drop to zero.
func teamQuotas(rng *rand.Rand, cfg *config.Config) []int {
	depts := cfg.DepartmentDistribution

	var totalShare float64
	for _, d := range depts {
		totalShare += d.Share
	}

	quotas := make([]int, len(depts))
	total := 0
	for i, d := range depts {
		quotas[i] = max(1, int(float64(cfg.NumTeams)*(d.Share/totalShare)))
		total += quotas[i]
	}

	for ; total < cfg.NumTeams; total++ {
		quotas[rng.Intn(len(depts))]++
	}
	for ; total > cfg.NumTeams; total-- {
		largest := 0
		for i, q := range quotas {
			if q > quotas[largest] {
				largest = i
			}
		}
		quotas[largest]--
	}

	return quotas
}

// teamFocus derives the lowercased focus phrase for the description by
// stripping the department from the team name.
func teamFocus(name, department string) string {
	focus := strings.TrimSpace(strings.ReplaceAll(name, department, ""))
	if focus == "" {
		focus = "core"
	}
	return strings.ToLower(focus)
}
