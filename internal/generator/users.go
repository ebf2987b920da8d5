package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// GenerateUsers builds the workforce: unique names and emails, hire
// dates staggered along a growth curve, weighted roles and departments,
// and turnover biased so long-tenured accounts deactivate more often.
func GenerateUsers(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog) []models.User {
	names := namegen.UniqueNames(rng, cat, cfg.NumUsers)
	emails := namegen.UniqueEmails(names, cfg.OrganizationDomain)

	hireStart := cfg.OrgCreatedAt.AddDate(0, 0, 1)
	hireEnd := cfg.SimulationEndTime.AddDate(0, 0, -30)
	hireDates := timegen.Staggered(rng, hireStart, hireEnd, cfg.NumUsers, timegen.ShapeGrowth)

	roleShares := make([]float64, len(cfg.RoleDistribution))
	for i, r := range cfg.RoleDistribution {
		roleShares[i] = r.Share
	}
	deptShares := make([]float64, len(cfg.DepartmentDistribution))
	for i, d := range cfg.DepartmentDistribution {
		deptShares[i] = d.Share
	}

	users := make([]models.User, 0, cfg.NumUsers)
	for i := 0; i < cfg.NumUsers; i++ {
		role := cfg.RoleDistribution[sampling.WeightedIndex(rng, roleShares)].Role
		dept := cfg.DepartmentDistribution[sampling.WeightedIndex(rng, deptShares)].Department

		// Churn hits veterans harder than recent hires.
		turnover := cfg.InactiveUserRate * 0.5
		if cfg.SimulationEndTime.Sub(hireDates[i]) > 365*24*time.Hour {
			turnover = cfg.InactiveUserRate * 1.5
		}

		users = append(users, models.User{
			ID:         namegen.NewID(rng),
			Email:      emails[i],
			Name:       names[i],
			Role:       models.UserRole(role),
			Department: dept,
			IsActive:   !sampling.BiasedBool(rng, turnover),
			CreatedAt:  hireDates[i],
		})
	}

	return users
}

// activeUsers filters to users still employed at the simulation end.
func activeUsers(users []models.User) []models.User {
	var out []models.User
	for _, u := range users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out
}

// activeUserIDs returns the ids of active users in directory order,
// falling back to the whole directory when nobody is active.
func activeUserIDs(users []models.User) []uuid.UUID {
	var out []uuid.UUID
	for _, u := range users {
		if u.IsActive {
			out = append(out, u.ID)
		}
	}
	if len(out) == 0 {
		for _, u := range users {
			out = append(out, u.ID)
		}
	}
	return out
}
