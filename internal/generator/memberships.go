package generator

import (
	"math/rand"

	"github.com/google/uuid"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// GenerateTeamMemberships places every user on a home team in their
// department, lets a slice of active users join one or two extra teams,
// then promotes a member on any staffed team left without a lead. Users
// never exceed three teams and never join one twice.
func GenerateTeamMemberships(rng *rand.Rand, cfg *config.Config, teams []models.Team, users []models.User) []models.TeamMembership {
	memberships := make([]models.TeamMembership, 0, len(users))

	teamsByDept := make(map[string][]models.Team)
	for _, t := range teams {
		teamsByDept[t.Department] = append(teamsByDept[t.Department], t)
	}
	usersByDept := make(map[string][]models.User)
	for _, u := range users {
		usersByDept[u.Department] = append(usersByDept[u.Department], u)
	}

	teamCount := make(map[uuid.UUID]int, len(users))
	leadCount := make(map[uuid.UUID]int, len(teams))
	joined := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(users))

	addMembership := func(team models.Team, user models.User, role models.MembershipRole, windowDays int) {
		joinStart := team.CreatedAt
		if user.CreatedAt.After(joinStart) {
			joinStart = user.CreatedAt
		}
		joinEnd := joinStart.AddDate(0, 0, windowDays)
		if joinEnd.After(cfg.SimulationEndTime) {
			joinEnd = cfg.SimulationEndTime
		}

		memberships = append(memberships, models.TeamMembership{
			ID:       namegen.NewID(rng),
			TeamID:   team.ID,
			UserID:   user.ID,
			Role:     role,
			JoinedAt: timegen.Between(rng, joinStart, joinEnd),
		})

		teamCount[user.ID]++
		if joined[user.ID] == nil {
			joined[user.ID] = make(map[uuid.UUID]struct{})
		}
		joined[user.ID][team.ID] = struct{}{}
	}

	// Home team placement, department by department in configured order.
	for _, dept := range cfg.DepartmentDistribution {
		deptUsers := usersByDept[dept.Department]
		if len(deptUsers) == 0 {
			continue
		}
		deptTeams := teamsByDept[dept.Department]
		if len(deptTeams) == 0 {
			deptTeams = teams
		}

		minSize := min(cfg.MinTeamSize, len(deptUsers)/len(deptTeams))
		sizes := sampling.BucketAllocate(rng, len(deptUsers), len(deptTeams), minSize)

		next := 0
		for teamIdx, size := range sizes {
			team := deptTeams[teamIdx]
			for n := 0; n < size; n++ {
				user := deptUsers[next]
				next++

				role := models.MembershipRoleMember
				if user.IsSenior() && leadCount[team.ID] < 2 && sampling.BiasedBool(rng, 0.3) {
					role = models.MembershipRoleLead
					leadCount[team.ID]++
				}

				addMembership(team, user, role, 30)
			}
		}
	}

	// Cross-team memberships for a share of active users.
	actives := activeUsers(users)
	crossCount := int(float64(len(actives)) * cfg.CrossTeamRate)
	for _, user := range sampling.Sample(rng, actives, crossCount) {
		if teamCount[user.ID] >= 3 {
			continue
		}

		var otherTeams []models.Team
		for _, t := range teams {
			if _, member := joined[user.ID][t.ID]; !member {
				otherTeams = append(otherTeams, t)
			}
		}
		if len(otherTeams) == 0 {
			continue
		}

		extraCount := min(sampling.IntBetween(rng, 1, 2), 3-teamCount[user.ID])
		for _, team := range sampling.Sample(rng, otherTeams, extraCount) {
			addMembership(team, user, models.MembershipRoleMember, 90)
		}
	}

	repairLeadlessTeams(teams, users, memberships)

	return memberships
}

// repairLeadlessTeams promotes the first senior member of any staffed
// team that ended up without a lead, or the first member when no senior
// is available. This is the only mutation applied after creation.
func repairLeadlessTeams(teams []models.Team, users []models.User, memberships []models.TeamMembership) {
	seniors := make(map[uuid.UUID]struct{})
	for _, u := range users {
		if u.IsSenior() {
			seniors[u.ID] = struct{}{}
		}
	}

	hasLead := make(map[uuid.UUID]bool, len(teams))
	for _, m := range memberships {
		if m.Role == models.MembershipRoleLead {
			hasLead[m.TeamID] = true
		}
	}

	for _, team := range teams {
		if hasLead[team.ID] {
			continue
		}

		first := -1
		promoted := false
		for i := range memberships {
			if memberships[i].TeamID != team.ID {
				continue
			}
			if first == -1 {
				first = i
			}
			if _, senior := seniors[memberships[i].UserID]; senior {
				memberships[i].Role = models.MembershipRoleLead
				promoted = true
				break
			}
		}
		if !promoted && first != -1 {
			memberships[first].Role = models.MembershipRoleLead
		}
	}
}
