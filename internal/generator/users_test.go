package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsers(t *testing.T) {
	cfg := testConfig(t)
	cat := testCatalog(t)

	users := GenerateUsers(newRNG(11), cfg, cat)

	t.Run("produces the configured headcount", func(t *testing.T) {
		require.Len(t, users, cfg.NumUsers)
	})

	t.Run("assigns unique emails on the organization domain", func(t *testing.T) {
		seen := make(map[string]struct{}, len(users))
		for _, user := range users {
			_, dup := seen[user.Email]
			assert.False(t, dup, "duplicate email %q", user.Email)
			seen[user.Email] = struct{}{}
			assert.True(t, strings.HasSuffix(user.Email, "@"+cfg.OrganizationDomain))
		}
	})

	t.Run("hires inside the staffing window", func(t *testing.T) {
		hireStart := cfg.OrgCreatedAt.AddDate(0, 0, 1)
		hireEnd := cfg.SimulationEndTime.AddDate(0, 0, -30)
		for _, user := range users {
			assert.False(t, user.CreatedAt.Before(hireStart))
			assert.False(t, user.CreatedAt.After(hireEnd))
		}
	})

	t.Run("draws roles and departments from the configuration", func(t *testing.T) {
		depts := make(map[string]struct{}, len(cfg.DepartmentDistribution))
		for _, dept := range cfg.DepartmentDistribution {
			depts[dept.Department] = struct{}{}
		}
		for _, user := range users {
			assert.True(t, user.Role.IsValid(), "unexpected role %q", user.Role)
			assert.Contains(t, depts, user.Department)
		}
	})

	t.Run("reproduces with the same seed", func(t *testing.T) {
		again := GenerateUsers(newRNG(11), cfg, cat)
		require.Equal(t, users, again)
	})
}

func TestActiveUserIDs(t *testing.T) {
	cfg := testConfig(t)
	cat := testCatalog(t)
	users := GenerateUsers(newRNG(11), cfg, cat)

	t.Run("keeps directory order", func(t *testing.T) {
		ids := activeUserIDs(users)
		next := 0
		for _, user := range users {
			if !user.IsActive {
				continue
			}
			require.Less(t, next, len(ids))
			assert.Equal(t, user.ID, ids[next])
			next++
		}
		assert.Len(t, ids, next)
	})

	t.Run("falls back to everyone when nobody is active", func(t *testing.T) {
		inactive := GenerateUsers(newRNG(11), cfg, cat)
		for i := range inactive {
			inactive[i].IsActive = false
		}
		assert.Len(t, activeUserIDs(inactive), len(inactive))
	})
}
