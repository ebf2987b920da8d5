package generator

import (
	"math/rand"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
)

// GenerateOrganization creates the single workspace every other record
// hangs off. Its creation date anchors the earliest timestamp in the
// dataset.
func GenerateOrganization(rng *rand.Rand, cfg *config.Config) models.Organization {
	return models.Organization{
		ID:        namegen.NewID(rng),
		Name:      cfg.OrganizationName,
		CreatedAt: cfg.OrgCreatedAt,
	}
}
