package generator

import (
	"math/rand"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
)

// GenerateSections lays out every project's board from its department's
// section template, positions numbered left to right from zero. The last
// section is the board's done column.
func GenerateSections(rng *rand.Rand, cat *catalog.Catalog, projects []models.Project) []models.Section {
	var sections []models.Section
	for _, project := range projects {
		for position, name := range cat.SectionTemplatesFor(project.Department) {
			sections = append(sections, models.Section{
				ID:        namegen.NewID(rng),
				Name:      name,
				ProjectID: project.ID,
				Position:  position,
			})
		}
	}
	return sections
}
