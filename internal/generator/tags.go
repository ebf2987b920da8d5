package generator

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
)

// GenerateTags materializes the configured tag set for the organization.
func GenerateTags(rng *rand.Rand, cfg *config.Config, orgID uuid.UUID) []models.Tag {
	tags := make([]models.Tag, 0, len(cfg.Tags))
	for _, spec := range cfg.Tags {
		tags = append(tags, models.Tag{
			ID:             namegen.NewID(rng),
			Name:           spec.Name,
			Color:          spec.Color,
			OrganizationID: orgID,
		})
	}
	return tags
}

// GenerateTaskTags labels the configured share of parent tasks. Keyword
// rules match against the lowercased task name in catalog order, a
// smaller share pick up one or two extra random tags, and duplicate
// pairs are dropped keeping first-seen order.
func GenerateTaskTags(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, tasks []models.Task, tags []models.Tag) []models.TaskTag {
	tagByName := make(map[string]uuid.UUID, len(tags))
	for _, tag := range tags {
		tagByName[tag.Name] = tag.ID
	}

	var taskTags []models.TaskTag
	for _, task := range tasks {
		if task.ParentTaskID != nil {
			continue
		}
		if !sampling.BiasedBool(rng, cfg.TagRate) {
			continue
		}

		name := strings.ToLower(task.Name)
		var assigned []uuid.UUID
		seen := make(map[uuid.UUID]struct{})

		for _, rule := range cat.TagRules {
			id, known := tagByName[rule.Tag]
			if !known {
				continue
			}
			for _, keyword := range rule.Keywords {
				if strings.Contains(name, keyword) {
					if _, dup := seen[id]; !dup {
						seen[id] = struct{}{}
						assigned = append(assigned, id)
					}
					break
				}
			}
		}

		if sampling.BiasedBool(rng, cfg.ExtraTagRate) {
			for _, tag := range sampling.Sample(rng, tags, sampling.IntBetween(rng, 1, 2)) {
				if _, dup := seen[tag.ID]; !dup {
					seen[tag.ID] = struct{}{}
					assigned = append(assigned, tag.ID)
				}
			}
		}

		for _, id := range assigned {
			taskTags = append(taskTags, models.TaskTag{TaskID: task.ID, TagID: id})
		}
	}

	return taskTags
}
