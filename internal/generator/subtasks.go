package generator

import (
	"math/rand"
	"time"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// GenerateSubtasks nests a checklist under the configured share of
// parent tasks. Subtasks inherit the parent's project, section,
// assignee, creator and due date, and are created within two days of the
// parent. A completed parent's subtasks are mostly done and always
// finish strictly before the parent; an open parent shows partial
// progress that grows down the list.
func GenerateSubtasks(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, parents []models.Task) []models.Task {
	var subtasks []models.Task

	for _, parent := range parents {
		if parent.ParentTaskID != nil {
			continue
		}
		if !sampling.BiasedBool(rng, cfg.SubtaskRate) {
			continue
		}

		count := drawCount(rng, cfg.SubtaskCounts)
		used := make(map[string]struct{}, count)

		createdEnd := parent.CreatedAt.Add(48 * time.Hour)
		if parent.Completed && parent.CompletedAt != nil && parent.CompletedAt.Before(createdEnd) {
			createdEnd = *parent.CompletedAt
		}
		if cfg.SimulationEndTime.Before(createdEnd) {
			createdEnd = cfg.SimulationEndTime
		}

		parentID := parent.ID
		for i := 0; i < count; i++ {
			name := subtaskName(rng, cat, used)
			used[name] = struct{}{}

			createdAt := timegen.Between(rng, parent.CreatedAt, createdEnd)

			var completed bool
			var completedAt *time.Time
			if parent.Completed && parent.CompletedAt != nil {
				odds := cfg.SubtaskDoneBase - cfg.SubtaskDoneDecay*float64(i)
				if sampling.BiasedBool(rng, odds) && parent.CompletedAt.After(createdAt) {
					at := timegen.StrictlyBetween(rng, createdAt, *parent.CompletedAt)
					completed = true
					completedAt = &at
				}
			} else {
				odds := cfg.SubtaskOpenBase + cfg.SubtaskOpenRamp*float64(i)
				if sampling.BiasedBool(rng, odds) && cfg.SimulationEndTime.After(createdAt) {
					at := timegen.StrictlyBetween(rng, createdAt, cfg.SimulationEndTime)
					completed = true
					completedAt = &at
				}
			}

			subtasks = append(subtasks, models.Task{
				ID:           namegen.NewID(rng),
				Name:         name,
				ProjectID:    parent.ProjectID,
				SectionID:    parent.SectionID,
				AssigneeID:   parent.AssigneeID,
				CreatedByID:  parent.CreatedByID,
				ParentTaskID: &parentID,
				DueDate:      parent.DueDate,
				Completed:    completed,
				CompletedAt:  completedAt,
				CreatedAt:    createdAt,
				Position:     i,
			})
		}
	}

	return subtasks
}

// subtaskName resolves a pattern from the catalog, rerolling up to ten
// times on a collision within the same parent. The last roll stands even
// when still taken.
func subtaskName(rng *rand.Rand, cat *catalog.Catalog, used map[string]struct{}) string {
	name := resolveSubtaskPattern(rng, cat)
	for attempt := 0; attempt < 10; attempt++ {
		if _, taken := used[name]; !taken {
			break
		}
		name = resolveSubtaskPattern(rng, cat)
	}
	return name
}

func resolveSubtaskPattern(rng *rand.Rand, cat *catalog.Catalog) string {
	return fillTemplate(rng, cat, catalog.ScopeSubtask, sampling.Choice(rng, cat.SubtaskPatterns), nil)
}

// drawCount picks a bucket by share, then a uniform count inside it.
func drawCount(rng *rand.Rand, buckets []config.CountBucket) int {
	if len(buckets) == 0 {
		return 0
	}
	shares := make([]float64, len(buckets))
	for i, b := range buckets {
		shares[i] = b.Share
	}
	bucket := buckets[sampling.WeightedIndex(rng, shares)]
	return sampling.IntBetween(rng, bucket.Min, bucket.Max)
}
