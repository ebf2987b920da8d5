package generator

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
	"workspace-simulator/internal/timegen"
)

// GenerateComments writes discussion threads onto tasks and subtasks.
// Thread length follows the configured buckets, text comes from weighted
// comment kinds, and timestamps spread forward through the task's open
// window so each thread reads in chronological order.
func GenerateComments(rng *rand.Rand, cfg *config.Config, cat *catalog.Catalog, tasks []models.Task, users []models.User) []models.Comment {
	if len(users) == 0 {
		return nil
	}

	kindWeights := make([]float64, len(cat.CommentTemplates))
	for i, set := range cat.CommentTemplates {
		kindWeights[i] = set.Weight
	}
	activeIDs := activeUserIDs(users)

	var comments []models.Comment
	for _, task := range tasks {
		count := drawCount(rng, cfg.CommentDistribution)
		if count == 0 {
			continue
		}

		taskEnd := cfg.SimulationEndTime
		if task.CompletedAt != nil {
			taskEnd = *task.CompletedAt
		}
		span := taskEnd.Sub(task.CreatedAt)

		// Assignee and creator talk most; a handful of bystanders drop in.
		pool := make([]uuid.UUID, 0, 7)
		if task.AssigneeID != nil {
			pool = append(pool, *task.AssigneeID)
		}
		pool = append(pool, task.CreatedByID)
		pool = append(pool, sampling.Sample(rng, activeIDs, 5)...)

		batch := make([]models.Comment, 0, count)
		times := make([]time.Time, 0, count)
		for i := 0; i < count; i++ {
			kind := cat.CommentTemplates[sampling.WeightedIndex(rng, kindWeights)]

			var authorID uuid.UUID
			if task.AssigneeID != nil && rng.Float64() < 0.5 {
				authorID = *task.AssigneeID
			} else {
				authorID = sampling.Choice(rng, pool)
			}

			// Later comments may land anywhere up to a point that moves
			// toward the end of the window, plus slack.
			progress := float64(i+1)/float64(count+1) + cfg.CommentWindowSlack
			if progress > 1 {
				progress = 1
			}
			windowEnd := task.CreatedAt.Add(time.Duration(progress * float64(span)))
			times = append(times, timegen.Between(rng, task.CreatedAt, windowEnd))

			batch = append(batch, models.Comment{
				ID:       namegen.NewID(rng),
				TaskID:   task.ID,
				AuthorID: authorID,
				Text:     sampling.Choice(rng, kind.Texts),
			})
		}

		slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })
		for i := range batch {
			batch[i].CreatedAt = times[i]
		}
		comments = append(comments, batch...)
	}

	return comments
}
