package timegen

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"workspace-simulator/internal/sampling"
)

// Shape selects how Staggered spreads timestamps across the range
type Shape string

const (
	ShapeUniform Shape = "uniform"
	ShapeGrowth  Shape = "growth"
	ShapeBurst   Shape = "burst"
)

const (
	weekdayBias      = 0.85
	businessBias     = 0.80
	burstInterval    = 14 * 24 * time.Hour
	burstJitterSigma = 1.5 * 24 * float64(time.Hour)
)

// All helpers operate on UTC timestamps with second resolution.

// Between returns a uniform timestamp in [start, end], start when the
// bounds are equal or inverted.
func Between(rng *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	window := int64(end.Sub(start) / time.Second)
	if window <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(window+1)) * time.Second)
}

// StrictlyBetween returns a timestamp inside (start, end). Windows under
// two seconds fall back to the midpoint; an empty window returns start.
func StrictlyBetween(rng *rand.Rand, start, end time.Time) time.Time {
	window := end.Sub(start)
	if window <= 0 {
		return start
	}
	seconds := int64(window / time.Second)
	if seconds < 2 {
		return start.Add(window / 2)
	}
	return start.Add(time.Duration(1+rng.Int63n(seconds-1)) * time.Second)
}

// BusinessBiased draws like Between but lands ~85% of draws on weekdays
// (bounded resampling, at most 10 attempts) and ~80% within 09:00-17:00.
// The hour rebias is skipped when it would leave [start, end].
func BusinessBiased(rng *rand.Rand, start, end time.Time) time.Time {
	t := Between(rng, start, end)
	for attempts := 0; isWeekend(t) && attempts < 10; attempts++ {
		if rng.Float64() >= weekdayBias {
			break
		}
		t = Between(rng, start, end)
	}
	if rng.Float64() < businessBias {
		candidate := time.Date(t.Year(), t.Month(), t.Day(), 9+rng.Intn(8), rng.Intn(60), t.Second(), 0, time.UTC)
		if !candidate.Before(start) && !candidate.After(end) {
			t = candidate
		}
	}
	return t
}

// Staggered produces count timestamps in [start, end] sorted ascending.
// ShapeGrowth biases density toward end, ShapeBurst clusters draws around
// anchors spaced burstInterval apart with Gaussian jitter clamped back into
// range, anything else is uniform.
func Staggered(rng *rand.Rand, start, end time.Time, count int, shape Shape) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, 0, count)
	if !end.After(start) {
		for i := 0; i < count; i++ {
			out = append(out, start)
		}
		return out
	}

	switch shape {
	case ShapeGrowth:
		span := float64(end.Sub(start))
		for i := 0; i < count; i++ {
			progress := math.Sqrt(rng.Float64())
			out = append(out, start.Add(time.Duration(progress*span)).Truncate(time.Second))
		}
	case ShapeBurst:
		anchors := burstAnchors(start, end)
		for i := 0; i < count; i++ {
			anchor := anchors[rng.Intn(len(anchors))]
			t := anchor.Add(time.Duration(rng.NormFloat64() * burstJitterSigma)).Truncate(time.Second)
			if t.Before(start) {
				t = start
			}
			if t.After(end) {
				t = end
			}
			out = append(out, t)
		}
	default:
		for i := 0; i < count; i++ {
			out = append(out, Between(rng, start, end))
		}
	}

	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// DueDateShares fixes how generated due dates distribute around the "now"
// horizon. Shares are evaluated in a fixed order (none, overdue, week,
// month, quarter) so the draw consumes the stream identically across runs.
type DueDateShares struct {
	NoDate        float64 `mapstructure:"no_date"`
	Overdue       float64 `mapstructure:"overdue"`
	WithinWeek    float64 `mapstructure:"within_week"`
	WithinMonth   float64 `mapstructure:"within_month"`
	WithinQuarter float64 `mapstructure:"within_quarter"`
}

// DueDate returns a date-resolution deadline, nil for the no-date share.
// A non-nil result is always strictly after createdAt as a date; overdue
// draws land in the recent past and are clamped forward when the task is
// younger than the draw.
func DueDate(rng *rand.Rand, shares DueDateShares, createdAt, now time.Time) *time.Time {
	r := rng.Float64()

	cumulative := shares.NoDate
	if r < cumulative {
		return nil
	}

	earliest := DateOf(createdAt).AddDate(0, 0, 1)

	cumulative += shares.Overdue
	if r < cumulative {
		due := DateOf(now.AddDate(0, 0, -sampling.IntBetween(rng, 1, 14)))
		if due.Before(earliest) {
			due = earliest
		}
		return &due
	}

	cumulative += shares.WithinWeek
	if r < cumulative {
		due := DateOf(createdAt.AddDate(0, 0, sampling.IntBetween(rng, 1, 7)))
		return &due
	}

	cumulative += shares.WithinMonth
	if r < cumulative {
		due := DateOf(createdAt.AddDate(0, 0, sampling.IntBetween(rng, 8, 30)))
		return &due
	}

	due := DateOf(createdAt.AddDate(0, 0, sampling.IntBetween(rng, 31, 90)))
	return &due
}

// CycleBucket is one band of the cycle-time distribution: tasks in this
// bucket complete MinDays to MaxDays after creation.
type CycleBucket struct {
	Name    string  `mapstructure:"name"`
	MinDays float64 `mapstructure:"min_days"`
	MaxDays float64 `mapstructure:"max_days"`
	Share   float64 `mapstructure:"share"`
}

// CompletionTime draws a completion timestamp from the bucketed cycle-time
// distribution. The result is always strictly after createdAt and never
// after now; draws that overshoot the horizon are re-placed uniformly
// inside the remaining window instead of clamped onto its edge.
func CompletionTime(rng *rand.Rand, buckets []CycleBucket, createdAt, now time.Time) time.Time {
	bucket := CycleBucket{MinDays: 1, MaxDays: 7}
	if len(buckets) > 0 {
		bucket = buckets[len(buckets)-1]
		r := rng.Float64()
		var cumulative float64
		for _, b := range buckets {
			cumulative += b.Share
			if r < cumulative {
				bucket = b
				break
			}
		}
	}

	days := sampling.FloatBetween(rng, bucket.MinDays, bucket.MaxDays)
	completed := createdAt.Add(time.Duration(days * 24 * float64(time.Hour))).Truncate(time.Second)
	if completed.After(now) || !completed.After(createdAt) {
		completed = StrictlyBetween(rng, createdAt, now)
	}
	return completed
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func burstAnchors(start, end time.Time) []time.Time {
	var anchors []time.Time
	for t := start; t.Before(end); t = t.Add(burstInterval) {
		anchors = append(anchors, t)
	}
	if len(anchors) == 0 {
		anchors = append(anchors, start)
	}
	return anchors
}
