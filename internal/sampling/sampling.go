package sampling

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
)

// WeightedChoice draws a key with probability proportional to its weight.
// Weights need not sum to 1. Keys are visited in sorted order so the draw
// consumes the stream identically across runs. An empty map yields the zero
// value; a non-positive weight total degrades to a uniform draw.
func WeightedChoice[T cmp.Ordered](rng *rand.Rand, weights map[T]float64) T {
	var zero T
	if len(weights) == 0 {
		return zero
	}
	keys := make([]T, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var total float64
	for _, k := range keys {
		if w := weights[k]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return keys[rng.Intn(len(keys))]
	}

	target := rng.Float64() * total
	var cumulative float64
	for _, k := range keys {
		w := weights[k]
		if w <= 0 {
			continue
		}
		cumulative += w
		if target < cumulative {
			return k
		}
	}
	return keys[len(keys)-1]
}

// WeightedIndex draws an index with probability proportional to weights[i].
// Returns -1 for an empty slice; a non-positive total degrades to uniform.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// BucketAllocate splits total units across buckets, giving every bucket at
// least minPerBucket when the total allows it and spreading the rest one
// unit at a time with inverse-count weights so early allocations level out.
// Infeasible minimums degrade to an even split with the remainder going to
// the leading buckets, without consuming the stream. The result always sums
// to total.
func BucketAllocate(rng *rand.Rand, total, buckets, minPerBucket int) []int {
	if buckets <= 0 {
		return []int{}
	}
	if total < 0 {
		total = 0
	}
	if minPerBucket < 0 {
		minPerBucket = 0
	}

	counts := make([]int, buckets)
	if total < minPerBucket*buckets {
		base := total / buckets
		remainder := total % buckets
		for i := range counts {
			counts[i] = base
			if i < remainder {
				counts[i]++
			}
		}
		return counts
	}

	for i := range counts {
		counts[i] = minPerBucket
	}
	remaining := total - minPerBucket*buckets
	weights := make([]float64, buckets)
	for ; remaining > 0; remaining-- {
		for i, c := range counts {
			weights[i] = 1.0 / float64(c+1)
		}
		counts[WeightedIndex(rng, weights)]++
	}
	return counts
}

// ClampedLogNormalInt draws exp(N(mu, sigma)) truncated to an int and
// clamped into [lo, hi].
func ClampedLogNormalInt(rng *rand.Rand, mu, sigma float64, lo, hi int) int {
	v := math.Exp(rng.NormFloat64()*sigma + mu)
	return clampInt(int(v), lo, hi)
}

// ClampedNormalInt draws N(mean, std) truncated to an int and clamped into
// [lo, hi].
func ClampedNormalInt(rng *rand.Rand, mean, std float64, lo, hi int) int {
	v := rng.NormFloat64()*std + mean
	return clampInt(int(v), lo, hi)
}

// BiasedBool is true with probability p. p<=0 never draws, p>=1 always
// draws; both short-circuit without consuming the stream.
func BiasedBool(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi], lo when the bounds
// are equal or inverted.
func IntBetween(rng *rand.Rand, lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi), lo when the bounds are
// equal or inverted.
func FloatBetween(rng *rand.Rand, lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Choice returns a uniformly drawn element, the zero value for an empty
// slice.
func Choice[T any](rng *rand.Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[rng.Intn(len(items))]
}

// Sample draws k distinct elements. k is clamped to len(items).
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	if k > len(items) {
		k = len(items)
	}
	picked := rng.Perm(len(items))[:k]
	out := make([]T, k)
	for i, j := range picked {
		out[i] = items[j]
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
