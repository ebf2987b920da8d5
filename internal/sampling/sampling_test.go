package sampling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestWeightedChoice(t *testing.T) {
	t.Run("single entry always wins", func(t *testing.T) {
		rng := newRng()
		for i := 0; i < 50; i++ {
			got := WeightedChoice(rng, map[string]float64{"only": 0.001})
			assert.Equal(t, "only", got)
		}
	})

	t.Run("empty map yields zero value", func(t *testing.T) {
		rng := newRng()
		assert.Equal(t, "", WeightedChoice(rng, map[string]float64{}))
		assert.Equal(t, 0, WeightedChoice(rng, map[int]float64{}))
	})

	t.Run("zero weights degrade to uniform", func(t *testing.T) {
		rng := newRng()
		seen := map[string]bool{}
		for i := 0; i < 200; i++ {
			got := WeightedChoice(rng, map[string]float64{"a": 0, "b": 0})
			seen[got] = true
		}
		assert.True(t, seen["a"])
		assert.True(t, seen["b"])
	})

	t.Run("weights need not sum to one", func(t *testing.T) {
		rng := newRng()
		counts := map[string]int{}
		for i := 0; i < 2000; i++ {
			counts[WeightedChoice(rng, map[string]float64{"heavy": 9, "light": 1})]++
		}
		assert.Greater(t, counts["heavy"], counts["light"]*4)
	})

	t.Run("identical seeds draw identical sequences", func(t *testing.T) {
		weights := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}
		rng1, rng2 := newRng(), newRng()
		for i := 0; i < 100; i++ {
			assert.Equal(t, WeightedChoice(rng1, weights), WeightedChoice(rng2, weights))
		}
	})
}

func TestWeightedIndex(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		assert.Equal(t, -1, WeightedIndex(newRng(), nil))
	})

	t.Run("single entry", func(t *testing.T) {
		assert.Equal(t, 0, WeightedIndex(newRng(), []float64{3.5}))
	})

	t.Run("zero-weight entries are never drawn", func(t *testing.T) {
		rng := newRng()
		for i := 0; i < 200; i++ {
			assert.Equal(t, 1, WeightedIndex(rng, []float64{0, 1, 0}))
		}
	})
}

func TestBucketAllocate(t *testing.T) {
	t.Run("sum always equals total", func(t *testing.T) {
		rng := newRng()
		for _, tc := range []struct{ total, buckets, min int }{
			{100, 7, 3}, {5000, 100, 5}, {10, 5, 2}, {3, 5, 1}, {0, 4, 0},
		} {
			counts := BucketAllocate(rng, tc.total, tc.buckets, tc.min)
			assert.Len(t, counts, tc.buckets)
			sum := 0
			for _, c := range counts {
				sum += c
			}
			assert.Equal(t, tc.total, sum, "total=%d buckets=%d min=%d", tc.total, tc.buckets, tc.min)
		}
	})

	t.Run("minimum honored when feasible", func(t *testing.T) {
		counts := BucketAllocate(newRng(), 100, 7, 3)
		for _, c := range counts {
			assert.GreaterOrEqual(t, c, 3)
		}
	})

	t.Run("exact minimums leave nothing to spread", func(t *testing.T) {
		counts := BucketAllocate(newRng(), 10, 5, 2)
		assert.Equal(t, []int{2, 2, 2, 2, 2}, counts)
	})

	t.Run("infeasible minimums degrade to even split", func(t *testing.T) {
		counts := BucketAllocate(newRng(), 3, 5, 1)
		assert.Equal(t, []int{1, 1, 1, 0, 0}, counts)
	})

	t.Run("no buckets", func(t *testing.T) {
		assert.Empty(t, BucketAllocate(newRng(), 10, 0, 1))
	})

	t.Run("negative total clamps to zero", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0}, BucketAllocate(newRng(), -4, 3, 0))
	})
}

func TestClampedDraws(t *testing.T) {
	t.Run("log-normal stays within bounds", func(t *testing.T) {
		rng := newRng()
		for i := 0; i < 1000; i++ {
			v := ClampedLogNormalInt(rng, 1.0, 0.8, 1, 10)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 10)
		}
	})

	t.Run("normal stays within bounds", func(t *testing.T) {
		rng := newRng()
		for i := 0; i < 1000; i++ {
			v := ClampedNormalInt(rng, 5, 3, 0, 8)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 8)
		}
	})
}

func TestBiasedBool(t *testing.T) {
	t.Run("degenerate probabilities", func(t *testing.T) {
		rng := newRng()
		assert.False(t, BiasedBool(rng, 0))
		assert.False(t, BiasedBool(rng, -1))
		assert.True(t, BiasedBool(rng, 1))
		assert.True(t, BiasedBool(rng, 1.5))
	})

	t.Run("mid probability produces both outcomes", func(t *testing.T) {
		rng := newRng()
		trues := 0
		for i := 0; i < 1000; i++ {
			if BiasedBool(rng, 0.5) {
				trues++
			}
		}
		assert.Greater(t, trues, 350)
		assert.Less(t, trues, 650)
	})
}

func TestIntBetween(t *testing.T) {
	t.Run("inverted bounds return lo", func(t *testing.T) {
		assert.Equal(t, 9, IntBetween(newRng(), 9, 3))
		assert.Equal(t, 4, IntBetween(newRng(), 4, 4))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		rng := newRng()
		seen := map[int]bool{}
		for i := 0; i < 500; i++ {
			v := IntBetween(rng, 2, 4)
			assert.GreaterOrEqual(t, v, 2)
			assert.LessOrEqual(t, v, 4)
			seen[v] = true
		}
		assert.Len(t, seen, 3)
	})
}

func TestFloatBetween(t *testing.T) {
	rng := newRng()
	for i := 0; i < 500; i++ {
		v := FloatBetween(rng, 0.7, 0.85)
		assert.GreaterOrEqual(t, v, 0.7)
		assert.Less(t, v, 0.85)
	}
	assert.Equal(t, 2.0, FloatBetween(rng, 2.0, 1.0))
}

func TestChoice(t *testing.T) {
	t.Run("empty slice yields zero value", func(t *testing.T) {
		assert.Equal(t, "", Choice(newRng(), []string{}))
	})

	t.Run("draws stay inside the slice", func(t *testing.T) {
		rng := newRng()
		items := []string{"x", "y", "z"}
		for i := 0; i < 100; i++ {
			assert.Contains(t, items, Choice(rng, items))
		}
	})
}

func TestSample(t *testing.T) {
	t.Run("k larger than slice returns a permutation", func(t *testing.T) {
		got := Sample(newRng(), []int{1, 2, 3}, 10)
		assert.ElementsMatch(t, []int{1, 2, 3}, got)
	})

	t.Run("elements are distinct", func(t *testing.T) {
		rng := newRng()
		items := []int{1, 2, 3, 4, 5, 6, 7, 8}
		for i := 0; i < 50; i++ {
			got := Sample(rng, items, 4)
			assert.Len(t, got, 4)
			seen := map[int]bool{}
			for _, v := range got {
				assert.False(t, seen[v])
				seen[v] = true
			}
		}
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, Sample(newRng(), []int{1, 2}, 0))
	})
}
