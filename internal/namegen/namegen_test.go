package namegen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-simulator/internal/catalog"
)

func TestNewID(t *testing.T) {
	t.Run("same seed gives same ids", func(t *testing.T) {
		a := rand.New(rand.NewSource(42))
		b := rand.New(rand.NewSource(42))

		for i := 0; i < 10; i++ {
			assert.Equal(t, NewID(a), NewID(b))
		}
	})

	t.Run("ids are version 4", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		id := NewID(rng)
		assert.Equal(t, uint8(4), id[6]>>4)
	})

	t.Run("different draws differ", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		assert.NotEqual(t, NewID(rng), NewID(rng))
	})
}

func TestFullName(t *testing.T) {
	cat := catalog.Default()
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		name := FullName(rng, cat)
		parts := strings.Fields(name)
		require.Len(t, parts, 2, "name %q should be first and last", name)
	}
}

func TestUniqueNames(t *testing.T) {
	cat := catalog.Default()

	t.Run("all names distinct", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		names := UniqueNames(rng, cat, 200)

		require.Len(t, names, 200)
		seen := make(map[string]struct{})
		for _, name := range names {
			_, dup := seen[name]
			assert.False(t, dup, "duplicate name %q", name)
			seen[name] = struct{}{}
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		first := UniqueNames(rand.New(rand.NewSource(11)), cat, 50)
		second := UniqueNames(rand.New(rand.NewSource(11)), cat, 50)
		assert.Equal(t, first, second)
	})

	t.Run("numbered variants kick in when pool exhausts", func(t *testing.T) {
		tiny := catalog.Default()
		tiny.FirstNames = []catalog.WeightedName{{Name: "Ada", Weight: 1}}
		tiny.LastNames = []catalog.WeightedName{{Name: "Lovelace", Weight: 1}}

		rng := rand.New(rand.NewSource(5))
		names := UniqueNames(rng, tiny, 5)

		require.Len(t, names, 5)
		assert.Equal(t, "Ada Lovelace", names[0])
		for _, name := range names[1:] {
			assert.True(t, strings.HasPrefix(name, "Ada Lovelace "), "variant %q", name)
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("first dot last at domain", func(t *testing.T) {
		assert.Equal(t, "maria.garcia@example.com", Email("Maria Garcia", "example.com"))
	})

	t.Run("middle names dropped", func(t *testing.T) {
		assert.Equal(t, "mary.smith@example.com", Email("Mary Anne Smith", "example.com"))
	})

	t.Run("special characters stripped", func(t *testing.T) {
		assert.Equal(t, "oconnor.lee@example.com", Email("O'Connor Lee", "example.com"))
	})

	t.Run("single word name", func(t *testing.T) {
		assert.Equal(t, "cher@example.com", Email("Cher", "example.com"))
	})

	t.Run("empty name falls back", func(t *testing.T) {
		assert.Equal(t, "user@example.com", Email("", "example.com"))
	})
}

func TestUniqueEmails(t *testing.T) {
	t.Run("collisions numbered in order", func(t *testing.T) {
		names := []string{"James Smith", "James Smith", "James Smith"}
		emails := UniqueEmails(names, "acme.io")

		assert.Equal(t, []string{
			"james.smith@acme.io",
			"james.smith1@acme.io",
			"james.smith2@acme.io",
		}, emails)
	})

	t.Run("one email per name", func(t *testing.T) {
		names := []string{"Ana Lopez", "Wei Chen", "Ana Lopez", "Raj Patel"}
		emails := UniqueEmails(names, "acme.io")

		require.Len(t, emails, len(names))
		seen := make(map[string]struct{})
		for _, email := range emails {
			_, dup := seen[email]
			assert.False(t, dup, "duplicate email %q", email)
			seen[email] = struct{}{}
		}
	})
}
