// Package namegen produces people names, emails and entity identifiers
// from a seeded random stream.
package namegen

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/sampling"
)

// NewID draws a version 4 UUID from the seeded stream so identifiers
// reproduce across runs with the same seed.
func NewID(rng *rand.Rand) uuid.UUID {
	// rand.Rand.Read never returns an error
	id, _ := uuid.NewRandomFromReader(rng)
	return id
}

// FullName draws a weighted first and last name from the catalog.
func FullName(rng *rand.Rand, cat *catalog.Catalog) string {
	first := weightedName(rng, cat.FirstNames)
	last := weightedName(rng, cat.LastNames)
	return first + " " + last
}

// UniqueNames returns count distinct full names in draw order. When the
// weighted pools run dry it falls back to numbered variants.
func UniqueNames(rng *rand.Rand, cat *catalog.Catalog, count int) []string {
	names := make([]string, 0, count)
	seen := make(map[string]struct{}, count)

	maxAttempts := count * 3
	for attempts := 0; len(names) < count && attempts < maxAttempts; attempts++ {
		name := FullName(rng, cat)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for len(names) < count {
		name := fmt.Sprintf("%s %d", FullName(rng, cat), sampling.IntBetween(rng, 1, 99))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// Email builds a firstname.lastname@domain address from a full name.
func Email(name, domain string) string {
	parts := strings.Fields(strings.ToLower(name))

	local := "user"
	switch {
	case len(parts) >= 2:
		local = parts[0] + "." + parts[len(parts)-1]
	case len(parts) == 1:
		local = parts[0]
	}

	var b strings.Builder
	for _, r := range local {
		if r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String() + "@" + domain
}

// UniqueEmails generates one address per name, numbering the local part
// on collision.
func UniqueEmails(names []string, domain string) []string {
	emails := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		base := Email(name, domain)

		email := base
		for counter := 1; ; counter++ {
			if _, taken := seen[email]; !taken {
				break
			}
			local, host, _ := strings.Cut(base, "@")
			email = fmt.Sprintf("%s%d@%s", local, counter, host)
		}

		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	return emails
}

func weightedName(rng *rand.Rand, pool []catalog.WeightedName) string {
	weights := make([]float64, len(pool))
	for i, entry := range pool {
		weights[i] = entry.Weight
	}
	return pool[sampling.WeightedIndex(rng, weights)].Name
}
