package generator

import (
	"math/rand"
	"regexp"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/sampling"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// specialValues resolves placeholders that depend on stage context, such
// as a project's fiscal quarter, rather than on catalog vocabulary.
type specialValues func(name string) (string, bool)

// fillTemplate substitutes every {placeholder} in textual order. Special
// values win over catalog vocabulary; unknown placeholders stay verbatim
// so a broken catalog surfaces in the output instead of silently
// producing blanks.
func fillTemplate(rng *rand.Rand, cat *catalog.Catalog, scope, template string, special specialValues) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		if special != nil {
			if value, ok := special(name); ok {
				return value
			}
		}
		if values := cat.VocabularyFor(scope, name); len(values) > 0 {
			return sampling.Choice(rng, values)
		}
		return token
	})
}
