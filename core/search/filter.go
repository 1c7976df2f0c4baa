// ABOUTME: Client-side recipe search used to project the visible list
// ABOUTME: Filtering is pure: it never performs I/O or mutates the input collection

package search

import (
	"strings"

	"recipes-app-api/core/domain"
)

// Filter returns the recipes whose name contains query, ignoring case.
// An empty query returns the whole collection. Whitespace is matched
// literally, so a query of " " only keeps names containing a space.
func Filter(recipes domain.RecipeCollection, query string) domain.RecipeCollection {
	if query == "" {
		return recipes.Clone()
	}

	out := make(domain.RecipeCollection, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single recipe passes the filter for query
func Matches(r domain.Recipe, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(query))
}
