package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the candidates containing query as a case-insensitive
// substring, in candidate order. Callers treat an empty query as "show all"
// and do not call Filter for it.
func Filter(candidates []string, query string) []string {
	fold := cases.Fold()
	needle := fold.String(query)
	matches := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if strings.Contains(fold.String(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches
}
