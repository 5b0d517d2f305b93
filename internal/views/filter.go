package views

import "strings"

// Filter returns the items whose search terms contain query, compared
// case-insensitively as a substring. An empty query returns items unchanged,
// and filtering is idempotent: filtering an already filtered slice with the
// same query is a no-op.
func Filter[T any](items []T, query string, terms func(T) []string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	var matched []T
	for _, item := range items {
		for _, term := range terms(item) {
			if strings.Contains(strings.ToLower(term), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
