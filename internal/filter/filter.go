// Package filter is the shared list-filtering contract used by every entity
// screen: a free-text query over caller-chosen fields plus any number of
// categorical constraints. It is generic over field accessors so each domain
// package declares once which fields the query searches.
package filter

import "strings"

// Field extracts a comparable text value from an item.
type Field[T any] func(T) string

// ExactMatch constrains a categorical field to an exact value. An empty
// Value means no constraint.
type ExactMatch[T any] struct {
	Value string
	Field Field[T]
}

// Criteria bundles a free-text query with categorical constraints.
type Criteria[T any] struct {
	Query       string
	QueryFields []Field[T]
	Exact       []ExactMatch[T]
}

// Apply returns the items matching the criteria, preserving input order.
// An item matches when the query (case-insensitive substring) hits at least
// one query field — the empty query hits everything — and every non-empty
// categorical value matches its field exactly (case-sensitive).
func Apply[T any](items []T, c Criteria[T]) []T {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, query, c.QueryFields) && matchesExact(item, c.Exact) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery[T any](item T, query string, fields []Field[T]) bool {
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), query) {
			return true
		}
	}
	return false
}

func matchesExact[T any](item T, constraints []ExactMatch[T]) bool {
	for _, c := range constraints {
		if c.Value == "" {
			continue
		}
		if c.Field(item) != c.Value {
			return false
		}
	}
	return true
}
