// Package search holds the listing search contract: a case-insensitive
// substring filter and the input component that feeds it.
package search

import (
	"strings"

	"github.com/damoang/angple-forum/internal/domain"
)

// Filter returns the records whose text contains query, ignoring case.
// An empty query keeps every record. Order is preserved and the result
// never shares a backing array with items.
func Filter(items []domain.Record, query string) []domain.Record {
	return FilterFunc(items, query, func(r domain.Record) string { return r.Text })
}

// FilterFunc is Filter over any element type, with text selecting the
// field that is matched.
func FilterFunc[T any](items []T, query string, text func(T) string) []T {
	out := make([]T, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(text(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether text contains query, ignoring case
func Matches(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
