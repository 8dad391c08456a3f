// Package listquery filters record lists by status and free text.
package listquery

import "strings"

// StatusAll disables status filtering.
const StatusAll = "all"

// FilterStatus keeps the items whose status equals status, ignoring case.
// An empty status or "all" returns every item.
func FilterStatus[T any](items []T, status string, statusOf func(T) string) []T {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, StatusAll) {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(statusOf(item), status) {
			out = append(out, item)
		}
	}
	return out
}

// Search keeps the items where any of the fields contains query as a
// case-insensitive substring. A blank query returns every item.
func Search[T any](items []T, query string, fieldsOf func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fieldsOf(item) {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Query is the one status filter and one free-text query a list view applies.
type Query struct {
	Status string
	Text   string
}

// Apply runs the status filter and then the text search.
func Apply[T any](items []T, q Query, statusOf func(T) string, fieldsOf func(T) []string) []T {
	return Search(FilterStatus(items, q.Status, statusOf), q.Text, fieldsOf)
}
