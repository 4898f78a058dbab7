// Package repository declares the data-access contracts the console
// usecases depend on. Every implementation is a view over the marketplace
// REST API; the console holds no authoritative store of its own.
package repository

import "console/internal/errors"

// ErrNotFound is returned when the backend reports a missing record.
var ErrNotFound = errors.New("record not found")

// ListQuery selects one page of a resource listing.
type ListQuery struct {
	Page   int    // 1-indexed; values below 1 are treated as 1
	Limit  int    // page size; 0 means the backend default
	Search string // optional free-text filter
}

// Normalize clamps the query to valid bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 0 {
		q.Limit = 0
	}

	return q
}

// Page is one fetched page of records plus its pagination metadata,
// normalized from whichever shape the backend used for the resource.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
