// Package pagination implements the fixed-size page contract used by the
// feed and dashboard listings.
package pagination

import (
	"math"
	"strconv"
)

// Page is one bounded view of an ordered collection plus the metadata a
// client needs to walk the rest of it.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

// Normalize parses a raw page parameter. Absent, non-numeric, or
// non-positive values fall back to page 1.
func Normalize(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// TotalPages returns the number of pages needed for totalCount items.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Offset returns the number of items preceding the requested page. The
// multiplication saturates instead of overflowing, so an absurdly large
// page stays a large positive offset and resolves to an empty page.
func Offset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// New wraps an already-bounded slice with page metadata. Used when the
// store applied LIMIT/OFFSET itself.
func New[T any](items []T, page, pageSize, totalCount int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		TotalPages: TotalPages(totalCount, pageSize),
		TotalCount: totalCount,
	}
}

// Slice paginates an in-memory ordered slice. Pages past the end yield an
// empty slice, not an error.
func Slice[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	start := Offset(page, pageSize)
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	bounded := make([]T, end-start)
	copy(bounded, items[start:end])

	return New(bounded, page, pageSize, total)
}
