// Package page implements the pagination model: page-size-driven windowing
// over a dynamically sized entry list, with page-count recomputation and
// clamping.
package page

import (
	"fmt"

	serr "peruse/internal/errors"
	"peruse/pkg/types"
)

// Page size bounds accepted from configuration and the resize command.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// ValidSize reports whether n is an acceptable page size.
func ValidSize(n int) bool {
	return n >= MinPageSize && n <= MaxPageSize
}

// CheckSize returns an InputError for out-of-range page sizes.
func CheckSize(n int) error {
	if !ValidSize(n) {
		return serr.NewInputError(
			fmt.Sprintf("page size must be between %d and %d", MinPageSize, MaxPageSize),
			fmt.Sprintf("%d", n))
	}
	return nil
}

// Recompute derives a consistent PageState from the current entry count.
// totalPages is at least 1 even for an empty listing, and currentPage is
// clamped into [1, totalPages]: overshoot from a prior larger listing or
// undershoot from initialization is corrected, not errored.
func Recompute(entryCount, pageSize, currentPage int) types.PageState {
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	totalPages := (entryCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return types.PageState{
		PageSize:    pageSize,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
}

// Window returns the zero-based half-open index range [start, end) of the
// entries on the current page, intersected with [0, entryCount).
func Window(ps types.PageState, entryCount int) (start, end int) {
	start = (ps.CurrentPage - 1) * ps.PageSize
	end = start + ps.PageSize
	if start > entryCount {
		start = entryCount
	}
	if end > entryCount {
		end = entryCount
	}
	return start, end
}
