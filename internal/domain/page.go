package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100, and the page is capped so Offset cannot overflow.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	if page != nil && *page >= 1 {
		p.Page = min(*page, math.MaxInt/p.Limit)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
// Offsets that would overflow int saturate at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Window returns the [start, end) bounds of the page within a list of n items.
// Pages past the end yield an empty window.
func (p PaginationParams) Window(n int) (start, end int) {
	start = min(p.Offset(), n)
	end = start + min(max(p.Limit, 0), n-start)
	return start, end
}
