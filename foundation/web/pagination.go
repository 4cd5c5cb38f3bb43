package web

import "math"

// Pagination is the metadata returned with every paginated listing.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination computes listing metadata for a page of results.
func NewPagination(total, page, limit int) Pagination {
	page, limit = ClampPage(page, limit)

	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// ClampPage normalizes page and limit to usable values. Zero or negative
// inputs fall back to the first page and the default page size.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
