// Package pagination computes the uniform pagination descriptor returned by
// every list endpoint.
package pagination

import "strconv"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Pagination is the descriptor attached to paginated responses.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
}

// Paginate computes the descriptor for a result set. last_page is the
// ceiling of totalCount/perPage and is 0 only for an empty set.
func Paginate(totalCount, page, perPage int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	lastPage := (totalCount + perPage - 1) / perPage

	return Pagination{
		TotalCount:  totalCount,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
	}
}

// Skip returns the number of documents to skip for the given page.
func Skip(page, perPage int) int {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return (page - 1) * perPage
}

// ParsePage clamps a caller-supplied page value to >= 1, falling back to the
// default when missing or non-numeric.
func ParsePage(raw string) int {
	return parseClamped(raw, DefaultPage)
}

// ParsePerPage clamps a caller-supplied page size to >= 1, falling back to
// the default when missing or non-numeric.
func ParsePerPage(raw string) int {
	return parseClamped(raw, DefaultPerPage)
}

func parseClamped(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
