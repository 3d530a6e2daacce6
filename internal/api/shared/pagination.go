package shared

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Pagination limits. A listing request may ask for at most MaxPageLimit
// records per page; asking for more is a client error, not a silent clamp.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ErrLimitTooLarge is returned when a requested page limit exceeds
// MaxPageLimit.
var ErrLimitTooLarge = fmt.Errorf("limit must not exceed %d", MaxPageLimit)

// PageParams holds the normalized page/limit pair for a listing request.
type PageParams struct {
	Page  int
	Limit int
}

// Pagination is the result summary returned alongside a listing.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

// NewPageParams normalizes raw page/limit query values.
// Absent, non-numeric, or non-positive values fall back to page 1 and
// DefaultPageLimit. A limit above MaxPageLimit yields ErrLimitTooLarge.
func NewPageParams(pageRaw, limitRaw string) (PageParams, error) {
	page := cast.ToInt(pageRaw)
	if page < 1 {
		page = 1
	}

	limit := cast.ToInt(limitRaw)
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return PageParams{}, ErrLimitTooLarge
	}

	return PageParams{Page: page, Limit: limit}, nil
}

// Offset returns the number of records to skip for these parameters.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate computes the result summary for a listing of total records
// under the given parameters. A total of 0 yields 0 total pages.
func Paginate(p PageParams, total int64) Pagination {
	if p.Limit <= 0 {
		// Normalized params always carry a positive limit; guard anyway.
		p.Limit = DefaultPageLimit
	}

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))

	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
	}
}

// IsValidationError reports whether err is a pagination parameter error
// that should surface as a 400 rather than a 500.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLimitTooLarge)
}
