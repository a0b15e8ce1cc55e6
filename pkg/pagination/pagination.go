package pagination

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// Params holds validated pagination parameters. When Enabled is false the
// caller requested no pagination and list queries run unwindowed.
type Params struct {
	Page    int
	Limit   int
	Offset  int
	Enabled bool
}

// TotalPages derives the page count for a result set of the given size.
func (p Params) TotalPages(totalCount int64) int {
	if !p.Enabled || p.Limit == 0 {
		return 1
	}
	return int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
}

// Parse extracts page/limit from the query string. If neither is present,
// pagination is disabled for the call. If either is present, both are
// validated as positive integers and limit is capped at MaxLimit.
func Parse(c *gin.Context) (Params, error) {
	rawPage := c.Query("page")
	rawLimit := c.Query("limit")
	if rawPage == "" && rawLimit == "" {
		return Params{}, nil
	}

	page := DefaultPage
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidPage
		}
		page = n
	}

	limit := DefaultLimit
	if rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidLimit
		}
		limit = n
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:    page,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		Enabled: true,
	}, nil
}
