package pagination

import "math"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Params holds page-based pagination input.
type Params struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Normalize clamps the parameters into valid ranges.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// Offset calculates the row offset for SQL queries.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages computes the page count for a total row count.
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.PageSize)))
}
