package pagination

import "gorm.io/gorm"

const (
	DefaultPageSize = 10
	MaxPageSize     = 250
)

// Pagination is an offset page request. PageNumber is 0-based; a page past
// the end of the result set yields an empty slice, not an error.
type Pagination struct {
	PageNumber int `form:"pageNumber,default=0"`
	PageSize   int `form:"pageSize,default=10"`
}

// Normalize clamps the request to sane bounds.
func (p Pagination) Normalize() Pagination {
	if p.PageNumber < 0 {
		p.PageNumber = 0
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Apply adds the offset window to stmt.
func (p Pagination) Apply(stmt *gorm.DB) *gorm.DB {
	return stmt.Offset(p.PageNumber * p.PageSize).Limit(p.PageSize)
}
