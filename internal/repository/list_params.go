package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const defaultPageSize = 10

// ListParams is the common query contract every list endpoint accepts:
// zero-based page, page size, substring search, creation-time range and an
// entity-specific id-set filter folded into the ownership filter.
type ListParams struct {
	Page      int
	PageSize  int
	Search    string
	StartTime *time.Time
	EndTime   *time.Time

	// BossIDs / StaffIDs restrict the linking foreign key for the entities
	// that have one (clothing, production). Ignored elsewhere.
	BossIDs  []uint
	StaffIDs []uint
}

// ListResult pairs a page of rows with the total count over the filtered but
// unpaginated query.
type ListResult[T any] struct {
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p ListParams) page() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page
}

func (p ListParams) pageSize() int {
	if p.PageSize <= 0 {
		return defaultPageSize
	}
	return p.PageSize
}

// Filters applies search and time-range conditions. The search is a
// case-sensitive substring match OR-combined over the given columns.
func (p ListParams) Filters(searchColumns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Search != "" && len(searchColumns) > 0 {
			pattern := "%" + p.Search + "%"
			clauses := make([]string, len(searchColumns))
			args := make([]interface{}, len(searchColumns))
			for i, col := range searchColumns {
				clauses[i] = col + " LIKE ?"
				args[i] = pattern
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
		if p.StartTime != nil {
			db = db.Where("create_at > ?", *p.StartTime)
		}
		if p.EndTime != nil {
			db = db.Where("create_at < ?", *p.EndTime)
		}
		return db
	}
}

// Paginate applies offset/limit. Ordering is newest first; ids are monotonic
// with creation order, so the id tie-break keeps equal timestamps stable.
func (p ListParams) Paginate() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("create_at DESC, id DESC").
			Offset(p.page() * p.pageSize()).
			Limit(p.pageSize())
	}
}
