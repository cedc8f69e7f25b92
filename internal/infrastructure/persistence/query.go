package persistence

import (
	"strings"
	"time"

	"github.com/pos/backoffice/internal/domain/shared"
	"gorm.io/gorm"
)

// listSpec describes how a table answers a shared.Filter
type listSpec struct {
	searchColumns []string
	sortFields    map[string]bool
	defaultSort   string
	// filterColumns maps Filter.Filters keys to equality columns
	filterColumns map[string]string
	// dateColumn receives the start_date and end_date filters
	dateColumn string
}

// applyFilterWithoutPagination applies search and field filters
func (s listSpec) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, 0, len(s.searchColumns))
		args := make([]any, 0, len(s.searchColumns))
		for _, col := range s.searchColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	for key, value := range filter.Filters {
		if col, ok := s.filterColumns[key]; ok {
			if str, isStr := value.(string); isStr && str == "" {
				continue
			}
			query = query.Where(col+" = ?", value)
			continue
		}
		if s.dateColumn == "" {
			continue
		}
		switch key {
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where(s.dateColumn+" >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where(s.dateColumn+" <= ?", t)
			}
		}
	}

	return query
}

// applyFilter applies filters, validated ordering and pagination
func (s listSpec) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = s.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, s.sortFields, s.defaultSort)
	query = query.Order(sortField + " " + ValidateSortOrder(filter.OrderDir))

	n := filter.Normalized()
	return query.Offset(n.Offset()).Limit(n.PageSize)
}
