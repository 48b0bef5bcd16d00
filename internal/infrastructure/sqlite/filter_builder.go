package sqlite

import (
	"fmt"
	"strings"

	"github.com/annelie/wax/internal/api/util"
)

// BuildFilterClause builds a SQL WHERE fragment from a QueryFilter
func BuildFilterClause(f util.QueryFilter) (string, []interface{}) {
	switch f.Operator {
	case util.OpEq:
		return fmt.Sprintf("%s = ?", f.Field), []interface{}{f.Value}
	case util.OpNe:
		return fmt.Sprintf("%s != ?", f.Field), []interface{}{f.Value}
	case util.OpGt:
		return fmt.Sprintf("%s > ?", f.Field), []interface{}{f.Value}
	case util.OpGte:
		return fmt.Sprintf("%s >= ?", f.Field), []interface{}{f.Value}
	case util.OpLt:
		return fmt.Sprintf("%s < ?", f.Field), []interface{}{f.Value}
	case util.OpLte:
		return fmt.Sprintf("%s <= ?", f.Field), []interface{}{f.Value}
	case util.OpLike:
		return fmt.Sprintf("%s LIKE ?", f.Field), []interface{}{"%" + f.Value + "%"}
	case util.OpIsNull:
		return fmt.Sprintf("%s IS NULL", f.Field), nil
	case util.OpIsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", f.Field), nil
	default:
		return "", nil
	}
}

// ApplyFilters appends WHERE fragments built from the filters
func ApplyFilters(query string, args []interface{}, filters []util.QueryFilter) (string, []interface{}) {
	for _, f := range filters {
		clause, filterArgs := BuildFilterClause(f)
		if clause != "" {
			query += " AND " + clause
			args = append(args, filterArgs...)
		}
	}
	return query, args
}

// ApplyOrdering appends an ORDER BY clause
func ApplyOrdering(query string, orders []util.OrderClause, defaultOrder string) string {
	if len(orders) == 0 {
		return query + " ORDER BY " + defaultOrder
	}

	clauses := make([]string, 0, len(orders))
	for _, o := range orders {
		direction := "ASC"
		if o.Direction == util.OrderDesc {
			direction = "DESC"
		}
		clauses = append(clauses, fmt.Sprintf("%s %s", o.Field, direction))
	}
	return query + " ORDER BY " + strings.Join(clauses, ", ")
}

// ApplyPagination appends LIMIT/OFFSET from page/perPage
func ApplyPagination(query string, args []interface{}, page, perPage int) (string, []interface{}) {
	if perPage > 0 {
		query += " LIMIT ?"
		args = append(args, perPage)

		if page > 1 {
			query += " OFFSET ?"
			args = append(args, (page-1)*perPage)
		}
	}
	return query, args
}
