package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type statementKind int

const (
	kindSelect statementKind = iota
	kindCount
	kindDelete
)

// Builder constructs SELECT, COUNT and DELETE statements for Cloud Spanner.
// Every method returns a new Builder; the receiver is never modified.
type Builder struct {
	table        string
	kind         statementKind
	selectCols   []string
	whereClauses []Condition
	orderByCol   string
	orderByDir   Direction
	limitVal     int64
	offsetVal    int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderByCol = column
	nb.orderByDir = direction
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a builder for COUNT(*) over the same table and WHERE clauses.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.kind = kindCount
	return nb
}

// Delete returns a builder for a DML DELETE over the same table and WHERE clauses.
// Spanner requires a WHERE clause on DELETE, so an unfiltered builder emits WHERE true.
func (b *Builder) Delete() *Builder {
	nb := b.clone()
	nb.kind = kindDelete
	return nb
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	switch b.kind {
	case kindDelete:
		sql.WriteString("DELETE FROM ")
		sql.WriteString(b.table)
	case kindCount:
		sql.WriteString("SELECT COUNT(*) FROM ")
		sql.WriteString(b.table)
	default:
		sql.WriteString("SELECT ")
		if len(b.selectCols) == 0 {
			sql.WriteString("*")
		} else {
			sql.WriteString(strings.Join(b.selectCols, ", "))
		}
		sql.WriteString(" FROM ")
		sql.WriteString(b.table)
	}

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		for i, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(i)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	} else if b.kind == kindDelete {
		sql.WriteString(" WHERE true")
	}

	if b.kind == kindSelect {
		if b.orderByCol != "" {
			sql.WriteString(" ORDER BY ")
			sql.WriteString(b.orderByCol)
			if b.orderByDir == Desc {
				sql.WriteString(" DESC")
			} else {
				sql.WriteString(" ASC")
			}
		}
		if b.limitVal > 0 {
			sql.WriteString(" LIMIT @limit")
			params["limit"] = b.limitVal
		}
		if b.offsetVal > 0 {
			sql.WriteString(" OFFSET @offset")
			params["offset"] = b.offsetVal
		}
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	nb := *b
	nb.selectCols = append([]string(nil), b.selectCols...)
	nb.whereClauses = append([]Condition(nil), b.whereClauses...)
	return &nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
