package pgsql

import (
	"fmt"
	"strings"
)

// condBuilder accumulates WHERE conditions with positional args. Condition
// expressions use a single %d verb for the placeholder number, e.g.
// "sale_date = $%d".
type condBuilder struct {
	conds []string
	args  []interface{}
}

func (b *condBuilder) add(expr string, val interface{}) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// next returns the placeholder number for an arg appended outside the
// builder, e.g. LIMIT/OFFSET.
func (b *condBuilder) next(val interface{}) int {
	b.args = append(b.args, val)
	return len(b.args)
}

// paged assembles the full list query: base select, WHERE clause, ORDER BY
// tail and numbered LIMIT/OFFSET placeholders. Only the tail runs through
// Sprintf; the accumulated conditions must not, since search conditions
// carry literal '%' characters from ILIKE patterns.
func (b *condBuilder) paged(base, orderBy string, limit, offset int) string {
	return base + b.where() + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.next(limit), b.next(offset))
}
