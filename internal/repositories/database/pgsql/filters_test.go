package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCondBuilder_NumbersPlaceholders(t *testing.T) {
	b := &condBuilder{}
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b.add(`s.sale_date >= $%d`, date)
	b.add(`s.customer_id = $%d`, int64(7))

	assert.Equal(t, " WHERE s.sale_date >= $1 AND s.customer_id = $2", b.where())
	assert.Equal(t, []interface{}{date, int64(7)}, b.args)
}

func TestCondBuilder_EmptyWhere(t *testing.T) {
	b := &condBuilder{}
	assert.Empty(t, b.where())
	assert.Equal(t, "FROM sales LIMIT $1 OFFSET $2", b.paged("FROM sales", "", 20, 0))
}

// A search condition leaves literal '%' characters in the WHERE clause, so
// the assembled query must never be fed back through Sprintf.
func TestCondBuilder_PagedWithSearch(t *testing.T) {
	b := &condBuilder{}
	b.add(`s.customer_id = $%d`, int64(3))
	b.add(`(c.name || ' ' || s.note) ILIKE '%%' || $%d || '%%'`, "akbar")

	query := b.paged(saleSelect, ` ORDER BY s.sale_date DESC, s.created_at DESC`, 25, 50)

	assert.Contains(t, query, `ILIKE '%' || $2 || '%'`)
	assert.Contains(t, query, "LIMIT $3 OFFSET $4")
	assert.NotContains(t, query, "%!")
	assert.NotContains(t, query, "MISSING")
	assert.Equal(t, []interface{}{int64(3), "akbar", 25, 50}, b.args)
}
