package repositories

import "time"

// ListFilter carries the optional query filters shared by list operations.
// Nil or zero-valued fields are not applied. Repositories translate the set
// fields into WHERE clauses; unknown combinations simply intersect.
type ListFilter struct {
	Date     *time.Time
	DateFrom *time.Time
	DateTo   *time.Time

	Search string

	CustomerID *int64
	SupplierID *int64

	Method        string
	Category      string
	DeductionType string

	IsActive *bool

	Limit  int
	Offset int
}
