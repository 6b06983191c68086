package dto

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// ListQuery defines the query parameters shared by the list endpoints.
// Endpoints ignore the filters that do not apply to them.
type ListQuery struct {
	Date          string `form:"date"`
	DateFrom      string `form:"date_from"`
	DateTo        string `form:"date_to"`
	Search        string `form:"search"`
	Customer      *int64 `form:"customer"`
	Supplier      *int64 `form:"supplier"`
	Method        string `form:"method"`
	Category      string `form:"category"`
	DeductionType string `form:"deduction_type"`
	IsActive      *bool  `form:"is_active"`
	Limit         int    `form:"limit"`
	Offset        int    `form:"offset"`
}

// ListResponse is the pagination envelope wrapping every list endpoint.
type ListResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func fmtDate(t time.Time) string {
	return t.Format(DateLayout)
}

func fmtDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
