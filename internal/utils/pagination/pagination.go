// Package pagination implements limit/offset paging with count-based
// next/previous links on every list endpoint.
package pagination

import (
	"net/url"
	"strconv"
)

// Page is a resolved limit/offset pair for a list query.
type Page struct {
	Limit  int
	Offset int
}

// Clamp normalizes raw query values against the configured defaults. A
// missing or non-positive limit falls back to def, anything above max is
// capped, and a negative offset becomes zero.
func Clamp(limit, offset, def, max int) Page {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// Links builds the next and previous URLs for a paginated response. A link is
// nil when there is no page in that direction.
func Links(reqURL *url.URL, count int64, p Page) (next, previous *string) {
	if reqURL == nil {
		return nil, nil
	}
	if int64(p.Offset+p.Limit) < count {
		next = pageURL(reqURL, p.Limit, p.Offset+p.Limit)
	}
	if p.Offset > 0 {
		prevOffset := p.Offset - p.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		previous = pageURL(reqURL, p.Limit, prevOffset)
	}
	return next, previous
}

func pageURL(base *url.URL, limit, offset int) *string {
	u := *base
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
