package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		want          Page
	}{
		{name: "zero limit falls back to default", limit: 0, offset: 0, want: Page{Limit: 20, Offset: 0}},
		{name: "negative limit falls back to default", limit: -5, offset: 10, want: Page{Limit: 20, Offset: 10}},
		{name: "limit above max is capped", limit: 500, offset: 0, want: Page{Limit: 100, Offset: 0}},
		{name: "negative offset becomes zero", limit: 10, offset: -1, want: Page{Limit: 10, Offset: 0}},
		{name: "valid values pass through", limit: 25, offset: 50, want: Page{Limit: 25, Offset: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.limit, tt.offset, 20, 100))
		})
	}
}

func TestLinks_MiddlePage(t *testing.T) {
	reqURL, err := url.Parse("http://localhost:8080/api/v1/sales?date_from=2024-01-01&limit=10&offset=10")
	require.NoError(t, err)

	next, previous := Links(reqURL, 35, Page{Limit: 10, Offset: 10})

	require.NotNil(t, next)
	require.NotNil(t, previous)
	assert.Contains(t, *next, "offset=20")
	assert.Contains(t, *next, "limit=10")
	assert.Contains(t, *next, "date_from=2024-01-01")
	assert.Contains(t, *previous, "offset=0")
}

func TestLinks_FirstPage(t *testing.T) {
	reqURL, err := url.Parse("http://localhost:8080/api/v1/sales")
	require.NoError(t, err)

	next, previous := Links(reqURL, 35, Page{Limit: 10, Offset: 0})

	require.NotNil(t, next)
	assert.Contains(t, *next, "offset=10")
	assert.Nil(t, previous)
}

func TestLinks_LastPage(t *testing.T) {
	reqURL, err := url.Parse("http://localhost:8080/api/v1/sales?limit=10&offset=30")
	require.NoError(t, err)

	next, previous := Links(reqURL, 35, Page{Limit: 10, Offset: 30})

	assert.Nil(t, next)
	require.NotNil(t, previous)
	assert.Contains(t, *previous, "offset=20")
}

func TestLinks_SinglePage(t *testing.T) {
	reqURL, err := url.Parse("http://localhost:8080/api/v1/sales")
	require.NoError(t, err)

	next, previous := Links(reqURL, 5, Page{Limit: 10, Offset: 0})

	assert.Nil(t, next)
	assert.Nil(t, previous)
}

func TestLinks_ShortPreviousPage(t *testing.T) {
	// Offset smaller than the limit clamps the previous offset to zero
	// instead of going negative.
	reqURL, err := url.Parse("http://localhost:8080/api/v1/sales?limit=10&offset=5")
	require.NoError(t, err)

	_, previous := Links(reqURL, 35, Page{Limit: 10, Offset: 5})

	require.NotNil(t, previous)
	assert.Contains(t, *previous, "offset=0")
}
