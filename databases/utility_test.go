package databases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		limit      int64
		page       int64
		wantPages  int64
		wantLimit  int64
		wantPage   int64
		wantTotal  int64
	}{
		{"even split", 40, 20, 1, 2, 20, 1, 40},
		{"partial last page", 41, 20, 2, 3, 20, 2, 41},
		{"empty collection", 0, 20, 1, 0, 20, 1, 0},
		{"defaults applied", 15, 0, 0, 1, 20, 1, 15},
		{"single record", 1, 10, 1, 1, 10, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPagination(tt.total, tt.limit, tt.page)

			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, tt.wantTotal, p.TotalRecords)
		})
	}
}

func TestNewMongoPaginate(t *testing.T) {
	mp := newMongoPaginate(0, 0)
	opts := mp.getPaginatedOpts()

	assert.Equal(t, int64(20), *opts.Limit)
	assert.Equal(t, int64(0), *opts.Skip)

	mp = newMongoPaginate(10, 3)
	opts = mp.getPaginatedOpts()

	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
}
