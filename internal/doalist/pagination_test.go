package doalist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		page  int
		total int
		want  []int
	}{
		{page: 1, total: 5, want: []int{1, 2, 3}},
		{page: 2, total: 5, want: []int{1, 2, 3}},
		{page: 3, total: 5, want: []int{2, 3, 4}},
		{page: 4, total: 5, want: []int{3, 4, 5}},
		{page: 5, total: 5, want: []int{3, 4, 5}},
		{page: 2, total: 2, want: []int{1, 2}},
		{page: 1, total: 2, want: []int{1, 2}},
		{page: 1, total: 1, want: nil},
		{page: 1, total: 0, want: nil},
		{page: 9, total: 5, want: []int{3, 4, 5}},
		{page: math.MaxInt, total: 5, want: []int{3, 4, 5}},
		{page: 0, total: 5, want: []int{1, 2, 3}},
		{page: math.MinInt, total: 5, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageWindow(tt.page, tt.total), "page %d of %d", tt.page, tt.total)
	}
}

func TestHasMorePages(t *testing.T) {
	assert.True(t, HasMorePages(PageWindow(1, 5), 5))
	assert.False(t, HasMorePages(PageWindow(5, 5), 5))
	assert.False(t, HasMorePages(nil, 0))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 1, TotalPages(6))
	assert.Equal(t, 2, TotalPages(7))
	assert.Equal(t, 3, TotalPages(13))
}

func TestPageSlice(t *testing.T) {
	records := makeRecords(13)

	tests := []struct {
		name    string
		records int
		page    int
		wantIDs []int
	}{
		{name: "first page", records: 13, page: 1, wantIDs: []int{1, 2, 3, 4, 5, 6}},
		{name: "last partial page", records: 13, page: 3, wantIDs: []int{13}},
		{name: "one past the end", records: 13, page: 4},
		{name: "far past the end", records: 13, page: 1000},
		{name: "offset would wrap", records: 13, page: 0x2AAAAAAAAAAAAAAC},
		{name: "max int", records: 13, page: math.MaxInt},
		{name: "zero", records: 13, page: 0},
		{name: "negative", records: 13, page: -3},
		{name: "min int", records: 13, page: math.MinInt},
		{name: "no records", records: 0, page: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageSlice(records[:tt.records], tt.page)
			if tt.wantIDs == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}
