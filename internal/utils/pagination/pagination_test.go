package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           Params
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values get defaults", in: Params{}, wantPage: 1, wantPageSize: 20},
		{name: "negative page clamped", in: Params{Page: -3, PageSize: 10}, wantPage: 1, wantPageSize: 10},
		{name: "oversized page size clamped", in: Params{Page: 2, PageSize: 500}, wantPage: 2, wantPageSize: 100},
		{name: "valid values untouched", in: Params{Page: 4, PageSize: 25}, wantPage: 4, wantPageSize: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestOffsetAndTotalPages(t *testing.T) {
	p := Params{Page: 2, PageSize: 10}
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 3, p.TotalPages(25))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 0, p.TotalPages(0))

	first := Params{Page: 1, PageSize: 20}
	assert.Equal(t, 0, first.Offset())
}
