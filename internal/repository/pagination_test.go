package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationClamps(t *testing.T) {
	p := NewPagination(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)

	p = NewPagination(-5, 1000)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)

	p = NewPagination(3, 25)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, NewPagination(1, 10).Offset())
	assert.Equal(t, 10, NewPagination(2, 10).Offset())
	assert.Equal(t, 50, NewPagination(6, 10).Offset())
}

func TestPaginationPages(t *testing.T) {
	p := NewPagination(1, 10)
	assert.Equal(t, 1, p.Pages(0))
	assert.Equal(t, 1, p.Pages(1))
	assert.Equal(t, 1, p.Pages(10))
	assert.Equal(t, 2, p.Pages(11))
	assert.Equal(t, 10, p.Pages(100))
	assert.Equal(t, 11, p.Pages(101))
}
