package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("last partial page", func(t *testing.T) {
		res := Paginate(items, 3, 10, 50)
		assert.Equal(t, []int{21, 22, 23}, res.Items)
		assert.Equal(t, 3, res.Page)
		assert.Equal(t, 10, res.PageSize)
		assert.Equal(t, 23, res.Total)
		assert.False(t, res.HasMore)
	})

	t.Run("first page has more", func(t *testing.T) {
		res := Paginate(items, 1, 10, 50)
		assert.Len(t, res.Items, 10)
		assert.Equal(t, 1, res.Items[0])
		assert.True(t, res.HasMore)
	})

	t.Run("clamps page and page size", func(t *testing.T) {
		res := Paginate(items, -4, 500, 50)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 50, res.PageSize)
		assert.Len(t, res.Items, 23)

		res = Paginate(items, 0, 0, 50)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 1, res.PageSize)
		assert.Equal(t, []int{1}, res.Items)
	})

	t.Run("page beyond the end", func(t *testing.T) {
		res := Paginate(items, 99, 10, 50)
		assert.Empty(t, res.Items)
		assert.Equal(t, 23, res.Total)
		assert.False(t, res.HasMore)
	})

	t.Run("empty input", func(t *testing.T) {
		res := Paginate([]string{}, 1, 5, 50)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.Total)
		assert.False(t, res.HasMore)
	})
}
