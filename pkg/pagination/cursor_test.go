package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestCursor_InitialPage(t *testing.T) {
	c := New(items(10), 4)

	assert.Equal(t, []int{0, 1, 2, 3}, c.Page())
	assert.True(t, c.HasMore())
}

func TestCursor_LoadMoreUntilExhausted(t *testing.T) {
	c := New(items(10), 4)

	page := c.LoadMore()
	assert.Len(t, page, 8)
	assert.True(t, c.HasMore())

	page = c.LoadMore()
	assert.Len(t, page, 10)
	assert.False(t, c.HasMore())

	// Further calls are no-ops
	page = c.LoadMore()
	assert.Len(t, page, 10)
	assert.False(t, c.HasMore())
}

func TestCursor_ShortList(t *testing.T) {
	c := New(items(3), 10)

	assert.Equal(t, []int{0, 1, 2}, c.Page())
	assert.False(t, c.HasMore())

	assert.Len(t, c.LoadMore(), 3)
}

func TestCursor_ExactPageBoundary(t *testing.T) {
	c := New(items(8), 4)

	assert.Len(t, c.Page(), 4)
	assert.True(t, c.HasMore())

	c.LoadMore()
	assert.False(t, c.HasMore())
}

func TestCursor_ResetDiscardsExtendedWindow(t *testing.T) {
	c := New(items(10), 4)
	c.LoadMore()
	assert.Len(t, c.Page(), 8)

	// A new filtered list returns the cursor to the initial page
	c.Reset(items(6))
	assert.Equal(t, []int{0, 1, 2, 3}, c.Page())
	assert.True(t, c.HasMore())
}

func TestCursor_EmptyList(t *testing.T) {
	c := New(items(0), 4)

	assert.Empty(t, c.Page())
	assert.False(t, c.HasMore())
	assert.Empty(t, c.LoadMore())
}

func TestCursor_DefaultPageSize(t *testing.T) {
	c := New(items(25), 0)
	assert.Len(t, c.Page(), DefaultPageSize)
}
