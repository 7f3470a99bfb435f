// Package pagination maintains the incrementally-extended visible window
// over a filtered list.
package pagination

// Cursor slices a filtered list into an initial page and grows the visible
// window on demand. It never re-fetches: the caller resets the cursor when
// the underlying filtered list changes.
type Cursor[T any] struct {
	items     []T
	pageSize  int
	displayed int
}

// DefaultPageSize matches the session listing; product listings use 12.
const DefaultPageSize = 10

// New creates a cursor positioned at the initial page.
func New[T any](items []T, pageSize int) *Cursor[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c := &Cursor[T]{pageSize: pageSize}
	c.Reset(items)
	return c
}

// Reset replaces the underlying list and returns to the initial page. Any
// previously extended window is discarded.
func (c *Cursor[T]) Reset(items []T) {
	c.items = items
	c.displayed = c.pageSize
	if c.displayed > len(items) {
		c.displayed = len(items)
	}
}

// Page returns the currently visible window.
func (c *Cursor[T]) Page() []T {
	return c.items[:c.displayed]
}

// HasMore reports whether further items exist beyond the visible window.
func (c *Cursor[T]) HasMore() bool {
	return c.displayed < len(c.items)
}

// LoadMore extends the visible window by up to one page. Calling it when
// no further items exist is a no-op.
func (c *Cursor[T]) LoadMore() []T {
	next := c.displayed + c.pageSize
	if next > len(c.items) {
		next = len(c.items)
	}
	c.displayed = next
	return c.Page()
}
