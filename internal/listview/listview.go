package listview

import (
	"sort"
	"sync"
)

// Item is anything a table row can key on.
type Item interface {
	Identity() string
}

// Cache is the in-memory collection backing one console table. It is
// filled once per view and reconciled only after the upstream confirms a
// write; deletes are never optimistic. Concurrent requests share it, so
// access is guarded even though writes are rare.
type Cache[T Item] struct {
	mu     sync.RWMutex
	rows   []T
	loaded bool
}

func New[T Item]() *Cache[T] {
	return &Cache[T]{}
}

func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Cache[T]) Fill(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append([]T(nil), rows...)
	c.loaded = true
}

// Invalidate forgets the collection so the next view visit refetches.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
	c.loaded = false
}

func (c *Cache[T]) Rows() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.rows...)
}

func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, row := range c.rows {
		if row.Identity() == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the row with the same identity, or appends when the
// entity is new.
func (c *Cache[T]) Upsert(row T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.rows {
		if cur.Identity() == row.Identity() {
			c.rows[i] = row
			return
		}
	}
	c.rows = append(c.rows, row)
}

func (c *Cache[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.rows {
		if cur.Identity() == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Patch applies an in-place field change to one row, used for the status
// columns that are confirmed one PATCH at a time.
func (c *Cache[T]) Patch(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.rows[i].Identity() == id {
			fn(&c.rows[i])
			return true
		}
	}
	return false
}

func (c *Cache[T]) SortBy(less func(a, b T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.SliceStable(c.rows, func(i, j int) bool {
		return less(c.rows[i], c.rows[j])
	})
}
