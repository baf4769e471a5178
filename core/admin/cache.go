package admin

import "sync"

// Record is any entity with a server assigned identity.
type Record interface {
	RecordID() int
}

// Cache holds the most recently fetched records of one admin module.
// It is patched locally after every mutation instead of being re-fetched.
type Cache[T Record] struct {
	mu   sync.RWMutex
	rows []T
}

func NewCache[T Record]() *Cache[T] {
	return &Cache[T]{rows: make([]T, 0)}
}

// Reset replaces the cached rows, keeping the order of `rows`.
func (c *Cache[T]) Reset(rows []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(make([]T, 0, len(rows)), rows...)
}

// All returns a copy of the cached rows.
func (c *Cache[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.rows)), c.rows...)
}

func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

func (c *Cache[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.rows[i], true
	}
	var zero T
	return zero, false
}

func (c *Cache[T]) Append(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, rec)
}

// Patch applies `fn` to the row with the given id, in place.
// It returns false when no such row is cached.
func (c *Cache[T]) Patch(id int, fn func(row *T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return false
	}
	fn(&c.rows[i])
	return true
}

// Remove drops the row with the given id. It returns false when no such row is cached.
func (c *Cache[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return true
}

// Filter returns the rows matching `match`, in cache order.
func (c *Cache[T]) Filter(match func(row T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	found := make([]T, 0)
	for _, row := range c.rows {
		if match(row) {
			found = append(found, row)
		}
	}
	return found
}

func (c *Cache[T]) index(id int) int {
	for i, row := range c.rows {
		if row.RecordID() == id {
			return i
		}
	}
	return -1
}
