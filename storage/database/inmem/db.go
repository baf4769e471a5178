// Package inmemdb stores the admin entities in memory. It is the default store of the API server.
package inmemdb

import (
	"sort"
	"sync"

	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/core/schoolyear"
)

type (
	// DB guards every table with a single lock: school years read the other two tables.
	DB struct {
		mutex      sync.RWMutex
		course     *table[course.Course]
		instructor *table[instructor.Instructor]
		schoolYear *table[schoolyear.Assignment]
	}

	table[T any] struct {
		pkCount int
		rows    map[int]*T
	}
)

func Open() (*DB, error) {
	db := &DB{
		course:     newTable[course.Course](),
		instructor: newTable[instructor.Instructor](),
		schoolYear: newTable[schoolyear.Assignment](),
	}
	return db, nil
}

// Close drops every row.
func (db *DB) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.course = newTable[course.Course]()
	db.instructor = newTable[instructor.Instructor]()
	db.schoolYear = newTable[schoolyear.Assignment]()
	return nil
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int]*T)}
}

func (t *table[T]) nextPK() int {
	t.pkCount++
	return t.pkCount
}

// query returns copies of every row, by ascending primary key (ie. insertion order).
func (t *table[T]) query() []T {
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, *t.rows[id])
	}
	return rows
}

func (t *table[T]) get(id int) (T, bool) {
	if row, ok := t.rows[id]; ok {
		return *row, true
	}
	var zero T
	return zero, false
}
