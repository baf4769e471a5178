package inmemdb

import (
	"context"

	"github.com/trezcool/masomo-admin/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) FindAll(_ context.Context) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.course.query(), nil
}

func (repo *courseRepository) FindByID(_ context.Context, id int) (course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if crs, ok := repo.db.course.get(id); ok {
		return crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) Create(_ context.Context, nc course.NewCourse) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	crs := course.Course{
		ID:          repo.db.course.nextPK(),
		Name:        nc.Name,
		Description: nc.Description,
	}
	repo.db.course.rows[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) Update(_ context.Context, crs course.Course) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.course.rows[crs.ID]
	if !ok {
		return course.ErrNotFound
	}
	orig.Name = crs.Name
	orig.Description = crs.Description
	return nil
}

// Delete also deletes the school years of the course.
func (repo *courseRepository) Delete(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.course.rows, id)
	for asgID, asg := range repo.db.schoolYear.rows {
		if asg.CourseID == id {
			delete(repo.db.schoolYear.rows, asgID)
		}
	}
	return nil
}
