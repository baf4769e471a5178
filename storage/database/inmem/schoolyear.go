package inmemdb

import (
	"context"

	"github.com/trezcool/masomo-admin/core/schoolyear"
)

type schoolYearRepository struct {
	db *DB
}

var _ schoolyear.Repository = (*schoolYearRepository)(nil)

func NewSchoolYearRepository(db *DB) schoolyear.Repository {
	return &schoolYearRepository{db: db}
}

// named fills in the course and instructor names; callers hold the lock.
func (repo *schoolYearRepository) named(asg schoolyear.Assignment) schoolyear.Assignment {
	if crs, ok := repo.db.course.get(asg.CourseID); ok {
		asg.CourseName = crs.Name
	}
	if inst, ok := repo.db.instructor.get(asg.InstructorID); ok {
		asg.InstructorName = inst.Name
	}
	return asg
}

// check enforces the foreign keys and the (course, instructor, year) uniqueness; callers hold the lock.
func (repo *schoolYearRepository) check(key schoolyear.Key, excludedID int) error {
	if _, ok := repo.db.course.rows[key.CourseID]; !ok {
		return schoolyear.ErrUnknownCourse
	}
	if _, ok := repo.db.instructor.rows[key.InstructorID]; !ok {
		return schoolyear.ErrUnknownInstructor
	}
	for id, asg := range repo.db.schoolYear.rows {
		if id != excludedID && asg.Key() == key {
			return schoolyear.ErrDuplicateAssignment
		}
	}
	return nil
}

func (repo *schoolYearRepository) FindAll(_ context.Context) ([]schoolyear.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.schoolYear.query()
	for i := range rows {
		rows[i] = repo.named(rows[i])
	}
	return rows, nil
}

func (repo *schoolYearRepository) FindByID(_ context.Context, id int) (schoolyear.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if asg, ok := repo.db.schoolYear.get(id); ok {
		return repo.named(asg), nil
	}
	return schoolyear.Assignment{}, schoolyear.ErrNotFound
}

// Create returns the new assignment without names, like the API does.
func (repo *schoolYearRepository) Create(_ context.Context, na schoolyear.NewAssignment) (schoolyear.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if err := repo.check(na.Key(), 0); err != nil {
		return schoolyear.Assignment{}, err
	}
	asg := schoolyear.Assignment{
		ID:           repo.db.schoolYear.nextPK(),
		CourseID:     na.CourseID,
		InstructorID: na.InstructorID,
		Year:         na.Year,
	}
	repo.db.schoolYear.rows[asg.ID] = &asg
	return asg, nil
}

func (repo *schoolYearRepository) Update(_ context.Context, asg schoolyear.Assignment) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.schoolYear.rows[asg.ID]
	if !ok {
		return schoolyear.ErrNotFound
	}
	if err := repo.check(asg.Key(), asg.ID); err != nil {
		return err
	}
	orig.CourseID = asg.CourseID
	orig.InstructorID = asg.InstructorID
	orig.Year = asg.Year
	return nil
}

func (repo *schoolYearRepository) Delete(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.schoolYear.rows, id)
	return nil
}
