package inmemdb

import (
	"context"

	"github.com/trezcool/masomo-admin/core/instructor"
)

type instructorRepository struct {
	db *DB
}

var _ instructor.Repository = (*instructorRepository)(nil)

func NewInstructorRepository(db *DB) instructor.Repository {
	return &instructorRepository{db: db}
}

func (repo *instructorRepository) FindAll(_ context.Context) ([]instructor.Instructor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.instructor.query(), nil
}

func (repo *instructorRepository) FindByID(_ context.Context, id int) (instructor.Instructor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if inst, ok := repo.db.instructor.get(id); ok {
		return inst, nil
	}
	return instructor.Instructor{}, instructor.ErrNotFound
}

func (repo *instructorRepository) Create(_ context.Context, ni instructor.NewInstructor) (instructor.Instructor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	inst := instructor.Instructor{
		ID:             repo.db.instructor.nextPK(),
		Identification: ni.Identification,
		Name:           ni.Name,
	}
	repo.db.instructor.rows[inst.ID] = &inst
	return inst, nil
}

func (repo *instructorRepository) Update(_ context.Context, inst instructor.Instructor) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.instructor.rows[inst.ID]
	if !ok {
		return instructor.ErrNotFound
	}
	orig.Identification = inst.Identification
	orig.Name = inst.Name
	return nil
}

// Delete also deletes the school years of the instructor.
func (repo *instructorRepository) Delete(_ context.Context, id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.instructor.rows, id)
	for asgID, asg := range repo.db.schoolYear.rows {
		if asg.InstructorID == id {
			delete(repo.db.schoolYear.rows, asgID)
		}
	}
	return nil
}
