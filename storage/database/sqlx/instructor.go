package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/instructor"
)

type instructorRepository struct {
	exec core.DBExecutor
}

var _ instructor.Repository = (*instructorRepository)(nil) // interface compliance check

func NewInstructorRepository(exec core.DBExecutor) instructor.Repository {
	return &instructorRepository{exec: exec}
}

func (repo *instructorRepository) FindAll(ctx context.Context) ([]instructor.Instructor, error) {
	insts := make([]instructor.Instructor, 0)
	q := "SELECT id, identification, name FROM instructor ORDER BY id"
	if err := repo.exec.SelectContext(ctx, &insts, q); err != nil {
		return nil, errors.Wrap(err, "selecting instructors")
	}
	return insts, nil
}

func (repo *instructorRepository) FindByID(ctx context.Context, id int) (instructor.Instructor, error) {
	var inst instructor.Instructor
	q := repo.exec.Rebind("SELECT id, identification, name FROM instructor WHERE id = ?")
	if err := repo.exec.GetContext(ctx, &inst, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return instructor.Instructor{}, instructor.ErrNotFound
		}
		return instructor.Instructor{}, errors.Wrapf(err, "selecting instructor %d", id)
	}
	return inst, nil
}

func (repo *instructorRepository) Create(ctx context.Context, ni instructor.NewInstructor) (instructor.Instructor, error) {
	inst := instructor.Instructor{Identification: ni.Identification, Name: ni.Name}
	q := repo.exec.Rebind("INSERT INTO instructor (identification, name) VALUES (?, ?) RETURNING id")
	if err := repo.exec.GetContext(ctx, &inst.ID, q, inst.Identification, inst.Name); err != nil {
		return instructor.Instructor{}, errors.Wrap(err, "inserting instructor")
	}
	return inst, nil
}

func (repo *instructorRepository) Update(ctx context.Context, inst instructor.Instructor) error {
	q := repo.exec.Rebind("UPDATE instructor SET identification = ?, name = ? WHERE id = ?")
	res, err := repo.exec.ExecContext(ctx, q, inst.Identification, inst.Name, inst.ID)
	if err != nil {
		return errors.Wrapf(err, "updating instructor %d", inst.ID)
	}
	return checkAffected(res, instructor.ErrNotFound)
}

func (repo *instructorRepository) Delete(ctx context.Context, id int) error {
	q := repo.exec.Rebind("DELETE FROM instructor WHERE id = ?")
	if _, err := repo.exec.ExecContext(ctx, q, id); err != nil {
		return errors.Wrapf(err, "deleting instructor %d", id)
	}
	return nil
}
