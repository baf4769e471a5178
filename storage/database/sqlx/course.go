package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/course"
)

type courseRepository struct {
	exec core.DBExecutor
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(exec core.DBExecutor) course.Repository {
	return &courseRepository{exec: exec}
}

func (repo *courseRepository) FindAll(ctx context.Context) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	q := "SELECT id, name, description FROM course ORDER BY id"
	if err := repo.exec.SelectContext(ctx, &courses, q); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	return courses, nil
}

func (repo *courseRepository) FindByID(ctx context.Context, id int) (course.Course, error) {
	var crs course.Course
	q := repo.exec.Rebind("SELECT id, name, description FROM course WHERE id = ?")
	if err := repo.exec.GetContext(ctx, &crs, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrapf(err, "selecting course %d", id)
	}
	return crs, nil
}

func (repo *courseRepository) Create(ctx context.Context, nc course.NewCourse) (course.Course, error) {
	crs := course.Course{Name: nc.Name, Description: nc.Description}
	q := repo.exec.Rebind("INSERT INTO course (name, description) VALUES (?, ?) RETURNING id")
	if err := repo.exec.GetContext(ctx, &crs.ID, q, crs.Name, crs.Description); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo *courseRepository) Update(ctx context.Context, crs course.Course) error {
	q := repo.exec.Rebind("UPDATE course SET name = ?, description = ? WHERE id = ?")
	res, err := repo.exec.ExecContext(ctx, q, crs.Name, crs.Description, crs.ID)
	if err != nil {
		return errors.Wrapf(err, "updating course %d", crs.ID)
	}
	return checkAffected(res, course.ErrNotFound)
}

func (repo *courseRepository) Delete(ctx context.Context, id int) error {
	q := repo.exec.Rebind("DELETE FROM course WHERE id = ?")
	if _, err := repo.exec.ExecContext(ctx, q, id); err != nil {
		return errors.Wrapf(err, "deleting course %d", id)
	}
	return nil
}

// checkAffected returns errNotFound when `res` affected no row.
func checkAffected(res sql.Result, errNotFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "counting affected rows")
	}
	if n == 0 {
		return errNotFound
	}
	return nil
}
