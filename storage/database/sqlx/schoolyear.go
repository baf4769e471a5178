package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/schoolyear"
)

const selectSchoolYears = `
SELECT sy.id, sy.course_id, sy.instructor_id, sy.year,
       c.name AS course_name, i.name AS instructor_name
FROM school_year sy
JOIN course c ON c.id = sy.course_id
JOIN instructor i ON i.id = sy.instructor_id`

type schoolYearRepository struct {
	exec core.DBExecutor
}

var _ schoolyear.Repository = (*schoolYearRepository)(nil) // interface compliance check

func NewSchoolYearRepository(exec core.DBExecutor) schoolyear.Repository {
	return &schoolYearRepository{exec: exec}
}

func (repo *schoolYearRepository) FindAll(ctx context.Context) ([]schoolyear.Assignment, error) {
	rows := make([]schoolyear.Assignment, 0)
	if err := repo.exec.SelectContext(ctx, &rows, selectSchoolYears+" ORDER BY sy.id"); err != nil {
		return nil, errors.Wrap(err, "selecting school years")
	}
	return rows, nil
}

func (repo *schoolYearRepository) FindByID(ctx context.Context, id int) (schoolyear.Assignment, error) {
	var asg schoolyear.Assignment
	q := repo.exec.Rebind(selectSchoolYears + " WHERE sy.id = ?")
	if err := repo.exec.GetContext(ctx, &asg, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schoolyear.Assignment{}, schoolyear.ErrNotFound
		}
		return schoolyear.Assignment{}, errors.Wrapf(err, "selecting school year %d", id)
	}
	return asg, nil
}

// checkRefs makes sure the course and the instructor of `key` exist.
func (repo *schoolYearRepository) checkRefs(ctx context.Context, key schoolyear.Key) error {
	var exists bool
	q := repo.exec.Rebind("SELECT EXISTS (SELECT 1 FROM course WHERE id = ?)")
	if err := repo.exec.GetContext(ctx, &exists, q, key.CourseID); err != nil {
		return errors.Wrap(err, "checking course")
	}
	if !exists {
		return schoolyear.ErrUnknownCourse
	}

	q = repo.exec.Rebind("SELECT EXISTS (SELECT 1 FROM instructor WHERE id = ?)")
	if err := repo.exec.GetContext(ctx, &exists, q, key.InstructorID); err != nil {
		return errors.Wrap(err, "checking instructor")
	}
	if !exists {
		return schoolyear.ErrUnknownInstructor
	}
	return nil
}

// Create returns the new assignment without names, like the API does.
func (repo *schoolYearRepository) Create(ctx context.Context, na schoolyear.NewAssignment) (schoolyear.Assignment, error) {
	if err := repo.checkRefs(ctx, na.Key()); err != nil {
		return schoolyear.Assignment{}, err
	}

	asg := schoolyear.Assignment{CourseID: na.CourseID, InstructorID: na.InstructorID, Year: na.Year}
	q := repo.exec.Rebind("INSERT INTO school_year (course_id, instructor_id, year) VALUES (?, ?, ?) RETURNING id")
	if err := repo.exec.GetContext(ctx, &asg.ID, q, asg.CourseID, asg.InstructorID, asg.Year); err != nil {
		if isUniqueViolation(err) {
			return schoolyear.Assignment{}, schoolyear.ErrDuplicateAssignment
		}
		return schoolyear.Assignment{}, errors.Wrap(err, "inserting school year")
	}
	return asg, nil
}

func (repo *schoolYearRepository) Update(ctx context.Context, asg schoolyear.Assignment) error {
	if err := repo.checkRefs(ctx, asg.Key()); err != nil {
		return err
	}

	q := repo.exec.Rebind("UPDATE school_year SET course_id = ?, instructor_id = ?, year = ? WHERE id = ?")
	res, err := repo.exec.ExecContext(ctx, q, asg.CourseID, asg.InstructorID, asg.Year, asg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return schoolyear.ErrDuplicateAssignment
		}
		return errors.Wrapf(err, "updating school year %d", asg.ID)
	}
	return checkAffected(res, schoolyear.ErrNotFound)
}

func (repo *schoolYearRepository) Delete(ctx context.Context, id int) error {
	q := repo.exec.Rebind("DELETE FROM school_year WHERE id = ?")
	if _, err := repo.exec.ExecContext(ctx, q, id); err != nil {
		return errors.Wrapf(err, "deleting school year %d", id)
	}
	return nil
}
