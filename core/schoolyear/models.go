package schoolyear

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	ErrNotFound            = errors.New("school year assignment not found")
	ErrDuplicateAssignment = errors.New("an assignment for this course, instructor and year already exists")
	ErrUnknownCourse       = errors.New("course does not exist")
	ErrUnknownInstructor   = errors.New("instructor does not exist")
)

// Repository is the data access layer of school year assignments.
// Reads return the course and instructor names along with the ids.
type Repository interface {
	FindAll(ctx context.Context) ([]Assignment, error)
	FindByID(ctx context.Context, id int) (Assignment, error)
	Create(ctx context.Context, na NewAssignment) (Assignment, error)
	Update(ctx context.Context, asg Assignment) error
	Delete(ctx context.Context, id int) error
}

// Assignment links one course and one instructor for one school year.
type Assignment struct {
	ID             int    `json:"id" db:"id" validate:"required"`
	CourseID       int    `json:"courseId" db:"course_id" validate:"required"`
	InstructorID   int    `json:"instructorId" db:"instructor_id" validate:"required"`
	Year           int    `json:"year" db:"year" validate:"required"`
	CourseName     string `json:"courseName" db:"course_name"`
	InstructorName string `json:"instructorName" db:"instructor_name"`
}

func (a Assignment) RecordID() int { return a.ID }

func (a Assignment) Key() Key {
	return Key{CourseID: a.CourseID, InstructorID: a.InstructorID, Year: a.Year}
}

func (a *Assignment) Validate(validate *validator.Validate) error {
	return validate.Struct(a)
}

// Key is the (course, instructor, year) triple no two assignments may share.
type Key struct {
	CourseID     int
	InstructorID int
	Year         int
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	CourseID     int `json:"courseId" validate:"required"`
	InstructorID int `json:"instructorId" validate:"required"`
	Year         int `json:"year" validate:"required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}

func (na NewAssignment) Key() Key {
	return Key{CourseID: na.CourseID, InstructorID: na.InstructorID, Year: na.Year}
}

// Form holds the editable values of an Assignment; ID is zero for a new one.
// SavedYear is the year of the assignment being edited: keeping it passes `yearrange`
// even when it fell out of the offered window.
type Form struct {
	ID           int `json:"id"`
	CourseID     int `json:"courseId" validate:"required"`
	InstructorID int `json:"instructorId" validate:"required"`
	Year         int `json:"year" validate:"required,yearrange"`
	SavedYear    int `json:"savedYear"`
}

func FormFrom(a Assignment) Form {
	return Form{ID: a.ID, CourseID: a.CourseID, InstructorID: a.InstructorID, Year: a.Year, SavedYear: a.Year}
}

func (f Form) Key() Key {
	return Key{CourseID: f.CourseID, InstructorID: f.InstructorID, Year: f.Year}
}

func (f Form) NewAssignment() NewAssignment {
	return NewAssignment{CourseID: f.CourseID, InstructorID: f.InstructorID, Year: f.Year}
}

func (f Form) Assignment() Assignment {
	return Assignment{ID: f.ID, CourseID: f.CourseID, InstructorID: f.InstructorID, Year: f.Year}
}

// Years is the window of school years offered for assignments.
type Years struct {
	First int
	Span  int
}

func (y Years) List() []int {
	years := make([]int, 0, y.Span)
	for i := 0; i < y.Span; i++ {
		years = append(years, y.First+i)
	}
	return years
}

func (y Years) Contains(year int) bool {
	return year >= y.First && year < y.First+y.Span
}
