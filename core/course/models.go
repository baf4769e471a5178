package course

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo-admin/core"
)

var ErrNotFound = errors.New("course not found")

// Repository is the data access layer of courses: the remote API on the client side,
// a store on the server side.
type Repository interface {
	FindAll(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id int) (Course, error)
	Create(ctx context.Context, nc NewCourse) (Course, error)
	Update(ctx context.Context, c Course) error
	Delete(ctx context.Context, id int) error
}

type Course struct {
	ID          int         `json:"id" db:"id" validate:"required"`
	Name        string      `json:"name" db:"name" validate:"required"`
	Description null.String `json:"description" db:"description"`
}

func (c Course) RecordID() int { return c.ID }

func (c *Course) Validate(validate *validator.Validate) error {
	c.Name = core.CleanString(c.Name)
	c.Description = cleanDescription(c.Description.String)
	return validate.Struct(c)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name        string      `json:"name" validate:"required"`
	Description null.String `json:"description"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = cleanDescription(nc.Description.String)
	return validate.Struct(nc)
}

// Form holds the editable values of a Course; ID is zero for a new one.
type Form struct {
	ID          int    `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func FormFrom(c Course) Form {
	return Form{ID: c.ID, Name: c.Name, Description: c.Description.String}
}

func (f *Form) Clean() {
	f.Name = core.CleanString(f.Name)
	f.Description = core.CleanString(f.Description)
}

func (f Form) NewCourse() NewCourse {
	return NewCourse{Name: f.Name, Description: cleanDescription(f.Description)}
}

func (f Form) Course() Course {
	return Course{ID: f.ID, Name: f.Name, Description: cleanDescription(f.Description)}
}

// an empty description is no description
func cleanDescription(desc string) null.String {
	desc = core.CleanString(desc)
	return null.NewString(desc, desc != "")
}
