package instructor

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
)

var ErrNotFound = errors.New("instructor not found")

type Repository interface {
	FindAll(ctx context.Context) ([]Instructor, error)
	FindByID(ctx context.Context, id int) (Instructor, error)
	Create(ctx context.Context, ni NewInstructor) (Instructor, error)
	Update(ctx context.Context, inst Instructor) error
	Delete(ctx context.Context, id int) error
}

type Instructor struct {
	ID             int    `json:"id" db:"id" validate:"required"`
	Identification string `json:"identification" db:"identification" validate:"required"`
	Name           string `json:"name" db:"name" validate:"required"`
}

func (i Instructor) RecordID() int { return i.ID }

func (i *Instructor) Validate(validate *validator.Validate) error {
	i.Identification = core.CleanString(i.Identification)
	i.Name = core.CleanString(i.Name)
	return validate.Struct(i)
}

// NewInstructor contains information needed to create a new Instructor.
type NewInstructor struct {
	Identification string `json:"identification" validate:"required"`
	Name           string `json:"name" validate:"required"`
}

func (ni *NewInstructor) Validate(validate *validator.Validate) error {
	ni.Identification = core.CleanString(ni.Identification)
	ni.Name = core.CleanString(ni.Name)
	return validate.Struct(ni)
}

// Form holds the editable values of an Instructor; ID is zero for a new one.
type Form struct {
	ID             int    `json:"id"`
	Identification string `json:"identification" validate:"required"`
	Name           string `json:"name" validate:"required"`
}

func FormFrom(i Instructor) Form {
	return Form{ID: i.ID, Identification: i.Identification, Name: i.Name}
}

func (f *Form) Clean() {
	f.Identification = core.CleanString(f.Identification)
	f.Name = core.CleanString(f.Name)
}

func (f Form) NewInstructor() NewInstructor {
	return NewInstructor{Identification: f.Identification, Name: f.Name}
}

func (f Form) Instructor() Instructor {
	return Instructor{ID: f.ID, Identification: f.Identification, Name: f.Name}
}
