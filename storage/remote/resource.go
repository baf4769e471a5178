package remote

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/core/schoolyear"
)

// API paths, relative to the base URL.
const (
	CoursePath     = "/api/course"
	InstructorPath = "/api/instructor"
	SchoolYearPath = "/api/schoolYear"
)

// resource maps the five endpoints shared by every entity:
//
//	GET    {path}/findAll
//	GET    {path}/findById?id=
//	POST   {path}/create{entity}
//	POST   {path}/update{entity}
//	DELETE {path}/delete{entity}?id=
//
// T is the record type, N the payload needed to create one.
type resource[T any, N any] struct {
	client      *Client
	path        string
	entity      string
	errNotFound error
}

func NewCourseRepository(client *Client) course.Repository {
	return &resource[course.Course, course.NewCourse]{
		client:      client,
		path:        CoursePath,
		entity:      "Course",
		errNotFound: course.ErrNotFound,
	}
}

func NewInstructorRepository(client *Client) instructor.Repository {
	return &resource[instructor.Instructor, instructor.NewInstructor]{
		client:      client,
		path:        InstructorPath,
		entity:      "Instructor",
		errNotFound: instructor.ErrNotFound,
	}
}

func NewSchoolYearRepository(client *Client) schoolyear.Repository {
	return &resource[schoolyear.Assignment, schoolyear.NewAssignment]{
		client:      client,
		path:        SchoolYearPath,
		entity:      "SchoolYear",
		errNotFound: schoolyear.ErrNotFound,
	}
}

func (r *resource[T, N]) FindAll(ctx context.Context) ([]T, error) {
	var recs []T
	if err := r.client.do(ctx, rest.Get, r.path+"/findAll", nil, nil, &recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

func (r *resource[T, N]) FindByID(ctx context.Context, id int) (T, error) {
	var rec T
	if err := r.client.do(ctx, rest.Get, r.path+"/findById", idQuery(id), nil, &rec); err != nil {
		var zero T
		return zero, r.mapErr(err)
	}
	return rec, nil
}

func (r *resource[T, N]) Create(ctx context.Context, n N) (T, error) {
	var rec T
	if err := r.client.do(ctx, rest.Post, r.path+"/create"+r.entity, nil, n, &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (r *resource[T, N]) Update(ctx context.Context, rec T) error {
	return r.mapErr(r.client.do(ctx, rest.Post, r.path+"/update"+r.entity, nil, rec, nil))
}

func (r *resource[T, N]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, rest.Delete, r.path+"/delete"+r.entity, idQuery(id), nil, nil)
}

// mapErr turns a 404 into the entity's ErrNotFound; the *StatusError stays in the chain.
func (r *resource[T, N]) mapErr(err error) error {
	var sErr *StatusError
	if errors.As(err, &sErr) && sErr.StatusCode == http.StatusNotFound {
		return &notFoundError{errNotFound: r.errNotFound, status: sErr}
	}
	return err
}

// notFoundError is a 404 response: it matches the entity's ErrNotFound and unwraps to the response.
type notFoundError struct {
	errNotFound error
	status      *StatusError
}

func (e *notFoundError) Error() string        { return e.errNotFound.Error() + ": " + e.status.Error() }
func (e *notFoundError) Is(target error) bool { return target == e.errNotFound }
func (e *notFoundError) Unwrap() error        { return e.status }

func idQuery(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}
