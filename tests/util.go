// Package testutil spins up the reference API over an in-memory store for tests.
package testutil

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo-admin/apps/api/echo"
	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/core/schoolyear"
	"github.com/trezcool/masomo-admin/services/logger"
	"github.com/trezcool/masomo-admin/storage/database/inmem"
)

// API is a running reference API and the repositories behind it.
type API struct {
	Server      *httptest.Server
	Courses     course.Repository
	Instructors instructor.Repository
	SchoolYears schoolyear.Repository
}

func (api *API) URL() string { return api.Server.URL }

// NewLogger returns a logger that reports nothing.
func NewLogger() core.Logger {
	return logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{Env: "TEST", Debug: true, TestMode: true})
}

// NewAPI starts the reference API over a fresh in-memory store; it is closed with the test.
func NewAPI(t *testing.T) *API {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	translator := core.NewTranslator()
	deps := &echoapi.Deps{
		Logger:      NewLogger(),
		Validate:    core.NewValidator(translator),
		Translator:  translator,
		Courses:     inmemdb.NewCourseRepository(db),
		Instructors: inmemdb.NewInstructorRepository(db),
		SchoolYears: inmemdb.NewSchoolYearRepository(db),
	}
	srv := httptest.NewServer(echoapi.NewServer(&echoapi.Options{TestMode: true, DisableReqLogs: true}, deps))
	t.Cleanup(func() {
		srv.Close()
		_ = db.Close()
	})

	return &API{
		Server:      srv,
		Courses:     deps.Courses,
		Instructors: deps.Instructors,
		SchoolYears: deps.SchoolYears,
	}
}

func CreateCourse(t *testing.T, repo course.Repository, name, desc string) course.Course {
	t.Helper()
	crs, err := repo.Create(context.Background(), course.NewCourse{Name: name, Description: null.NewString(desc, desc != "")})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}

func CreateInstructor(t *testing.T, repo instructor.Repository, identification, name string) instructor.Instructor {
	t.Helper()
	inst, err := repo.Create(context.Background(), instructor.NewInstructor{Identification: identification, Name: name})
	if err != nil {
		t.Fatalf("createInstructor() failed: %v", err)
	}
	return inst
}

func CreateAssignment(t *testing.T, repo schoolyear.Repository, courseID, instructorID, year int) schoolyear.Assignment {
	t.Helper()
	asg, err := repo.Create(context.Background(), schoolyear.NewAssignment{CourseID: courseID, InstructorID: instructorID, Year: year})
	if err != nil {
		t.Fatalf("createAssignment() failed: %v", err)
	}
	return asg
}
