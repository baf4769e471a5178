package main

import (
	"context"
	"io"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	"github.com/trezcool/masomo-admin/apps/api/echo"
	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/core/schoolyear"
	"github.com/trezcool/masomo-admin/storage/database"
	"github.com/trezcool/masomo-admin/storage/database/inmem"
	"github.com/trezcool/masomo-admin/storage/database/sqlx"
)

// stores are the repositories of the configured database engine, plus what closes it.
type stores struct {
	dig.Out

	Courses     course.Repository
	Instructors instructor.Repository
	SchoolYears schoolyear.Repository
	Closer      io.Closer
}

type serverParams struct {
	dig.In

	Conf        *core.Config
	Logger      core.Logger
	Validate    *validator.Validate
	Translator  ut.Translator
	Courses     course.Repository
	Instructors instructor.Repository
	SchoolYears schoolyear.Repository
}

func newStores(ctx context.Context, conf *core.Config) (stores, error) {
	dbConf := conf.Database
	if dbConf.Engine == database.EngineMemory {
		db, err := inmemdb.Open()
		if err != nil {
			return stores{}, errors.Wrap(err, "opening in-memory database")
		}
		return stores{
			Courses:     inmemdb.NewCourseRepository(db),
			Instructors: inmemdb.NewInstructorRepository(db),
			SchoolYears: inmemdb.NewSchoolYearRepository(db),
			Closer:      db,
		}, nil
	}

	db, err := database.Setup(ctx, dbConf)
	if err != nil {
		return stores{}, errors.Wrapf(err, "setting up %s database", dbConf.Engine)
	}
	return stores{
		Courses:     sqlxrepos.NewCourseRepository(db),
		Instructors: sqlxrepos.NewInstructorRepository(db),
		SchoolYears: sqlxrepos.NewSchoolYearRepository(db),
		Closer:      db,
	}, nil
}

func newServer(p serverParams) echoapi.Server {
	return echoapi.NewServer(
		&echoapi.Options{
			Address:        p.Conf.Server.Address,
			Debug:          p.Conf.Debug,
			TestMode:       p.Conf.TestMode,
			DisableReqLogs: p.Conf.Server.DisableReqLogs,
		},
		&echoapi.Deps{
			Logger:      p.Logger,
			Validate:    p.Validate,
			Translator:  p.Translator,
			Courses:     p.Courses,
			Instructors: p.Instructors,
			SchoolYears: p.SchoolYears,
		},
	)
}

// newContainer returns the dependency injection container of the API server.
func newContainer(ctx context.Context, conf *core.Config, logger core.Logger) (*dig.Container, error) {
	c := dig.New()

	providers := []interface{}{
		func() context.Context { return ctx },
		func() *core.Config { return conf },
		func() core.Logger { return logger },
		core.NewTranslator,
		core.NewValidator,
		newStores,
		newServer,
	}
	for _, provider := range providers {
		if err := c.Provide(provider); err != nil {
			return nil, errors.Wrap(err, "failed to provide dependency")
		}
	}
	return c, nil
}
