package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/course"
)

type courseAPI struct {
	repo     course.Repository
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, repo course.Repository, validate *validator.Validate) {
	api := courseAPI{repo: repo, validate: validate}

	cg := g.Group("/course")
	cg.GET("/findAll", api.findAll)
	cg.GET("/findById", api.findByID)
	cg.POST("/createCourse", api.create)
	cg.POST("/updateCourse", api.update)
	cg.DELETE("/deleteCourse", api.delete)
}

func (api *courseAPI) findAll(ctx echo.Context) error {
	courses, err := api.repo.FindAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "finding courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseAPI) findByID(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	crs, err := api.repo.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseAPI) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.repo.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseAPI) update(ctx echo.Context) error {
	var data course.Course
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Course")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.repo.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.NoContent(http.StatusOK)
}

// delete succeeds for unknown ids.
func (api *courseAPI) delete(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	if err := api.repo.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusOK)
}
