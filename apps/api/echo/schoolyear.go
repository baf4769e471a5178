package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/schoolyear"
)

type schoolYearAPI struct {
	repo     schoolyear.Repository
	validate *validator.Validate
}

func registerSchoolYearAPI(g *echo.Group, repo schoolyear.Repository, validate *validator.Validate) {
	api := schoolYearAPI{repo: repo, validate: validate}

	sg := g.Group("/schoolYear")
	sg.GET("/findAll", api.findAll)
	sg.GET("/findById", api.findByID)
	sg.POST("/createSchoolYear", api.create)
	sg.POST("/updateSchoolYear", api.update)
	sg.DELETE("/deleteSchoolYear", api.delete)
}

func (api *schoolYearAPI) findAll(ctx echo.Context) error {
	rows, err := api.repo.FindAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "finding school years")
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *schoolYearAPI) findByID(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	asg, err := api.repo.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding school year")
	}
	return ctx.JSON(http.StatusOK, asg)
}

// create answers with the new assignment, without the course and instructor names.
func (api *schoolYearAPI) create(ctx echo.Context) error {
	var data schoolyear.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	asg, err := api.repo.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating school year")
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *schoolYearAPI) update(ctx echo.Context) error {
	var data schoolyear.Assignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Assignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.repo.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating school year")
	}
	return ctx.NoContent(http.StatusOK)
}

func (api *schoolYearAPI) delete(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	if err := api.repo.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting school year")
	}
	return ctx.NoContent(http.StatusOK)
}
