package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/instructor"
)

type instructorAPI struct {
	repo     instructor.Repository
	validate *validator.Validate
}

func registerInstructorAPI(g *echo.Group, repo instructor.Repository, validate *validator.Validate) {
	api := instructorAPI{repo: repo, validate: validate}

	ig := g.Group("/instructor")
	ig.GET("/findAll", api.findAll)
	ig.GET("/findById", api.findByID)
	ig.POST("/createInstructor", api.create)
	ig.POST("/updateInstructor", api.update)
	ig.DELETE("/deleteInstructor", api.delete)
}

func (api *instructorAPI) findAll(ctx echo.Context) error {
	insts, err := api.repo.FindAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "finding instructors")
	}
	return ctx.JSON(http.StatusOK, insts)
}

func (api *instructorAPI) findByID(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	inst, err := api.repo.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding instructor")
	}
	return ctx.JSON(http.StatusOK, inst)
}

func (api *instructorAPI) create(ctx echo.Context) error {
	var data instructor.NewInstructor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewInstructor")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	inst, err := api.repo.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating instructor")
	}
	return ctx.JSON(http.StatusCreated, inst)
}

func (api *instructorAPI) update(ctx echo.Context) error {
	var data instructor.Instructor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Instructor")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.repo.Update(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "updating instructor")
	}
	return ctx.NoContent(http.StatusOK)
}

func (api *instructorAPI) delete(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	if err := api.repo.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting instructor")
	}
	return ctx.NoContent(http.StatusOK)
}
