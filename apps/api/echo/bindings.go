package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo-admin/core"
)

const (
	idParam      = "id"
	invalidIDMsg = "id debe ser un número entero"
)

// bindID reads the mandatory integer `id` query param.
func bindID(ctx echo.Context) (int, error) {
	var id int
	if err := echo.QueryParamsBinder(ctx).MustInt(idParam, &id).BindError(); err != nil {
		return 0, core.NewValidationError(core.ErrInvalidFields, core.FieldError{Field: idParam, Error: invalidIDMsg})
	}
	return id, nil
}
