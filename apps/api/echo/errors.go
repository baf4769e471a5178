package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/core/schoolyear"
)

var (
	errHTTPNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

	unknownRefText = "{0} no existe"
)

// httpError maps the errors of the stores to their HTTP counterpart; other errors are returned as is.
func httpError(err error, translator ut.Translator) error {
	switch {
	case errors.Is(err, course.ErrNotFound),
		errors.Is(err, instructor.ErrNotFound),
		errors.Is(err, schoolyear.ErrNotFound):
		return errHTTPNotFound
	case errors.Is(err, schoolyear.ErrDuplicateAssignment):
		return echo.NewHTTPError(http.StatusConflict, schoolyear.ErrDuplicateAssignment.Error())
	case errors.Is(err, schoolyear.ErrUnknownCourse):
		return unknownRef("courseId", translator)
	case errors.Is(err, schoolyear.ErrUnknownInstructor):
		return unknownRef("instructorId", translator)
	}
	return err
}

func unknownRef(field string, translator ut.Translator) error {
	msg, err := translator.T("unknownref", field)
	if err != nil {
		msg = field + " no existe"
	}
	return core.NewValidationError(core.ErrInvalidFields, core.FieldError{Field: field, Error: msg})
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	_ = translator.Add("unknownref", unknownRefText, false)

	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(httpError(err, translator)).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				message = origErr.FieldMessages()
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg
			logger.Error(msg, errors.Wrap(err, msg), ctx.Request())
			if ctx.Echo().Debug {
				message = err.Error()
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
