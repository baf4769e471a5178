package schoolyear

import (
	"reflect"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/masomo-admin/core"
)

var (
	yearRangeTag  = "yearrange"
	yearRangeText = "{0} está fuera de los periodos disponibles"
)

// InitValidators registers the school year validators.
// `yearrange` accepts the years of `years`, and the unchanged SavedYear of the parent struct.
func InitValidators(validate *validator.Validate, translator ut.Translator, years Years) {
	_ = validate.RegisterValidation(yearRangeTag, func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		if saved := fl.Parent().FieldByName("SavedYear"); saved.IsValid() && saved.Kind() == reflect.Int {
			if year != 0 && int(saved.Int()) == year {
				return true
			}
		}
		return years.Contains(year)
	})
	core.RegisterCustomTranslation(validate, translator, yearRangeTag, yearRangeText)
}
