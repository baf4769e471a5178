package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type newThing struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestTranslateValidation(t *testing.T) {
	translator := NewTranslator()
	validate := NewValidator(translator)

	err := TranslateValidation(validate.Struct(newThing{Email: "lol"}), translator)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, ErrInvalidFields)

	var vErr *ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		msgs := vErr.FieldMessages()
		assert.Equal(t, "name es requerido", msgs["name"])
		assert.Contains(t, msgs, "email")
		assert.Len(t, msgs, 2)
	}

	assert.NoError(t, TranslateValidation(nil, translator))
	other := errors.New("boom")
	assert.Equal(t, other, TranslateValidation(other, translator))
	assert.False(t, IsValidationError(other))
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "", ValidationError{}.Error())
	assert.Equal(t, "invalid fields", NewValidationError(ErrInvalidFields).Error())
	assert.True(t, IsValidationError(errors.Wrap(NewValidationError(nil), "creating course")))
}
