// Package admin holds the pieces shared by every admin module: the record cache,
// the edit session and the notification board.
package admin

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core"
)

const MsgInvalidFields = "Campos inválidos."

// Messages are the localized notices of one admin module.
type Messages struct {
	LoadFailed   string
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

// Deps are the collaborators every admin controller needs.
type Deps struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Notifier   Notifier
	Logger     core.Logger
}

func (d Deps) Check() error {
	err := vala.BeginValidation().Validate(
		core.NotNil(d.Validate, "Validate"),
		core.NotNil(d.Translator, "Translator"),
		core.NotNil(d.Notifier, "Notifier"),
		core.NotNil(d.Logger, "Logger"),
	).Check()
	return errors.Wrap(err, "checking admin deps")
}

// ValidateForm validates `form` and reports invalid forms on the notifier.
// The returned error is a *core.ValidationError carrying the field messages.
func (d Deps) ValidateForm(form interface{}) error {
	if err := d.Validate.Struct(form); err != nil {
		err = core.TranslateValidation(err, d.Translator)
		if core.IsValidationError(err) {
			d.Notifier.Error(MsgInvalidFields)
		}
		return err
	}
	return nil
}

// Failed logs `err` and reports `msg` on the notifier.
func (d Deps) Failed(msg string, err error) {
	d.Logger.Error(msg, err)
	d.Notifier.Error(msg)
}
