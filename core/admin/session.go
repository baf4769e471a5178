package admin

import "github.com/pkg/errors"

var ErrInvalidTransition = errors.New("invalid edit session transition")

// State of an edit session.
type State int

const (
	Viewing State = iota
	EditingNew
	EditingExisting
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case EditingNew:
		return "editing-new"
	case EditingExisting:
		return "editing-existing"
	default:
		return "unknown"
	}
}

func (s State) Editing() bool {
	return s == EditingNew || s == EditingExisting
}

// Session gates a single editable form:
//
//	Viewing -> EditingNew | EditingExisting -> Viewing (commit or cancel)
//
// It is not safe for concurrent use; controllers serialize access to it.
type Session[F any] struct {
	state State
	form  F
}

func (s *Session[F]) State() State { return s.state }

// Form returns a copy of the current form values.
func (s *Session[F]) Form() F { return s.form }

// BeginCreate clears the form and unlocks it for a new record.
func (s *Session[F]) BeginCreate() error {
	if s.state != Viewing {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", s.state, EditingNew)
	}
	var blank F
	s.form = blank
	s.state = EditingNew
	return nil
}

// BeginEdit pre-fills the form from an existing record.
func (s *Session[F]) BeginEdit(form F) error {
	if s.state != Viewing {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", s.state, EditingExisting)
	}
	s.form = form
	s.state = EditingExisting
	return nil
}

// Edit mutates the form in place; only allowed while editing.
func (s *Session[F]) Edit(fn func(form *F)) error {
	if !s.state.Editing() {
		return errors.Wrap(ErrInvalidTransition, "form is locked while viewing")
	}
	fn(&s.form)
	return nil
}

// Commit ends a successful save.
func (s *Session[F]) Commit() error {
	return s.finish()
}

// Cancel discards the form.
func (s *Session[F]) Cancel() error {
	return s.finish()
}

func (s *Session[F]) finish() error {
	if !s.state.Editing() {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", s.state, Viewing)
	}
	var blank F
	s.form = blank
	s.state = Viewing
	return nil
}
