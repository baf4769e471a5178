package course

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/admin"
)

var Messages = admin.Messages{
	LoadFailed:   "Ocurrió un error al buscar todos los cursos.",
	Created:      "Curso creado.",
	CreateFailed: "Ocurrió un error al crear el curso.",
	Updated:      "Curso actualizado.",
	UpdateFailed: "Ocurrió un error al actualizar el curso.",
	Deleted:      "Curso eliminado.",
	DeleteFailed: "Ocurrió un error al eliminar el curso.",
}

// Admin is the course admin screen: the cached course list plus one edit session.
type Admin struct {
	mu      sync.Mutex
	repo    Repository
	deps    admin.Deps
	rows    *admin.Cache[Course]
	session admin.Session[Form]
}

func NewAdmin(repo Repository, deps admin.Deps) (*Admin, error) {
	if repo == nil {
		return nil, errors.New("course.NewAdmin: nil repository")
	}
	if err := deps.Check(); err != nil {
		return nil, err
	}
	return &Admin{
		repo: repo,
		deps: deps,
		rows: admin.NewCache[Course](),
	}, nil
}

// Load fetches every course. The cached list is left untouched on failure.
func (a *Admin) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	courses, err := a.repo.FindAll(ctx)
	if err != nil {
		err = errors.Wrap(err, "finding all courses")
		a.deps.Failed(Messages.LoadFailed, err)
		return err
	}
	a.rows.Reset(courses)
	return nil
}

func (a *Admin) Rows() []Course { return a.rows.All() }

// Get returns a course from the API.
func (a *Admin) Get(ctx context.Context, id int) (Course, error) {
	crs, err := a.repo.FindByID(ctx, id)
	return crs, errors.Wrapf(err, "finding course %d", id)
}

func (a *Admin) State() admin.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.State()
}

func (a *Admin) Form() Form {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Form()
}

func (a *Admin) BeginCreate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.BeginCreate()
}

// BeginEdit pre-fills the form with the cached course `id`.
func (a *Admin) BeginEdit(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	crs, ok := a.rows.Get(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "editing course %d", id)
	}
	return a.session.BeginEdit(FormFrom(crs))
}

func (a *Admin) Edit(fn func(form *Form)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Edit(fn)
}

func (a *Admin) Cancel() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Cancel()
}

// Save creates or updates the course being edited.
// An invalid form keeps the session open; a failed request closes it and leaves the list untouched.
func (a *Admin) Save(ctx context.Context) (Course, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := a.session.State()
	if !state.Editing() {
		return Course{}, errors.Wrap(admin.ErrInvalidTransition, "saving course")
	}
	form := a.session.Form()
	form.Clean()
	if err := a.deps.ValidateForm(form); err != nil {
		return Course{}, err
	}

	if state == admin.EditingNew {
		return a.create(ctx, form)
	}
	return a.update(ctx, form)
}

func (a *Admin) create(ctx context.Context, form Form) (Course, error) {
	crs, err := a.repo.Create(ctx, form.NewCourse())
	if err != nil {
		err = errors.Wrap(err, "creating course")
		a.deps.Failed(Messages.CreateFailed, err)
		_ = a.session.Cancel()
		return Course{}, err
	}

	a.rows.Append(crs)
	a.deps.Notifier.Success(Messages.Created)
	_ = a.session.Commit()
	return crs, nil
}

func (a *Admin) update(ctx context.Context, form Form) (Course, error) {
	crs := form.Course()
	if err := a.repo.Update(ctx, crs); err != nil {
		err = errors.Wrapf(err, "updating course %d", crs.ID)
		a.deps.Failed(Messages.UpdateFailed, err)
		_ = a.session.Cancel()
		return Course{}, err
	}

	a.rows.Patch(crs.ID, func(row *Course) {
		row.Name = crs.Name
		row.Description = crs.Description
	})
	a.deps.Notifier.Success(Messages.Updated)
	_ = a.session.Commit()
	return crs, nil
}

// Delete removes course `id`. The request is sent even when `id` is not cached.
func (a *Admin) Delete(ctx context.Context, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.State() != admin.Viewing {
		return errors.Wrap(admin.ErrInvalidTransition, "deleting course while editing")
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		err = errors.Wrapf(err, "deleting course %d", id)
		a.deps.Failed(Messages.DeleteFailed, err)
		return err
	}
	a.rows.Remove(id)
	a.deps.Notifier.Success(Messages.Deleted)
	return nil
}
