package instructor

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/admin"
)

var Messages = admin.Messages{
	LoadFailed:   "Ocurrió un error al buscar todos los instructores.",
	Created:      "Instructor creado.",
	CreateFailed: "Ocurrió un error al crear el instructor.",
	Updated:      "Instructor actualizado.",
	UpdateFailed: "Ocurrió un error al actualizar el instructor.",
	Deleted:      "Instructor eliminado.",
	DeleteFailed: "Ocurrió un error al eliminar el instructor.",
}

// Admin is the instructor admin screen.
type Admin struct {
	mu      sync.Mutex
	repo    Repository
	deps    admin.Deps
	rows    *admin.Cache[Instructor]
	session admin.Session[Form]
}

func NewAdmin(repo Repository, deps admin.Deps) (*Admin, error) {
	if repo == nil {
		return nil, errors.New("instructor.NewAdmin: nil repository")
	}
	if err := deps.Check(); err != nil {
		return nil, err
	}
	return &Admin{
		repo: repo,
		deps: deps,
		rows: admin.NewCache[Instructor](),
	}, nil
}

// Load fetches every instructor.
func (a *Admin) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	instructors, err := a.repo.FindAll(ctx)
	if err != nil {
		err = errors.Wrap(err, "finding all instructors")
		a.deps.Failed(Messages.LoadFailed, err)
		return err
	}
	a.rows.Reset(instructors)
	return nil
}

func (a *Admin) Rows() []Instructor { return a.rows.All() }

func (a *Admin) Get(ctx context.Context, id int) (Instructor, error) {
	inst, err := a.repo.FindByID(ctx, id)
	return inst, errors.Wrapf(err, "finding instructor %d", id)
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

func (a *Admin) BeginEdit(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	inst, ok := a.rows.Get(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "editing instructor %d", id)
	}
	return a.session.BeginEdit(FormFrom(inst))
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

// Save creates or updates the instructor being edited.
func (a *Admin) Save(ctx context.Context) (Instructor, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := a.session.State()
	if !state.Editing() {
		return Instructor{}, errors.Wrap(admin.ErrInvalidTransition, "saving instructor")
	}
	form := a.session.Form()
	form.Clean()
	if err := a.deps.ValidateForm(form); err != nil {
		return Instructor{}, err
	}

	if state == admin.EditingNew {
		return a.create(ctx, form)
	}
	return a.update(ctx, form)
}

func (a *Admin) create(ctx context.Context, form Form) (Instructor, error) {
	inst, err := a.repo.Create(ctx, form.NewInstructor())
	if err != nil {
		err = errors.Wrap(err, "creating instructor")
		a.deps.Failed(Messages.CreateFailed, err)
		_ = a.session.Cancel()
		return Instructor{}, err
	}

	a.rows.Append(inst)
	a.deps.Notifier.Success(Messages.Created)
	_ = a.session.Commit()
	return inst, nil
}

func (a *Admin) update(ctx context.Context, form Form) (Instructor, error) {
	inst := form.Instructor()
	if err := a.repo.Update(ctx, inst); err != nil {
		err = errors.Wrapf(err, "updating instructor %d", inst.ID)
		a.deps.Failed(Messages.UpdateFailed, err)
		_ = a.session.Cancel()
		return Instructor{}, err
	}

	a.rows.Patch(inst.ID, func(row *Instructor) {
		row.Identification = inst.Identification
		row.Name = inst.Name
	})
	a.deps.Notifier.Success(Messages.Updated)
	_ = a.session.Commit()
	return inst, nil
}

// Delete removes instructor `id`. The request is sent even when `id` is not cached.
func (a *Admin) Delete(ctx context.Context, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.State() != admin.Viewing {
		return errors.Wrap(admin.ErrInvalidTransition, "deleting instructor while editing")
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		err = errors.Wrapf(err, "deleting instructor %d", id)
		a.deps.Failed(Messages.DeleteFailed, err)
		return err
	}
	a.rows.Remove(id)
	a.deps.Notifier.Success(Messages.Deleted)
	return nil
}
