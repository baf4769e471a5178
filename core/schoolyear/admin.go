package schoolyear

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-admin/core/admin"
	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/core/instructor"
)

var Messages = admin.Messages{
	LoadFailed:   "Ocurrió un error al buscar todos los periodos.",
	Created:      "Periodo creado.",
	CreateFailed: "Ocurrió un error al crear el periodo.",
	Updated:      "Periodo actualizado.",
	UpdateFailed: "Ocurrió un error al actualizar el periodo.",
	Deleted:      "Periodo eliminado.",
	DeleteFailed: "Ocurrió un error al eliminar el periodo.",
}

const (
	MsgDuplicate             = "Existe una asignación para el instructor y curso en el periodo seleccionado."
	MsgCoursesLoadFailed     = "Ocurrió un error al buscar todos los cursos."
	MsgInstructorsLoadFailed = "Ocurrió un error al buscar todos los instructores."
	MsgCreatedRefreshFailed  = "Ocurrió un error al buscar el periodo nuevo."
	MsgUpdatedRefreshFailed  = "Ocurrió un error al buscar el periodo actualizado."
)

type (
	// CourseFinder lists the courses offered in the course selection.
	CourseFinder interface {
		FindAll(ctx context.Context) ([]course.Course, error)
	}

	// InstructorFinder lists the instructors offered in the instructor selection.
	InstructorFinder interface {
		FindAll(ctx context.Context) ([]instructor.Instructor, error)
	}
)

// Admin is the period admin screen. Besides its own assignment list, it keeps
// read-only lists of courses and instructors to fill the selections and to name rows.
type Admin struct {
	mu          sync.Mutex
	repo        Repository
	courseRepo  CourseFinder
	instRepo    InstructorFinder
	years       Years
	deps        admin.Deps
	rows        *admin.Cache[Assignment]
	courses     *admin.Cache[course.Course]
	instructors *admin.Cache[instructor.Instructor]
	session     admin.Session[Form]
}

func NewAdmin(
	repo Repository,
	courseRepo CourseFinder,
	instRepo InstructorFinder,
	years Years,
	deps admin.Deps,
) (*Admin, error) {
	if repo == nil || courseRepo == nil || instRepo == nil {
		return nil, errors.New("schoolyear.NewAdmin: nil repository")
	}
	if years.Span <= 0 {
		return nil, errors.Errorf("schoolyear.NewAdmin: invalid year span %d", years.Span)
	}
	if err := deps.Check(); err != nil {
		return nil, err
	}
	InitValidators(deps.Validate, deps.Translator, years)

	return &Admin{
		repo:        repo,
		courseRepo:  courseRepo,
		instRepo:    instRepo,
		years:       years,
		deps:        deps,
		rows:        admin.NewCache[Assignment](),
		courses:     admin.NewCache[course.Course](),
		instructors: admin.NewCache[instructor.Instructor](),
	}, nil
}

// Load fetches the assignments, the courses and the instructors.
// Every list is fetched even if a previous one failed; the first error is returned.
func (a *Admin) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	fail := func(msg string, err error) {
		a.deps.Failed(msg, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if rows, err := a.repo.FindAll(ctx); err != nil {
		fail(Messages.LoadFailed, errors.Wrap(err, "finding all school years"))
	} else {
		a.rows.Reset(rows)
	}
	if courses, err := a.courseRepo.FindAll(ctx); err != nil {
		fail(MsgCoursesLoadFailed, errors.Wrap(err, "finding all courses"))
	} else {
		a.courses.Reset(courses)
	}
	if insts, err := a.instRepo.FindAll(ctx); err != nil {
		fail(MsgInstructorsLoadFailed, errors.Wrap(err, "finding all instructors"))
	} else {
		a.instructors.Reset(insts)
	}
	return firstErr
}

func (a *Admin) Rows() []Assignment                   { return a.rows.All() }
func (a *Admin) Courses() []course.Course             { return a.courses.All() }
func (a *Admin) Instructors() []instructor.Instructor { return a.instructors.All() }
func (a *Admin) Years() []int                         { return a.years.List() }

func (a *Admin) Get(ctx context.Context, id int) (Assignment, error) {
	asg, err := a.repo.FindByID(ctx, id)
	return asg, errors.Wrapf(err, "finding school year %d", id)
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

	asg, ok := a.rows.Get(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "editing school year %d", id)
	}
	return a.session.BeginEdit(FormFrom(asg))
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

// Duplicates returns the cached assignments, other than the one being edited,
// sharing the (course, instructor, year) triple of `form`.
func (a *Admin) Duplicates(form Form) []Assignment {
	key := form.Key()
	return a.rows.Filter(func(row Assignment) bool {
		return row.ID != form.ID && row.Key() == key
	})
}

// Save creates or updates the assignment being edited.
// Invalid forms and duplicates are rejected without calling the API and keep the session open.
func (a *Admin) Save(ctx context.Context) (Assignment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := a.session.State()
	if !state.Editing() {
		return Assignment{}, errors.Wrap(admin.ErrInvalidTransition, "saving school year")
	}
	form := a.session.Form()
	if state == admin.EditingNew {
		// a new assignment has no identity to exclude from the checks
		form.ID, form.SavedYear = 0, 0
	}
	if err := a.deps.ValidateForm(form); err != nil {
		return Assignment{}, err
	}
	if len(a.Duplicates(form)) > 0 {
		a.deps.Notifier.Info(MsgDuplicate)
		return Assignment{}, ErrDuplicateAssignment
	}

	if state == admin.EditingNew {
		return a.create(ctx, form)
	}
	return a.update(ctx, form)
}

func (a *Admin) create(ctx context.Context, form Form) (Assignment, error) {
	created, err := a.repo.Create(ctx, form.NewAssignment())
	if err != nil {
		err = errors.Wrap(err, "creating school year")
		a.deps.Failed(Messages.CreateFailed, err)
		_ = a.session.Cancel()
		return Assignment{}, err
	}
	a.deps.Notifier.Success(Messages.Created)

	// the create response carries no names
	asg, err := a.repo.FindByID(ctx, created.ID)
	if err != nil {
		a.deps.Failed(MsgCreatedRefreshFailed, errors.Wrapf(err, "finding new school year %d", created.ID))
		asg = a.named(created)
	}
	a.rows.Append(asg)
	_ = a.session.Commit()
	return asg, nil
}

func (a *Admin) update(ctx context.Context, form Form) (Assignment, error) {
	updated := form.Assignment()
	if err := a.repo.Update(ctx, updated); err != nil {
		err = errors.Wrapf(err, "updating school year %d", updated.ID)
		a.deps.Failed(Messages.UpdateFailed, err)
		_ = a.session.Cancel()
		return Assignment{}, err
	}
	a.deps.Notifier.Success(Messages.Updated)

	asg, err := a.repo.FindByID(ctx, updated.ID)
	if err != nil {
		a.deps.Failed(MsgUpdatedRefreshFailed, errors.Wrapf(err, "finding updated school year %d", updated.ID))
		asg = a.named(updated)
	}
	a.rows.Patch(updated.ID, func(row *Assignment) {
		row.CourseID = asg.CourseID
		row.InstructorID = asg.InstructorID
		row.Year = asg.Year
		row.CourseName = asg.CourseName
		row.InstructorName = asg.InstructorName
	})
	_ = a.session.Commit()
	return asg, nil
}

// named fills the display names of `asg` from the lookup lists.
func (a *Admin) named(asg Assignment) Assignment {
	if crs, ok := a.courses.Get(asg.CourseID); ok {
		asg.CourseName = crs.Name
	}
	if inst, ok := a.instructors.Get(asg.InstructorID); ok {
		asg.InstructorName = inst.Name
	}
	return asg
}

// Delete removes assignment `id`. The request is sent even when `id` is not cached.
func (a *Admin) Delete(ctx context.Context, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session.State() != admin.Viewing {
		return errors.Wrap(admin.ErrInvalidTransition, "deleting school year while editing")
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		err = errors.Wrapf(err, "deleting school year %d", id)
		a.deps.Failed(Messages.DeleteFailed, err)
		return err
	}
	a.rows.Remove(id)
	a.deps.Notifier.Success(Messages.Deleted)
	return nil
}
