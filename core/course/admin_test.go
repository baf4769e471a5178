package course_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/admin"
	"github.com/trezcool/masomo-admin/core/course"
	"github.com/trezcool/masomo-admin/storage/remote"
	"github.com/trezcool/masomo-admin/tests"
)

var errOffline = errors.New("network is unreachable")

// spyRepo counts the calls reaching the API and can simulate an offline API.
type spyRepo struct {
	course.Repository
	calls   map[string]int
	offline bool
}

func (r *spyRepo) called(op string) error {
	r.calls[op]++
	if r.offline {
		return errOffline
	}
	return nil
}

func (r *spyRepo) Create(ctx context.Context, nc course.NewCourse) (course.Course, error) {
	if err := r.called("create"); err != nil {
		return course.Course{}, err
	}
	return r.Repository.Create(ctx, nc)
}

func (r *spyRepo) Update(ctx context.Context, c course.Course) error {
	if err := r.called("update"); err != nil {
		return err
	}
	return r.Repository.Update(ctx, c)
}

func (r *spyRepo) Delete(ctx context.Context, id int) error {
	if err := r.called("delete"); err != nil {
		return err
	}
	return r.Repository.Delete(ctx, id)
}

type fixture struct {
	api   *testutil.API
	repo  *spyRepo
	board *admin.Board
	admin *course.Admin
}

func setup(t *testing.T, seed ...course.NewCourse) *fixture {
	api := testutil.NewAPI(t)
	for _, nc := range seed {
		testutil.CreateCourse(t, api.Courses, nc.Name, nc.Description.String)
	}

	client, err := remote.NewClient(api.URL(), 5*time.Second, testutil.NewLogger())
	require.NoError(t, err)
	repo := &spyRepo{Repository: remote.NewCourseRepository(client), calls: make(map[string]int)}
	translator := core.NewTranslator()
	board := admin.NewBoard(0)

	a, err := course.NewAdmin(repo, admin.Deps{
		Validate:   core.NewValidator(translator),
		Translator: translator,
		Notifier:   board,
		Logger:     testutil.NewLogger(),
	})
	require.NoError(t, err)
	require.NoError(t, a.Load(context.Background()))

	return &fixture{api: api, repo: repo, board: board, admin: a}
}

func (f *fixture) notice(t *testing.T) string {
	t.Helper()
	current, shown := f.board.Current()
	require.True(t, shown, "no notice shown")
	return current.Message
}

func TestAdmin_create(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.admin.BeginCreate())
	require.NoError(t, f.admin.Edit(func(form *course.Form) {
		form.Name = "Math"
		form.Description = "Algebra"
	}))
	crs, err := f.admin.Save(ctx)
	require.NoError(t, err)

	assert.NotZero(t, crs.ID)
	assert.Equal(t, "Math", crs.Name)
	assert.Equal(t, null.StringFrom("Algebra"), crs.Description)
	assert.Equal(t, []course.Course{crs}, f.admin.Rows())
	assert.Equal(t, admin.Viewing, f.admin.State())
	assert.Equal(t, course.Messages.Created, f.notice(t))

	stored, err := f.api.Courses.FindByID(ctx, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, crs, stored)
}

func TestAdmin_createWithoutDescription(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.admin.BeginCreate())
	require.NoError(t, f.admin.Edit(func(form *course.Form) { form.Name = "  History " }))
	crs, err := f.admin.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "History", crs.Name)
	assert.False(t, crs.Description.Valid)
}

func TestAdmin_saveInvalidForm(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.admin.BeginCreate())
	require.NoError(t, f.admin.Edit(func(form *course.Form) { form.Name = "   " }))
	_, err := f.admin.Save(context.Background())

	var vErr *core.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{"name": "name es requerido"}, vErr.FieldMessages())
	assert.Equal(t, admin.EditingNew, f.admin.State(), "stays in editing")
	assert.Equal(t, admin.MsgInvalidFields, f.notice(t))
	assert.Zero(t, f.repo.calls["create"])
	assert.Empty(t, f.admin.Rows())
}

func TestAdmin_update(t *testing.T) {
	f := setup(t, course.NewCourse{Name: "Math", Description: null.StringFrom("Algebra")}, course.NewCourse{Name: "Art"})

	require.NoError(t, f.admin.BeginEdit(1))
	assert.Equal(t, course.Form{ID: 1, Name: "Math", Description: "Algebra"}, f.admin.Form())
	require.NoError(t, f.admin.Edit(func(form *course.Form) { form.Description = "" }))
	_, err := f.admin.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []course.Course{{ID: 1, Name: "Math"}, {ID: 2, Name: "Art"}}, f.admin.Rows())
	assert.Equal(t, course.Messages.Updated, f.notice(t))
	assert.Equal(t, admin.Viewing, f.admin.State())
}

func TestAdmin_beginEditUnknown(t *testing.T) {
	f := setup(t)
	assert.ErrorIs(t, f.admin.BeginEdit(42), course.ErrNotFound)
	assert.Equal(t, admin.Viewing, f.admin.State())
}

func TestAdmin_cancelLeavesListUnchanged(t *testing.T) {
	f := setup(t, course.NewCourse{Name: "Math"})
	before := f.admin.Rows()

	require.NoError(t, f.admin.BeginEdit(1))
	require.NoError(t, f.admin.Edit(func(form *course.Form) { form.Name = "Physics" }))
	require.NoError(t, f.admin.Cancel())

	assert.Equal(t, before, f.admin.Rows())
	assert.Equal(t, admin.Viewing, f.admin.State())
	assert.Zero(t, f.repo.calls["update"])
}

func TestAdmin_delete(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		wantRows []course.Course
	}{
		{name: "existing", id: 1, wantRows: []course.Course{{ID: 2, Name: "Art"}}},
		{name: "absent", id: 42, wantRows: []course.Course{{ID: 1, Name: "Math"}, {ID: 2, Name: "Art"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, course.NewCourse{Name: "Math"}, course.NewCourse{Name: "Art"})

			require.NoError(t, f.admin.Delete(context.Background(), tt.id))
			assert.Equal(t, tt.wantRows, f.admin.Rows())
			assert.Equal(t, 1, f.repo.calls["delete"], "request sent")
			assert.Equal(t, course.Messages.Deleted, f.notice(t))
		})
	}
}

func TestAdmin_deleteWhileEditing(t *testing.T) {
	f := setup(t, course.NewCourse{Name: "Math"})

	require.NoError(t, f.admin.BeginCreate())
	assert.ErrorIs(t, f.admin.Delete(context.Background(), 1), admin.ErrInvalidTransition)
	assert.Zero(t, f.repo.calls["delete"])
}

func TestAdmin_offline(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		run     func(a *course.Admin) error
		wantMsg string
	}{
		{
			name: "create",
			run: func(a *course.Admin) error {
				_ = a.BeginCreate()
				_ = a.Edit(func(form *course.Form) { form.Name = "Physics" })
				_, err := a.Save(ctx)
				return err
			},
			wantMsg: course.Messages.CreateFailed,
		},
		{
			name: "update",
			run: func(a *course.Admin) error {
				_ = a.BeginEdit(1)
				_ = a.Edit(func(form *course.Form) { form.Name = "Physics" })
				_, err := a.Save(ctx)
				return err
			},
			wantMsg: course.Messages.UpdateFailed,
		},
		{
			name:    "delete",
			run:     func(a *course.Admin) error { return a.Delete(ctx, 1) },
			wantMsg: course.Messages.DeleteFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, course.NewCourse{Name: "Math"})
			before := f.admin.Rows()
			f.repo.offline = true

			assert.ErrorIs(t, tt.run(f.admin), errOffline)
			assert.Equal(t, before, f.admin.Rows(), "cache untouched")
			assert.Equal(t, admin.Viewing, f.admin.State())
			assert.Equal(t, tt.wantMsg, f.notice(t))
		})
	}
}

func TestAdmin_loadFailureKeepsRows(t *testing.T) {
	f := setup(t, course.NewCourse{Name: "Math"})
	f.api.Server.Close()

	assert.Error(t, f.admin.Load(context.Background()))
	assert.Len(t, f.admin.Rows(), 1)
	assert.Equal(t, course.Messages.LoadFailed, f.notice(t))
}

func TestAdmin_doubleSubmit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.admin.BeginCreate())
	require.NoError(t, f.admin.Edit(func(form *course.Form) { form.Name = "Math" }))

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := f.admin.Save(ctx)
			errs <- err
		}()
	}
	var failed int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.ErrorIs(t, err, admin.ErrInvalidTransition)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, f.repo.calls["create"])
	assert.Len(t, f.admin.Rows(), 1)
}
