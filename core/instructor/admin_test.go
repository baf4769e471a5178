package instructor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/core/admin"
	"github.com/trezcool/masomo-admin/core/instructor"
	"github.com/trezcool/masomo-admin/storage/remote"
	"github.com/trezcool/masomo-admin/tests"
)

func setup(t *testing.T) (*instructor.Admin, *admin.Board, *testutil.API) {
	api := testutil.NewAPI(t)
	client, err := remote.NewClient(api.URL(), 5*time.Second, testutil.NewLogger())
	require.NoError(t, err)

	translator := core.NewTranslator()
	board := admin.NewBoard(0)
	a, err := instructor.NewAdmin(remote.NewInstructorRepository(client), admin.Deps{
		Validate:   core.NewValidator(translator),
		Translator: translator,
		Notifier:   board,
		Logger:     testutil.NewLogger(),
	})
	require.NoError(t, err)
	return a, board, api
}

func TestNewAdmin(t *testing.T) {
	_, err := instructor.NewAdmin(nil, admin.Deps{})
	assert.Error(t, err)
}

func TestAdmin_updateName(t *testing.T) {
	a, board, api := setup(t)
	ctx := context.Background()
	testutil.CreateInstructor(t, api.Instructors, "B7", "Ann")
	testutil.CreateInstructor(t, api.Instructors, "C2", "Bob")
	testutil.CreateInstructor(t, api.Instructors, "A1", "Jon")
	require.NoError(t, a.Load(ctx))

	require.NoError(t, a.BeginEdit(3))
	require.NoError(t, a.Edit(func(form *instructor.Form) { form.Name = "John" }))
	updated, err := a.Save(ctx)
	require.NoError(t, err)

	assert.Equal(t, instructor.Instructor{ID: 3, Identification: "A1", Name: "John"}, updated)
	rows := a.Rows()
	assert.Len(t, rows, 3)
	assert.Equal(t, updated, rows[2])
	current, _ := board.Current()
	assert.Equal(t, instructor.Messages.Updated, current.Message)
}

func TestAdmin_create(t *testing.T) {
	tests := []struct {
		name       string
		form       instructor.Form
		wantFields map[string]string
	}{
		{name: "valid", form: instructor.Form{Identification: " A1 ", Name: "Jon"}},
		{
			name:       "missing fields",
			form:       instructor.Form{Name: " "},
			wantFields: map[string]string{"identification": "identification es requerido", "name": "name es requerido"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, board, _ := setup(t)
			require.NoError(t, a.BeginCreate())
			require.NoError(t, a.Edit(func(form *instructor.Form) { *form = tt.form }))

			inst, err := a.Save(context.Background())
			current, _ := board.Current()
			if tt.wantFields != nil {
				var vErr *core.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantFields, vErr.FieldMessages())
				assert.Equal(t, admin.EditingNew, a.State())
				assert.Equal(t, admin.MsgInvalidFields, current.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A1", inst.Identification)
			assert.Equal(t, []instructor.Instructor{inst}, a.Rows())
			assert.Equal(t, instructor.Messages.Created, current.Message)
		})
	}
}

func TestAdmin_delete(t *testing.T) {
	a, board, api := setup(t)
	ctx := context.Background()
	inst := testutil.CreateInstructor(t, api.Instructors, "A1", "Jon")
	require.NoError(t, a.Load(ctx))

	require.NoError(t, a.Delete(ctx, inst.ID))
	assert.Empty(t, a.Rows())
	current, _ := board.Current()
	assert.Equal(t, instructor.Messages.Deleted, current.Message)

	_, err := a.Get(ctx, inst.ID)
	assert.ErrorIs(t, err, instructor.ErrNotFound)
}
