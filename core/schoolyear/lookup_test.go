package schoolyear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmin_CourseID(t *testing.T) {
	a, _ := setup(t, newFakeRepo())

	tests := []struct {
		ref     string
		want    int
		wantErr string
	}{
		{ref: "2", want: 2},
		{ref: " math ", want: 1},
		{ref: "PHYSICS", want: 2},
		{ref: "9", wantErr: `unknown course "9"`},
		{ref: "Mth", wantErr: `unknown course "Mth"; did you mean "Math"?`},
		{ref: "Chemistry", wantErr: `unknown course "Chemistry"`},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := a.CourseID(tt.ref)
			if tt.wantErr != "" {
				var refErr *UnknownRefError
				if assert.ErrorAs(t, err, &refErr) {
					assert.Equal(t, "course", refErr.Kind)
				}
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdmin_InstructorID(t *testing.T) {
	a, _ := setup(t, newFakeRepo())

	tests := []struct {
		ref     string
		want    int
		wantErr string
	}{
		{ref: "1", want: 1},
		{ref: "b2", want: 2},
		{ref: "jane roe", want: 2},
		{ref: "John Do", wantErr: `unknown instructor "John Do"; did you mean "John Doe"?`},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := a.InstructorID(tt.ref)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_suggest(t *testing.T) {
	tests := []struct {
		name  string
		ref   string
		names []string
		want  []string
	}{
		{
			name:  "best first",
			ref:   "Algebr",
			names: []string{"Algebra II", "Biology", "Algebra"},
			want:  []string{"Algebra", "Algebra II"},
		},
		{
			name:  "case insensitive",
			ref:   "mth",
			names: []string{"Physics", "MATH"},
			want:  []string{"MATH"},
		},
		{
			name:  "at most three",
			ref:   "Art",
			names: []string{"Arts", "Art I", "Art II", "Art III"},
			want:  []string{"Arts", "Art I", "Art II"},
		},
		{name: "nothing close", ref: "Chemistry", names: []string{"Math", "Physics"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest(tt.ref, tt.names))
		})
	}
}

func TestUnknownRefError_Error(t *testing.T) {
	err := &UnknownRefError{Kind: "course", Ref: "Algebr", Suggestions: []string{"Algebra", "Algebra II"}}
	assert.EqualError(t, err, `unknown course "Algebr"; did you mean "Algebra" or "Algebra II"?`)
}

func TestYears(t *testing.T) {
	years := Years{First: 2021, Span: 3}
	assert.Equal(t, []int{2021, 2022, 2023}, years.List())
	assert.True(t, years.Contains(2021))
	assert.True(t, years.Contains(2023))
	assert.False(t, years.Contains(2024))
	assert.False(t, years.Contains(2020))
	assert.Empty(t, Years{First: 2021}.List())
}
