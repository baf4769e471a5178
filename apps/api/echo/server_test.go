package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-admin/core"
	"github.com/trezcool/masomo-admin/services/logger"
	"github.com/trezcool/masomo-admin/storage/database/inmem"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     string
	wantCode int
	wantData string // JSON; empty for no body
}

func newTestServer(t *testing.T) Server {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	translator := core.NewTranslator()
	return NewServer(
		&Options{TestMode: true, DisableReqLogs: true},
		&Deps{
			Logger:      logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{Debug: true, TestMode: true}),
			Validate:    core.NewValidator(translator),
			Translator:  translator,
			Courses:     inmemdb.NewCourseRepository(db),
			Instructors: inmemdb.NewInstructorRepository(db),
			SchoolYears: inmemdb.NewSchoolYearRepository(db),
		},
	)
}

func newRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func runHTTPTests(t *testing.T, app Server, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, tt.wantCode, rec.Code, "code; body: %s", rec.Body.String())
	if tt.wantData == "" {
		assert.Empty(t, bytes.TrimSpace(rec.Body.Bytes()))
		return
	}
	assert.JSONEq(t, tt.wantData, rec.Body.String())
}

func TestHome(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/", "")
	newTestServer(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Masomo Admin API!", rec.Body.String())
}

func TestCourseAPI(t *testing.T) {
	runHTTPTests(t, newTestServer(t), []httpTest{
		{name: "empty list", method: http.MethodGet, path: "/api/course/findAll", wantCode: http.StatusOK, wantData: `[]`},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/api/course/createCourse",
			body:     `{"name":" Math ","description":"Algebra"}`,
			wantCode: http.StatusCreated,
			wantData: `{"id":1,"name":"Math","description":"Algebra"}`,
		},
		{
			name:     "create without description",
			method:   http.MethodPost,
			path:     "/api/course/createCourse",
			body:     `{"name":"Art","description":""}`,
			wantCode: http.StatusCreated,
			wantData: `{"id":2,"name":"Art","description":null}`,
		},
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/api/course/createCourse",
			body:     `{"description":"Algebra"}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"name":"name es requerido"}`,
		},
		{
			name:     "create malformed",
			method:   http.MethodPost,
			path:     "/api/course/createCourse",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantData: `{"error":"unexpected EOF"}`,
		},
		{name: "find by id", method: http.MethodGet, path: "/api/course/findById?id=1", wantCode: http.StatusOK, wantData: `{"id":1,"name":"Math","description":"Algebra"}`},
		{name: "find unknown", method: http.MethodGet, path: "/api/course/findById?id=42", wantCode: http.StatusNotFound, wantData: `{"error":"not found"}`},
		{name: "find without id", method: http.MethodGet, path: "/api/course/findById", wantCode: http.StatusBadRequest, wantData: `{"id":"id debe ser un número entero"}`},
		{name: "find bad id", method: http.MethodGet, path: "/api/course/findById?id=lol", wantCode: http.StatusBadRequest, wantData: `{"id":"id debe ser un número entero"}`},
		{
			name:     "update",
			method:   http.MethodPost,
			path:     "/api/course/updateCourse",
			body:     `{"id":1,"name":"Calculus","description":null}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "update unknown",
			method:   http.MethodPost,
			path:     "/api/course/updateCourse",
			body:     `{"id":42,"name":"Calculus"}`,
			wantCode: http.StatusNotFound,
			wantData: `{"error":"not found"}`,
		},
		{
			name:     "update without id",
			method:   http.MethodPost,
			path:     "/api/course/updateCourse",
			body:     `{"name":"Calculus"}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"id":"id es requerido"}`,
		},
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/api/course/findAll",
			wantCode: http.StatusOK,
			wantData: `[{"id":1,"name":"Calculus","description":null},{"id":2,"name":"Art","description":null}]`,
		},
		{name: "delete", method: http.MethodDelete, path: "/api/course/deleteCourse?id=1", wantCode: http.StatusOK},
		{name: "delete unknown", method: http.MethodDelete, path: "/api/course/deleteCourse?id=1", wantCode: http.StatusOK},
		{name: "trailing slash", method: http.MethodGet, path: "/api/course/findAll/", wantCode: http.StatusOK, wantData: `[{"id":2,"name":"Art","description":null}]`},
	})
}

func TestInstructorAPI(t *testing.T) {
	runHTTPTests(t, newTestServer(t), []httpTest{
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/api/instructor/createInstructor",
			body:     `{"identification":"A1","name":"Jon"}`,
			wantCode: http.StatusCreated,
			wantData: `{"id":1,"identification":"A1","name":"Jon"}`,
		},
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/api/instructor/createInstructor",
			body:     `{"name":"  "}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"identification":"identification es requerido","name":"name es requerido"}`,
		},
		{
			name:     "update",
			method:   http.MethodPost,
			path:     "/api/instructor/updateInstructor",
			body:     `{"id":1,"identification":"A1","name":"John"}`,
			wantCode: http.StatusOK,
		},
		{name: "find by id", method: http.MethodGet, path: "/api/instructor/findById?id=1", wantCode: http.StatusOK, wantData: `{"id":1,"identification":"A1","name":"John"}`},
		{name: "delete", method: http.MethodDelete, path: "/api/instructor/deleteInstructor?id=1", wantCode: http.StatusOK},
		{name: "list", method: http.MethodGet, path: "/api/instructor/findAll", wantCode: http.StatusOK, wantData: `[]`},
	})
}

func TestSchoolYearAPI(t *testing.T) {
	app := newTestServer(t)
	runHTTPTests(t, app, []httpTest{
		{name: "course", method: http.MethodPost, path: "/api/course/createCourse", body: `{"name":"Math"}`, wantCode: http.StatusCreated, wantData: `{"id":1,"name":"Math","description":null}`},
		{name: "instructor", method: http.MethodPost, path: "/api/instructor/createInstructor", body: `{"identification":"A1","name":"John"}`, wantCode: http.StatusCreated, wantData: `{"id":1,"identification":"A1","name":"John"}`},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/api/schoolYear/createSchoolYear",
			body:     `{"courseId":1,"instructorId":1,"year":2022}`,
			wantCode: http.StatusCreated,
			wantData: `{"id":1,"courseId":1,"instructorId":1,"year":2022,"courseName":"","instructorName":""}`,
		},
		{
			name:     "create duplicate",
			method:   http.MethodPost,
			path:     "/api/schoolYear/createSchoolYear",
			body:     `{"courseId":1,"instructorId":1,"year":2022}`,
			wantCode: http.StatusConflict,
			wantData: `{"error":"an assignment for this course, instructor and year already exists"}`,
		},
		{
			name:     "create unknown course",
			method:   http.MethodPost,
			path:     "/api/schoolYear/createSchoolYear",
			body:     `{"courseId":9,"instructorId":1,"year":2022}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"courseId":"courseId no existe"}`,
		},
		{
			name:     "create unknown instructor",
			method:   http.MethodPost,
			path:     "/api/schoolYear/createSchoolYear",
			body:     `{"courseId":1,"instructorId":9,"year":2022}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"instructorId":"instructorId no existe"}`,
		},
		{
			name:     "create invalid",
			method:   http.MethodPost,
			path:     "/api/schoolYear/createSchoolYear",
			body:     `{"courseId":1}`,
			wantCode: http.StatusBadRequest,
			wantData: `{"instructorId":"instructorId es requerido","year":"year es requerido"}`,
		},
		{
			name:     "find by id",
			method:   http.MethodGet,
			path:     "/api/schoolYear/findById?id=1",
			wantCode: http.StatusOK,
			wantData: `{"id":1,"courseId":1,"instructorId":1,"year":2022,"courseName":"Math","instructorName":"John"}`,
		},
		{
			name:     "update year",
			method:   http.MethodPost,
			path:     "/api/schoolYear/updateSchoolYear",
			body:     `{"id":1,"courseId":1,"instructorId":1,"year":2023}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "update unknown",
			method:   http.MethodPost,
			path:     "/api/schoolYear/updateSchoolYear",
			body:     `{"id":9,"courseId":1,"instructorId":1,"year":2023}`,
			wantCode: http.StatusNotFound,
			wantData: `{"error":"not found"}`,
		},
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/api/schoolYear/findAll",
			wantCode: http.StatusOK,
			wantData: `[{"id":1,"courseId":1,"instructorId":1,"year":2023,"courseName":"Math","instructorName":"John"}]`,
		},
		{name: "delete course cascades", method: http.MethodDelete, path: "/api/course/deleteCourse?id=1", wantCode: http.StatusOK},
		{name: "list after cascade", method: http.MethodGet, path: "/api/schoolYear/findAll", wantCode: http.StatusOK, wantData: `[]`},
		{name: "delete unknown", method: http.MethodDelete, path: "/api/schoolYear/deleteSchoolYear?id=1", wantCode: http.StatusOK},
	})
}

func TestAppHTTPErrorHandler_serverError(t *testing.T) {
	translator := core.NewTranslator()
	buf := new(bytes.Buffer)
	logger := logsvc.NewRollbarLogger(log.New(buf, "", 0), &core.Config{Debug: true, TestMode: true})

	app := NewServer(&Options{TestMode: true, DisableReqLogs: true}, &Deps{
		Logger:     logger,
		Validate:   core.NewValidator(translator),
		Translator: translator,
	}).(*server).app
	app.GET("/boom", func(ctx echo.Context) error { return io.ErrUnexpectedEOF })

	req, rec := newRequest(http.MethodGet, "/boom", "")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": "Internal Server Error"}, body)
	assert.Contains(t, buf.String(), "ERROR: Internal Server Error")
}
