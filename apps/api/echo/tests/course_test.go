package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/tests"
)

func coursePayload(nrc string) map[string]interface{} {
	return map[string]interface{}{
		"nrc":                nrc,
		"nombre":             "Sistemas Operativos",
		"seccion":            "4",
		"dias_json":          []string{course.Monday, course.Thursday},
		"hora_inicio":        "10:00",
		"hora_fin":           "11:30",
		"salon":              "CCO3 12",
		"programa_educativo": course.Programs[0],
		"profesor_id":        1,
		"creditos":           7,
	}
}

func decodeBody(t *testing.T, body []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decoding body %q: %v", body, err)
	}
	return v
}

func Test_courseApi_auth(t *testing.T) {
	app, conf := setup(t)
	studentToken := testutil.Token(t, conf, testutil.Student)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "no token",
			method:   http.MethodGet,
			path:     "/lista-materias/",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "bad token",
			method:   http.MethodGet,
			path:     "/lista-materias/",
			token:    "not-a-token",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{
			name:     "student cannot create",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     marchallObj(t, coursePayload("555555")),
			token:    studentToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "student cannot update",
			method:   http.MethodPut,
			path:     "/materias/?id=1",
			body:     marchallObj(t, coursePayload("205999")),
			token:    studentToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "student cannot delete",
			method:   http.MethodDelete,
			path:     "/materias/?id=1",
			token:    studentToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
	})
}

func Test_courseApi_query(t *testing.T) {
	app, conf := setup(t)

	req, rec := newAuthRequest(http.MethodGet, "/lista-materias/", testutil.Token(t, conf, testutil.Teacher))
	app.ServeHTTP(rec, req)
	if !assert.Equal(t, http.StatusOK, rec.Code) {
		return
	}

	courses, err := course.DecodeCourses(decodeBody(t, rec.Body.Bytes()))
	if assert.NoError(t, err) && assert.Len(t, courses, 4) {
		rows := course.Present(courses)
		assert.Equal(t, "205999", rows[0].NRC)
		assert.Equal(t, "Monday, Wednesday", rows[0].Days)
		assert.Equal(t, "Ada Lovelace", rows[0].InstructorName)
		assert.Equal(t, course.Unassigned, rows[2].InstructorName)
		assert.Equal(t, "Lunes y Miércoles", rows[3].Days)
	}
	// weekdays travel as an encoded string
	assert.Contains(t, rec.Body.String(), `"dias_json":"[\"Monday\",\"Wednesday\"]"`)
}

func Test_courseApi_retrieve(t *testing.T) {
	app, conf := setup(t)
	token := testutil.Token(t, conf, testutil.Student)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "not found",
			method:   http.MethodGet,
			path:     "/materias/?id=99",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: course.ErrNotFound.Error()}),
		},
		{
			name:     "invalid id",
			method:   http.MethodGet,
			path:     "/materias/?id=abc",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid id"}),
		},
	})

	req, rec := newAuthRequest(http.MethodGet, "/materias/?id=2", token)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	c, err := course.DecodeCourse(decodeBody(t, rec.Body.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, "100234", c.NRC)
	assert.Equal(t, "Alan Turing", c.InstructorName())
}

func Test_courseApi_create(t *testing.T) {
	app, conf := setup(t)
	token := testutil.Token(t, conf, testutil.Admin)

	invalid := coursePayload("12")
	invalid["creditos"] = "11"
	invalid["hora_fin"] = "09:00"

	encodedDays := coursePayload("777777")
	encodedDays["dias_json"] = `["Friday"]`
	encodedDays["profesor_id"] = "2"

	unknownInstructor := coursePayload("888888")
	unknownInstructor["profesor_id"] = 42

	runHTTPTests(t, app, []httpTest{
		{
			name:     "invalid fields",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     marchallObj(t, invalid),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"nrc":      "the NRC must be exactly 6 digits",
				"creditos": "credits must be a number between 1 and 10",
				"hora_fin": "the end time must be later than the start time",
			}),
		},
		{
			name:     "missing fields",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     []byte(`{"nrc": "123456", "dias_json": ["Monday"]}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"nombre":             core.RequiredText,
				"seccion":            core.RequiredText,
				"hora_inicio":        core.RequiredText,
				"hora_fin":           core.RequiredText,
				"salon":              core.RequiredText,
				"programa_educativo": core.RequiredText,
				"profesor_id":        core.RequiredText,
				"creditos":           core.RequiredText,
			}),
		},
		{
			name:     "duplicate nrc",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     marchallObj(t, coursePayload("205999")),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"nrc": course.ErrNRCExists.Error()}),
		},
		{
			name:     "unknown instructor",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     marchallObj(t, unknownInstructor),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"profesor_id": "instructor not found"}),
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/materias/",
			body:     []byte(`{"nrc": `),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "malformed JSON body"}),
		},
	})

	for _, payload := range []map[string]interface{}{coursePayload("666666"), encodedDays} {
		req, rec := newAuthRequest(http.MethodPost, "/materias/", token, marchallObj(t, payload))
		app.ServeHTTP(rec, req)
		if !assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String()) {
			continue
		}
		c, err := course.DecodeCourse(decodeBody(t, rec.Body.Bytes()))
		assert.NoError(t, err)
		assert.Equal(t, payload["nrc"], c.NRC)
		assert.NotZero(t, c.ID)
	}
}

func Test_courseApi_update(t *testing.T) {
	app, conf := setup(t)
	token := testutil.Token(t, conf, testutil.Admin)

	withID := coursePayload("205999")
	withID["id"] = 1
	withID["salon"] = "B2"

	runHTTPTests(t, app, []httpTest{
		{
			name:     "missing id",
			method:   http.MethodPut,
			path:     "/materias/",
			body:     marchallObj(t, coursePayload("205999")),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid id"}),
		},
		{
			name:     "not found",
			method:   http.MethodPut,
			path:     "/materias/?id=99",
			body:     marchallObj(t, coursePayload("999999")),
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: course.ErrNotFound.Error()}),
		},
		{
			name:     "nrc of another course",
			method:   http.MethodPut,
			path:     "/materias/?id=1",
			body:     marchallObj(t, coursePayload("100234")),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"nrc": course.ErrNRCExists.Error()}),
		},
	})

	req, rec := newAuthRequest(http.MethodPut, "/materias/", token, marchallObj(t, withID))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	c, err := course.DecodeCourse(decodeBody(t, rec.Body.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "B2", c.Room)
	assert.Equal(t, "Monday, Thursday", c.Days.String())
}

func Test_courseApi_destroy(t *testing.T) {
	app, conf := setup(t)
	token := testutil.Token(t, conf, testutil.Admin)

	runHTTPTests(t, app, []httpTest{
		{
			name:     "delete",
			method:   http.MethodDelete,
			path:     "/materias/?id=1",
			token:    token,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "already deleted",
			method:   http.MethodDelete,
			path:     "/materias/?id=1",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: course.ErrNotFound.Error()}),
		},
		{
			name:     "gone from detail",
			method:   http.MethodGet,
			path:     "/materias/?id=1",
			token:    token,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: course.ErrNotFound.Error()}),
		},
	})
}
