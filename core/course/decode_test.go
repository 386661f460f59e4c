package course

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func jsonValue(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDecodeCourses(t *testing.T) {
	input := jsonValue(t, `[
		{
			"id": 1, "nrc": "205999", "nombre": "Redes", "seccion": "1",
			"dias_json": "[\"Monday\", \"Friday\"]", "hora_inicio": "07:00:00", "hora_fin": "08:00:00",
			"salon": "A1", "programa_educativo": "ICC", "creditos": "6",
			"profesor": {"id": 3, "user": {"id": 9, "first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com"}}
		},
		{"id": 2, "nrc": 100001, "dias_json": ["Tuesday"], "profesor": 4, "creditos": 3},
		{"id": 3, "dias_json": "broken", "profesor": null}
	]`)

	courses, err := DecodeCourses(input)
	if !assert.NoError(t, err) || !assert.Len(t, courses, 3) {
		return
	}

	assert.Equal(t, "Monday, Friday", courses[0].Days.String())
	assert.Equal(t, 6, courses[0].Credits)
	assert.Equal(t, "Ada Lovelace", courses[0].InstructorName())
	assert.Equal(t, 9, courses[0].Instructor.User.ID)

	assert.Equal(t, "100001", courses[1].NRC)
	assert.Equal(t, "Tuesday", courses[1].Days.String())
	if assert.NotNil(t, courses[1].Instructor) {
		assert.Equal(t, 4, courses[1].Instructor.ID)
	}
	assert.Equal(t, Unassigned, courses[1].InstructorName())
	assert.Equal(t, 4, courses[1].Form().InstructorID)

	assert.Equal(t, "broken", courses[2].Days.String())
	assert.Nil(t, courses[2].Instructor)
	assert.Equal(t, Unassigned, courses[2].InstructorName())

	empty, err := DecodeCourses(nil)
	assert.NoError(t, err)
	assert.Equal(t, []Course{}, empty)
}

func TestDecodeCourse(t *testing.T) {
	c, err := DecodeCourse(jsonValue(t, `{"id": 5, "nrc": "123456", "profesor_id": "7"}`))
	assert.NoError(t, err)
	assert.Equal(t, 5, c.ID)
	assert.Equal(t, 7, c.InstructorID)

	_, err = DecodeCourse(jsonValue(t, `{"id": {"nested": true}}`))
	assert.Error(t, err)
}

func TestDecodeForm(t *testing.T) {
	data, err := DecodeForm(jsonValue(t, `{
		"id": 12, "nrc": "205999", "nombre": "Redes", "seccion": 2,
		"dias_json": "[\"Monday\",\"Wednesday\"]", "hora_inicio": "07:00", "hora_fin": "08:00",
		"salon": "A1", "programa_educativo": "ICC", "profesor_id": "3", "creditos": 8
	}`))
	if assert.NoError(t, err) {
		assert.Equal(t, 12, data.ID)
		assert.Equal(t, "2", data.Section)
		assert.Equal(t, []string{Monday, Wednesday}, data.Weekdays)
		assert.Equal(t, 3, data.InstructorID)
		assert.Equal(t, "8", data.Credits)
	}

	data, err = DecodeForm(jsonValue(t, `{"dias_json": ["Friday"]}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{Friday}, data.Weekdays)
}
