package course

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core/user"
)

func TestDays_String(t *testing.T) {
	tests := []struct {
		name       string
		days       Days
		want       string
		wantValues []string
	}{
		{name: "list", days: NewDays(Monday, Wednesday), want: "Monday, Wednesday", wantValues: []string{Monday, Wednesday}},
		{name: "encoded list", days: ParseDays(`["Monday","Wednesday"]`), want: "Monday, Wednesday", wantValues: []string{Monday, Wednesday}},
		{name: "not json", days: ParseDays("not json"), want: "not json", wantValues: []string{}},
		{name: "already joined", days: ParseDays("Monday, Friday"), want: "Monday, Friday", wantValues: []string{}},
		{name: "encoded string", days: ParseDays(`"Monday"`), want: `"Monday"`, wantValues: []string{}},
		{name: "encoded null", days: ParseDays("null"), want: "null", wantValues: []string{}},
		{name: "encoded empty list", days: ParseDays("[]"), want: "", wantValues: []string{}},
		{name: "zero value", want: "", wantValues: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.days.String())
			assert.Equal(t, tt.wantValues, tt.days.Values())
		})
	}
}

func TestDaysFromValue(t *testing.T) {
	assert.Equal(t, "Monday, Tuesday", DaysFromValue([]interface{}{"Monday", "Tuesday"}).String())
	assert.Equal(t, "Friday", DaysFromValue([]string{"Friday"}).String())
	assert.Equal(t, "Thursday", DaysFromValue(`["Thursday"]`).String())
	assert.Equal(t, "", DaysFromValue(nil).String())
	assert.Equal(t, "", DaysFromValue(42.0).String())
}

func TestDays_JSON(t *testing.T) {
	var c struct {
		Days Days `json:"dias_json"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"dias_json":["Monday","Friday"]}`), &c))
	assert.Equal(t, "Monday, Friday", c.Days.String())

	assert.NoError(t, json.Unmarshal([]byte(`{"dias_json":"[\"Tuesday\",\"Thursday\"]"}`), &c))
	assert.Equal(t, "Tuesday, Thursday", c.Days.String())

	assert.NoError(t, json.Unmarshal([]byte(`{"dias_json":"oops"}`), &c))
	assert.Equal(t, "oops", c.Days.String())

	data, err := json.Marshal(c)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"dias_json":"oops"}`, string(data))

	c.Days = ParseDays(`["Friday"]`)
	data, err = json.Marshal(c)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"dias_json":"[\"Friday\"]"}`, string(data))

	c.Days = Days{}
	data, err = json.Marshal(c)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"dias_json":[]}`, string(data))

	c.Days = NewDays(Monday)
	data, err = json.Marshal(c)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"dias_json":["Monday"]}`, string(data))
}

func TestDays_Encode(t *testing.T) {
	assert.Equal(t, `["Monday","Friday"]`, NewDays(Monday, Friday).Encode())
	assert.Equal(t, `[]`, Days{}.Encode())
	assert.Equal(t, "lunes", ParseDays("lunes").Encode())
}

func TestCourse_InstructorName(t *testing.T) {
	c := Course{Instructor: &Instructor{ID: 2, User: &user.Person{FirstName: "Ada", LastName: "Lovelace"}}}
	assert.Equal(t, "Ada Lovelace", c.InstructorName())
	assert.Equal(t, Unassigned, Course{}.InstructorName())
	assert.Equal(t, Unassigned, Course{Instructor: &Instructor{ID: 2}}.InstructorName())
}

func TestCourse_Form(t *testing.T) {
	c := Course{
		ID:         9,
		NRC:        "205999",
		Name:       "Redes",
		Section:    "2",
		Days:       ParseDays("garbage"),
		StartTime:  "07:00:00",
		EndTime:    "08:30",
		Room:       "A1",
		Program:    Programs[1],
		Instructor: &Instructor{ID: 4},
		Credits:    6,
	}
	want := CourseForm{
		NRC:          "205999",
		Name:         "Redes",
		Section:      "2",
		Weekdays:     []string{},
		StartTime:    "07:00",
		EndTime:      "08:30",
		Room:         "A1",
		Program:      Programs[1],
		InstructorID: 4,
		Credits:      "6",
	}
	assert.Equal(t, want, c.Form())
}

func TestUpdateCourse_JSON(t *testing.T) {
	data, err := json.Marshal(UpdateCourse{CourseForm: CourseForm{NRC: "123456", Weekdays: []string{Monday}}, ID: 3})
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3, "nrc": "123456", "nombre": "", "seccion": "", "dias_json": ["Monday"],
		"hora_inicio": "", "hora_fin": "", "salon": "", "programa_educativo": "",
		"profesor_id": 0, "creditos": ""
	}`, string(data))
}
