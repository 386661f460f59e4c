package course

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/trezcool/escolar/core/user"
)

// Weekdays
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
)

// Unassigned is shown in place of a missing instructor.
const Unassigned = "Unassigned"

var (
	Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

	// Programs are the academic programs a course can belong to.
	Programs = []string{
		"Ingeniería en Ciencias de la Computación",
		"Licenciatura en Ciencias de la Computación",
		"Ingeniería en Tecnologías de la Información",
	}

	clockRegex = regexp.MustCompile(`^\d{2}:\d{2}`)
)

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Days is the weekday list of a course as the API stores it: either a JSON array
// or a string holding a JSON-encoded array.
type Days struct {
	List []string

	raw     string
	encoded bool // the API sent a string
	decoded bool // raw held a valid JSON array
}

func NewDays(days ...string) Days {
	return Days{List: days}
}

// ParseDays decodes a JSON-encoded weekday array. Undecodable input is kept as is.
func ParseDays(raw string) Days {
	d := Days{raw: raw, encoded: true}
	var values []interface{}
	if err := json.Unmarshal([]byte(raw), &values); err == nil && values != nil {
		d.List = joinable(values)
		d.decoded = true
	}
	return d
}

// DaysFromValue builds Days out of a loosely decoded JSON value.
func DaysFromValue(v interface{}) Days {
	switch val := v.(type) {
	case Days:
		return val
	case []string:
		return NewDays(val...)
	case []interface{}:
		return NewDays(joinable(val)...)
	case string:
		return ParseDays(val)
	}
	return Days{}
}

func joinable(values []interface{}) []string {
	days := make([]string, 0, len(values))
	for _, v := range values {
		switch val := v.(type) {
		case nil:
			days = append(days, "")
		case string:
			days = append(days, val)
		default:
			days = append(days, fmt.Sprint(val))
		}
	}
	return days
}

// String renders the days for display, passing undecodable input through unchanged.
func (d Days) String() string {
	if d.encoded && !d.decoded {
		return d.raw
	}
	return strings.Join(d.List, ", ")
}

// Values returns a copy of the decoded list; empty when the stored value could not be decoded.
func (d Days) Values() []string {
	values := make([]string, len(d.List))
	copy(values, d.List)
	return values
}

func (d *Days) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = DaysFromValue(v)
	return nil
}

// MarshalJSON writes the days back in the form they were read: an encoded string stays a string.
func (d Days) MarshalJSON() ([]byte, error) {
	if d.encoded {
		return json.Marshal(d.raw)
	}
	return json.Marshal(d.Values())
}

// Encode returns the days as a JSON-encoded array.
func (d Days) Encode() string {
	if d.encoded {
		return d.raw
	}
	b, _ := json.Marshal(d.Values())
	return string(b)
}

// Instructor is the teacher embedded in a course record.
type Instructor struct {
	ID   int          `json:"id"`
	User *user.Person `json:"user,omitempty"`
}

// Course is a course offering (materia) as returned by the API.
type Course struct {
	ID           int         `json:"id"`
	NRC          string      `json:"nrc"`
	Name         string      `json:"nombre"`
	Section      string      `json:"seccion"`
	Days         Days        `json:"dias_json"`
	StartTime    string      `json:"hora_inicio"`
	EndTime      string      `json:"hora_fin"`
	Room         string      `json:"salon"`
	Program      string      `json:"programa_educativo"`
	InstructorID int         `json:"profesor_id,omitempty"`
	Instructor   *Instructor `json:"profesor,omitempty"`
	Credits      int         `json:"creditos"`
}

// InstructorName is the instructor's full name, or Unassigned.
func (c Course) InstructorName() string {
	if c.Instructor != nil && c.Instructor.User != nil {
		return c.Instructor.User.FullName()
	}
	return Unassigned
}

// Form returns the editable representation of c.
func (c Course) Form() CourseForm {
	instructorID := c.InstructorID
	if c.Instructor != nil && c.Instructor.ID != 0 {
		instructorID = c.Instructor.ID
	}
	credits := ""
	if c.Credits != 0 {
		credits = fmt.Sprint(c.Credits)
	}
	return CourseForm{
		NRC:          c.NRC,
		Name:         c.Name,
		Section:      c.Section,
		Weekdays:     c.Days.Values(),
		StartTime:    clockTime(c.StartTime),
		EndTime:      clockTime(c.EndTime),
		Room:         c.Room,
		Program:      c.Program,
		InstructorID: instructorID,
		Credits:      credits,
	}
}

// clockTime drops the seconds of HH:MM:SS values.
func clockTime(s string) string {
	if loc := clockRegex.FindStringIndex(s); loc != nil {
		return s[:loc[1]]
	}
	return s
}

// CourseForm contains the information needed to register or update a Course.
type CourseForm struct {
	NRC          string   `json:"nrc" validate:"required,nrc"`
	Name         string   `json:"nombre" validate:"required,course_name"`
	Section      string   `json:"seccion" validate:"required,section"`
	Weekdays     []string `json:"dias_json" validate:"weekdays,weekday_names"`
	StartTime    string   `json:"hora_inicio" validate:"required"`
	EndTime      string   `json:"hora_fin" validate:"required"`
	Room         string   `json:"salon" validate:"required,room"`
	Program      string   `json:"programa_educativo" validate:"required"`
	InstructorID int      `json:"profesor_id" validate:"required"`
	Credits      string   `json:"creditos" validate:"required,credits"`
}

// clean trims every text field.
func (cf *CourseForm) clean() {
	cf.NRC = strings.TrimSpace(cf.NRC)
	cf.Name = strings.TrimSpace(cf.Name)
	cf.Section = strings.TrimSpace(cf.Section)
	cf.StartTime = strings.TrimSpace(cf.StartTime)
	cf.EndTime = strings.TrimSpace(cf.EndTime)
	cf.Room = strings.TrimSpace(cf.Room)
	cf.Program = strings.TrimSpace(cf.Program)
	cf.Credits = strings.TrimSpace(cf.Credits)
	if cf.Weekdays != nil {
		days := make([]string, len(cf.Weekdays))
		for i, day := range cf.Weekdays {
			days[i] = strings.TrimSpace(day)
		}
		cf.Weekdays = days
	}
}

// UpdateCourse is the payload of an update: the form plus the course ID.
type UpdateCourse struct {
	CourseForm
	ID int `json:"id"`
}
