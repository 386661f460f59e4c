package course

import (
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/trezcool/escolar/core"
)

var (
	daysType       = reflect.TypeOf(Days{})
	weekdaysType   = reflect.TypeOf([]string{})
	instructorType = reflect.TypeOf(Instructor{})
)

// DecodeHook converts the loose API forms of course fields, such as weekdays sent as an
// encoded string or an instructor sent as a bare id instead of an object.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(daysHook, weekdaysHook, instructorHook)
}

func daysHook(_, to reflect.Type, data interface{}) (interface{}, error) {
	if to != daysType {
		return data, nil
	}
	return DaysFromValue(data), nil
}

// weekdaysHook decodes form weekdays sent as an encoded string.
func weekdaysHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != weekdaysType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseDays(data.(string)).Values(), nil
}

func instructorHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != instructorType {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.String:
		var id int
		if err := core.Decode(data, &id); err != nil {
			return nil, err
		}
		return Instructor{ID: id}, nil
	}
	return data, nil
}

// DecodeCourses decodes the course list of the API.
func DecodeCourses(input interface{}) ([]Course, error) {
	var courses []Course
	if err := core.Decode(input, &courses, DecodeHook()); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []Course{}
	}
	return courses, nil
}

// DecodeCourse decodes a single API course record.
func DecodeCourse(input interface{}) (Course, error) {
	var c Course
	err := core.Decode(input, &c, DecodeHook())
	return c, err
}

// DecodeForm decodes a registration payload. Credits and the instructor id may be numbers or strings.
func DecodeForm(input interface{}) (UpdateCourse, error) {
	var data UpdateCourse
	err := core.Decode(input, &data, DecodeHook())
	return data, err
}
