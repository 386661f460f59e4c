package course

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/escolar/core"
)

var (
	nrcTag   = "nrc"
	nrcText  = "the NRC must be exactly 6 digits"
	nrcRegex = regexp.MustCompile(`^\d{6}$`)

	nameTag   = "course_name"
	nameText  = "the name may only contain letters and spaces"
	nameRegex = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)

	sectionTag   = "section"
	sectionText  = "the section must be numeric with at most 3 digits"
	sectionRegex = regexp.MustCompile(`^\d{1,3}$`)

	roomTag   = "room"
	roomText  = "the room must be alphanumeric with at most 15 characters"
	roomRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]{1,15}$`)

	weekdaysTag  = "weekdays"
	weekdaysText = "select at least one weekday"

	weekdayNamesTag  = "weekday_names"
	weekdayNamesText = "weekdays must be between Monday and Friday"

	creditsTag  = "credits"
	creditsText = "credits must be a number between 1 and 10"
	minCredits  = 1
	maxCredits  = 10

	endTimeTag  = "after_start"
	endTimeText = "the end time must be later than the start time"
)

func init() {
	core.RegisterRegexValidation(nrcTag, nrcText, nrcRegex)
	core.RegisterRegexValidation(nameTag, nameText, nameRegex)
	core.RegisterRegexValidation(sectionTag, sectionText, sectionRegex)
	core.RegisterRegexValidation(roomTag, roomText, roomRegex)

	_ = core.Validate.RegisterValidation(weekdaysTag, weekdaysValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, weekdaysTag, weekdaysText)

	_ = core.Validate.RegisterValidation(weekdayNamesTag, weekdayNamesValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, weekdayNamesTag, weekdayNamesText)

	_ = core.Validate.RegisterValidation(creditsTag, creditsValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, creditsTag, creditsText)

	core.Validate.RegisterStructValidation(courseStructValidation, CourseForm{})
	core.RegisterCustomTranslation(core.Validate, core.Translator, endTimeTag, endTimeText)
}

// Validate checks form and returns one message per invalid field, keyed by JSON field name.
// An empty map means the form is valid. isEditing does not change any rule.
func Validate(form CourseForm, isEditing bool) map[string]string {
	form.clean()
	if errs := core.FieldErrors(core.Validate.Struct(form)); errs != nil {
		return errs
	}
	return map[string]string{}
}

// Custom Validators

// weekdaysValidation requires at least one selected weekday.
func weekdaysValidation(fl validator.FieldLevel) bool {
	if days, ok := fl.Field().Interface().([]string); ok {
		return len(days) > 0
	}
	return false
}

// weekdayNamesValidation checks that every selected day is in Weekdays.
func weekdayNamesValidation(fl validator.FieldLevel) bool {
	if days, ok := fl.Field().Interface().([]string); ok {
		for _, day := range days {
			if !IsWeekday(day) {
				return false
			}
		}
		return true
	}
	return false
}

func creditsValidation(fl validator.FieldLevel) bool {
	credits, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return credits >= minCredits && credits <= maxCredits
}

// courseStructValidation checks that the course ends after it starts.
// HH:MM values sort chronologically as strings.
func courseStructValidation(sl validator.StructLevel) {
	if cf, ok := sl.Current().Interface().(CourseForm); ok {
		if cf.StartTime != "" && cf.EndTime != "" && cf.StartTime >= cf.EndTime {
			sl.ReportError(cf.EndTime, "hora_fin", "EndTime", endTimeTag, "")
		}
	}
}
