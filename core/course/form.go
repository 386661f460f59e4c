package course

import (
	"context"
	"errors"

	"github.com/trezcool/escolar/core"
)

// State of a registration form.
type State int

const (
	StateNew State = iota
	StateEditing
	StateInvalid
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateEditing:
		return "editing"
	case StateInvalid:
		return "invalid"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

var ErrCancelled = errors.New("update cancelled")

type (
	// Saver persists forms. *Service is a Saver.
	Saver interface {
		Create(ctx context.Context, form CourseForm) (Course, error)
		Update(ctx context.Context, id int, form CourseForm) (Course, error)
	}

	// ConfirmFunc asks whether the course named name should be updated.
	ConfirmFunc func(name string) bool

	// Form drives the registration and edit screen.
	Form struct {
		ID     int
		Data   CourseForm
		Errors map[string]string

		editing   bool
		submitted bool
	}
)

// NewForm returns an empty registration form starting at 07:00 and ending at 08:00.
func NewForm() *Form {
	return &Form{
		Data: CourseForm{
			Weekdays:  []string{},
			StartTime: "07:00",
			EndTime:   "08:00",
		},
		Errors: map[string]string{},
	}
}

// EditForm returns a form loaded with c.
func EditForm(c Course) *Form {
	return &Form{
		ID:      c.ID,
		Data:    c.Form(),
		Errors:  map[string]string{},
		editing: true,
	}
}

func (f *Form) IsEditing() bool {
	return f.editing
}

func (f *Form) State() State {
	switch {
	case f.submitted:
		return StateSubmitted
	case len(f.Errors) > 0:
		return StateInvalid
	case f.editing:
		return StateEditing
	}
	return StateNew
}

// ToggleWeekday selects or clears day, keeping selection order and no duplicates.
func (f *Form) ToggleWeekday(day string, checked bool) {
	if f.Data.Weekdays == nil {
		f.Data.Weekdays = []string{}
	}
	idx := -1
	for i, d := range f.Data.Weekdays {
		if d == day {
			idx = i
			break
		}
	}
	switch {
	case checked && idx < 0:
		f.Data.Weekdays = append(f.Data.Weekdays, day)
	case !checked && idx >= 0:
		f.Data.Weekdays = append(f.Data.Weekdays[:idx], f.Data.Weekdays[idx+1:]...)
	}
}

func (f *Form) HasWeekday(day string) bool {
	for _, d := range f.Data.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Validate refreshes f.Errors and reports whether the form is valid.
func (f *Form) Validate() bool {
	f.Errors = Validate(f.Data, f.editing)
	return len(f.Errors) == 0
}

// Submit validates the form and saves it. Edits are confirmed first; declining returns ErrCancelled.
// Field errors, local or sent back by svc, leave the form Invalid.
func (f *Form) Submit(ctx context.Context, svc Saver, confirm ConfirmFunc) (Course, error) {
	if !f.Validate() {
		return Course{}, core.NewFieldValidationError(f.Errors)
	}

	var c Course
	var err error
	if f.editing {
		if confirm != nil && !confirm(f.Data.Name) {
			return Course{}, ErrCancelled
		}
		c, err = svc.Update(ctx, f.ID, f.Data)
	} else {
		c, err = svc.Create(ctx, f.Data)
	}
	if err != nil {
		if fldErrs := core.FieldErrors(err); fldErrs != nil {
			f.Errors = fldErrs
		}
		return Course{}, err
	}
	f.submitted = true
	return c, nil
}
