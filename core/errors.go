package core

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrValidation = errors.New("validation failed")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// FieldMap returns the field errors keyed by field name.
func (err ValidationError) FieldMap() map[string]string {
	fldErrs := make(map[string]string, len(err.Fields))
	for _, fErr := range err.Fields {
		fldErrs[fErr.Field] = fErr.Error
	}
	return fldErrs
}

// FieldErrors flattens validator.ValidationErrors and *ValidationError into field -> message.
// It returns nil for any other error.
func FieldErrors(err error) map[string]string {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			if _, ok := fldErrs[vErr.Field()]; ok {
				continue // first error wins
			}
			fldErrs[vErr.Field()] = vErr.Translate(Translator)
		}
		return fldErrs
	case *ValidationError:
		return origErr.FieldMap()
	}
	return nil
}

// NewFieldValidationError wraps a field -> message map into a *ValidationError.
func NewFieldValidationError(fields map[string]string) error {
	flds := make([]FieldError, 0, len(fields))
	for fld, msg := range fields {
		flds = append(flds, FieldError{Field: fld, Error: msg})
	}
	return NewValidationError(ErrValidation, flds...)
}
