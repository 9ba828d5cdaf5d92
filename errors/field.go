package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field returns an error instance that wraps the original error with
// additional information. It returns nil if the provided error is nil.
// Use this function to create an error instance describing a
// field/attribute error.
//
// Use Go naming for the field name. For example, Owner or Amount. When
// the error is for a nested field, use dot notation to construct the
// path, for example Escrow.Amount.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}

	// If this error does not carry the stacktrace information yet,
	// attach one. This should be done only once per error at the lowest
	// frame possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}

	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField is a shortcut function to club together error(s) with a
// given field error.
func AppendField(errOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errOrNil, Field(fieldName, fieldErrOrNil, ""))
}

// FieldErrors returns the list of all errors that were created for
// given field name. An empty result means the field has no errors
// attached.
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}

	switch err := err.(type) {
	case multiError:
		var res []error
		for _, e := range err {
			res = append(res, FieldErrors(e, fieldName)...)
		}
		return res
	case *fieldError:
		if err.field == fieldName {
			return []error{err}
		}
		return nil
	default:
		return nil
	}
}

func isNilErr(err error) bool {
	return err == nil
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

// Field returns the name of the field this error describes.
func (e *fieldError) Field() string {
	return e.field
}

// Code returns the code of the wrapped error.
func (e *fieldError) Code() uint32 {
	return CodeOf(e.parent)
}
