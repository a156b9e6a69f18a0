package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the class of a lexical validation failure.
type ErrorCode string

const (
	// ErrLexicalFormat indicates the literal does not match the grammar of its datatype.
	ErrLexicalFormat ErrorCode = "xsd-lexical-format"
	// ErrLexicalRange indicates a well-formed field holds a value outside its range.
	ErrLexicalRange ErrorCode = "xsd-lexical-range"
	// ErrDatatypeUnknown indicates the type tag is not one of the supported primitives.
	ErrDatatypeUnknown ErrorCode = "xsd-datatype-unknown"
)

// Validation describes a lexical validation error with its code, the
// offending literal, and the forms that would have been accepted.
//
//nolint:errname // public API name uses XSD domain term.
type Validation struct {
	Code     string
	Message  string
	Actual   string
	Expected []string
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", v.Code, v.Message)
	if len(v.Expected) > 0 {
		fmt.Fprintf(&b, " (expected: %s)", strings.Join(v.Expected, ", "))
	}
	if v.Actual != "" {
		fmt.Fprintf(&b, " (actual: %q)", v.Actual)
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and the rejected literal.
func NewValidation(code ErrorCode, msg, actual string) Validation {
	return Validation{Code: string(code), Message: msg, Actual: actual}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, actual, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), actual)
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
