package datetime

import "fmt"

// Field identifies the part of a dateTime lexical form that failed to parse.
type Field uint8

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldMidnight
	FieldFraction
	FieldTimezone
	FieldTrailing
)

// String returns a stable label for the field.
func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldMidnight:
		return "24:00:00"
	case FieldFraction:
		return "fractional seconds"
	case FieldTimezone:
		return "timezone"
	case FieldTrailing:
		return "trailing characters"
	default:
		return "unknown field"
	}
}

// Kind separates grammar failures from well-formed but impossible values.
type Kind uint8

const (
	KindFormat Kind = iota
	KindRange
)

// String returns a stable label for the kind.
func (k Kind) String() string {
	if k == KindRange {
		return "out of range"
	}
	return "malformed"
}

// ParseError reports where and why a dateTime lexical form was rejected.
type ParseError struct {
	Field  Field
	Kind   Kind
	Offset int
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s at offset %d", e.Field, e.Kind, e.Offset)
}

func formatError(field Field, offset int) *ParseError {
	return &ParseError{Field: field, Kind: KindFormat, Offset: offset}
}

func rangeError(field Field, offset int) *ParseError {
	return &ParseError{Field: field, Kind: KindRange, Offset: offset}
}
