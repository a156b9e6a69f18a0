// Package rdfxsd validates lexical forms of the XML Schema primitive
// datatypes used by SPARQL literals and canonicalizes xs:dateTime values.
package rdfxsd

import (
	"errors"
	"fmt"

	xsderrors "github.com/jacoelho/rdfxsd/errors"
	"github.com/jacoelho/rdfxsd/internal/num"
	"github.com/jacoelho/rdfxsd/internal/value"
	"github.com/jacoelho/rdfxsd/internal/value/datetime"
)

// DateTime is a normalized xs:dateTime value.
type DateTime = datetime.Value

// ErrIndeterminate is returned by DateTime.Compare when exactly one operand
// has a timezone.
var ErrIndeterminate = datetime.ErrIndeterminate

var errUnknownType = errors.New("unknown datatype")

// Validate reports whether lexical is a legal lexical form of t.
// TypeUnknown and out-of-range tags accept nothing.
func Validate(t Type, lexical string) bool {
	return validate(t, []byte(lexical)) == nil
}

// Check is Validate with diagnostics. It returns nil for a legal lexical form
// and an xsderrors.ValidationList otherwise.
func Check(t Type, lexical string) error {
	err := validate(t, []byte(lexical))
	if err == nil {
		return nil
	}
	return xsderrors.ValidationList{diagnose(t, lexical, err)}
}

// CanonicalDateTime returns the canonical lexical form of an xs:dateTime, or
// false when lexical is not a legal dateTime.
func CanonicalDateTime(lexical string) (string, bool) {
	v, err := datetime.Parse([]byte(lexical))
	if err != nil {
		return "", false
	}
	return datetime.Format(v), true
}

// ParseDateTime parses and normalizes an xs:dateTime lexical form.
func ParseDateTime(lexical string) (DateTime, error) {
	v, err := datetime.Parse([]byte(lexical))
	if err != nil {
		return DateTime{}, fmt.Errorf("parse dateTime %q: %w", lexical, err)
	}
	return v, nil
}

func validate(t Type, lexical []byte) error {
	switch t {
	case TypeString:
		return value.ValidateString(lexical)
	case TypeBoolean:
		return value.ValidateBoolean(lexical)
	case TypeInteger:
		return value.ValidateInteger(lexical)
	case TypeDouble:
		return value.ValidateDouble(lexical)
	case TypeFloat:
		return value.ValidateFloat(lexical)
	case TypeDecimal:
		return value.ValidateDecimal(lexical)
	case TypeDateTime:
		return value.ValidateDateTime(lexical)
	case TypeUnknown:
		return errUnknownType
	default:
		return errUnknownType
	}
}

func diagnose(t Type, lexical string, err error) xsderrors.Validation {
	if errors.Is(err, errUnknownType) {
		return xsderrors.NewValidationf(xsderrors.ErrDatatypeUnknown, lexical, "%s is not a supported datatype", t)
	}
	code := xsderrors.ErrLexicalFormat
	msg := fmt.Sprintf("invalid %s", t)

	var dtErr *datetime.ParseError
	var numErr *num.ParseError
	switch {
	case errors.As(err, &dtErr):
		if dtErr.Kind == datetime.KindRange {
			code = xsderrors.ErrLexicalRange
		}
		msg = fmt.Sprintf("%s: %s", msg, dtErr)
	case errors.As(err, &numErr):
		msg = fmt.Sprintf("%s: %s", msg, numErr)
	}

	v := xsderrors.NewValidation(code, msg, lexical)
	v.Expected = expectedForms(t)
	return v
}

func expectedForms(t Type) []string {
	switch t {
	case TypeBoolean:
		return append([]string(nil), value.BooleanLexicals...)
	case TypeInteger:
		return []string{"[+-]digits"}
	case TypeDecimal:
		return []string{"[+-]digits[.digits]"}
	case TypeDouble, TypeFloat:
		return []string{"[+-]mantissa[(e|E)[+-]digits]", "INF", "NaN"}
	case TypeDateTime:
		return []string{"[-]YYYY-MM-DDThh:mm:ss[.fff][Z|(+|-)hh:mm]"}
	default:
		return nil
	}
}
