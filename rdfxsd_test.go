package rdfxsd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/rdfxsd"
	xsderrors "github.com/jacoelho/rdfxsd/errors"
	"github.com/jacoelho/rdfxsd/internal/value/datetime"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		typ     rdfxsd.Type
		lexical string
		want    bool
	}{
		{rdfxsd.TypeString, "", true},
		{rdfxsd.TypeString, "any text", true},
		{rdfxsd.TypeBoolean, "TRUE", true},
		{rdfxsd.TypeBoolean, "0", true},
		{rdfxsd.TypeBoolean, "True", false},
		{rdfxsd.TypeInteger, "-0042", true},
		{rdfxsd.TypeInteger, "4.2", false},
		{rdfxsd.TypeDouble, "1.5e300", true},
		{rdfxsd.TypeDouble, "1e400", true},
		{rdfxsd.TypeDouble, "1.5x", false},
		{rdfxsd.TypeFloat, "-.5E-3", true},
		{rdfxsd.TypeFloat, "", false},
		{rdfxsd.TypeDecimal, "5.", true},
		{rdfxsd.TypeDecimal, "1e3", false},
		{rdfxsd.TypeDateTime, "2004-02-29T00:00:00Z", true},
		{rdfxsd.TypeDateTime, "2005-02-29T00:00:00Z", false},
		{rdfxsd.TypeUnknown, "", false},
		{rdfxsd.TypeUnknown, "anything", false},
		{rdfxsd.Type(99), "1", false},
	}
	for _, tc := range tests {
		t.Run(tc.typ.String()+"/"+tc.lexical, func(t *testing.T) {
			assert.Equal(t, tc.want, rdfxsd.Validate(tc.typ, tc.lexical))
			assert.Equal(t, tc.want, rdfxsd.Check(tc.typ, tc.lexical) == nil)
		})
	}
}

func TestCheckDiagnostics(t *testing.T) {
	tests := []struct {
		name     string
		typ      rdfxsd.Type
		lexical  string
		code     xsderrors.ErrorCode
		message  string
		expected bool
	}{
		{"unknown", rdfxsd.TypeUnknown, "x", xsderrors.ErrDatatypeUnknown, "unknown is not a supported datatype", false},
		{"boolean", rdfxsd.TypeBoolean, "yes", xsderrors.ErrLexicalFormat, "invalid boolean", true},
		{"integer", rdfxsd.TypeInteger, "12a", xsderrors.ErrLexicalFormat, "invalid integer: trailing characters", true},
		{"decimal", rdfxsd.TypeDecimal, "", xsderrors.ErrLexicalFormat, "invalid decimal: empty", true},
		{"dateTime format", rdfxsd.TypeDateTime, "2004-1-01T00:00:00", xsderrors.ErrLexicalFormat, "invalid dateTime: month malformed at offset 5", true},
		{"dateTime range", rdfxsd.TypeDateTime, "2005-02-29T00:00:00", xsderrors.ErrLexicalRange, "invalid dateTime: day out of range at offset 8", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := rdfxsd.Check(tc.typ, tc.lexical)
			require.Error(t, err)
			violations, ok := xsderrors.AsValidations(err)
			require.True(t, ok)
			require.Len(t, violations, 1)
			v := violations[0]
			assert.Equal(t, string(tc.code), v.Code)
			assert.Equal(t, tc.message, v.Message)
			assert.Equal(t, tc.lexical, v.Actual)
			assert.Equal(t, tc.expected, len(v.Expected) > 0)
		})
	}
}

func TestCanonicalDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2004-12-31T23:50:22-01:15", "2005-01-01T01:05:22Z"},
		{"2005-01-01T01:00:05+02:12", "2004-12-31T22:48:05Z"},
		{"0001-01-01T00:00:00+00:01", "-0001-12-31T23:59:00Z"},
		{"2000-01-01T00:30:00+01:00", "1999-12-31T23:30:00Z"},
		{"1999-12-31T24:00:00", "2000-01-01T00:00:00"},
		{"2004-04-12T13:20:00.1234Z", "2004-04-12T13:20:00.123Z"},
		{"2004-04-12T13:20:00.10Z", "2004-04-12T13:20:00.1Z"},
		{"2004-04-12T13:20:00.0", "2004-04-12T13:20:00"},
		{"2000-02-29T12:00:00", "2000-02-29T12:00:00"},
	}
	for _, tc := range tests {
		got, ok := rdfxsd.CanonicalDateTime(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)

		again, ok := rdfxsd.CanonicalDateTime(got)
		require.True(t, ok, got)
		assert.Equal(t, got, again, "canonical form must be a fixed point")
	}
}

func TestCanonicalDateTimeRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"1900-02-29T00:00:00",
		"1901-02-29T00:00:00",
		"0000-01-01T00:00:00",
		"01234-01-01T00:00:00",
		"2004-04-12T24:00:01",
		"2004-04-12T13:20:00+14:01",
		"2004-04-12T13:20:00Zjunk",
		"2004-04-12 13:20:00",
	} {
		got, ok := rdfxsd.CanonicalDateTime(in)
		assert.False(t, ok, in)
		assert.Empty(t, got, in)
		assert.False(t, rdfxsd.Validate(rdfxsd.TypeDateTime, in), in)
	}
}

func TestParseDateTime(t *testing.T) {
	v, err := rdfxsd.ParseDateTime("2004-12-31T23:50:22-01:15")
	require.NoError(t, err)
	assert.Equal(t, rdfxsd.DateTime{
		Year: 2005, Month: 1, Day: 1, Hour: 1, Minute: 5, Second: 22, HasTimezone: true,
	}, v)

	_, err = rdfxsd.ParseDateTime("2004-13-01T00:00:00")
	require.Error(t, err)
	var perr *datetime.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, datetime.FieldMonth, perr.Field)
	assert.Equal(t, datetime.KindRange, perr.Kind)
}
