package num

import (
	"errors"
	"strconv"
)

// ParseNativeFloat parses b with the native float parser and requires the
// whole input to be consumed. Exponents, INF/NaN spellings and hexadecimal
// mantissas are accepted as strconv accepts them. A magnitude outside the
// float64 range still counts as a complete parse and returns the rounded
// value (±Inf or 0).
func ParseNativeFloat(b []byte) (float64, *ParseError) {
	if len(b) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, &ParseError{Kind: ParseBadChar}
	}
	return f, nil
}

// ValidateNativeFloat checks whether b is fully consumable as a float literal.
func ValidateNativeFloat(b []byte) *ParseError {
	_, err := ParseNativeFloat(b)
	return err
}
