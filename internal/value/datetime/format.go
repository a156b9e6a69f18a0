package datetime

import "strconv"

// Format returns the canonical lexical form [-]YYYY-MM-DDTHH:MM:SS[.fff][Z].
func Format(v Value) string {
	return string(AppendCanonical(make([]byte, 0, 32), v))
}

// AppendCanonical appends the canonical lexical form of v to dst.
// The year is zero-padded to four digits after the sign. Fraction is written
// as stored.
func AppendCanonical(dst []byte, v Value) []byte {
	year := v.Year
	if year < 0 {
		dst = append(dst, '-')
		year = -year
	}
	dst = appendPadded(dst, year, 4)
	dst = append(dst, '-')
	dst = appendPadded(dst, v.Month, 2)
	dst = append(dst, '-')
	dst = appendPadded(dst, v.Day, 2)
	dst = append(dst, 'T')
	dst = appendPadded(dst, v.Hour, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, v.Minute, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, v.Second, 2)
	if v.Fraction != "" {
		dst = append(dst, '.')
		dst = append(dst, v.Fraction...)
	}
	if v.HasTimezone {
		dst = append(dst, 'Z')
	}
	return dst
}

func appendPadded(dst []byte, n, width int) []byte {
	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], int64(n), 10)
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}
