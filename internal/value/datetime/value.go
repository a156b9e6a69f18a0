package datetime

import (
	"errors"
	"math"
	"time"
)

// MaxYear bounds the magnitude of a year so that a carry of one stays
// representable.
const MaxYear = math.MaxInt32 - 1

// ErrIndeterminate is returned when comparing a value that has a timezone
// with one that does not.
var ErrIndeterminate = errors.New("dateTime comparison is indeterminate")

// Value is a normalized xs:dateTime.
//
// Timezoned values are folded to UTC, so only HasTimezone is kept. Fraction
// holds at most three digits with no trailing zero.
type Value struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Fraction    string
	HasTimezone bool
}

// Normalize propagates out-of-range fields into the next larger field, in the
// order second, minute, hour, day, month, year. Year zero is skipped. Year
// must be non-zero on input; a Month outside 1-12 is folded into the year
// before days are carried.
func Normalize(v Value) Value {
	if v.Month < 1 || v.Month > 12 {
		years, month := carry(0, v.Month-1, 12)
		v.Month = month + 1
		v.Year = addYears(v.Year, years)
	}
	var days int
	v.Minute, v.Second = carry(v.Minute, v.Second, 60)
	v.Hour, v.Minute = carry(v.Hour, v.Minute, 60)
	days, v.Hour = carry(0, v.Hour, 24)
	v.Day += days
	for v.Day < 1 {
		year, month := previousMonth(v.Year, v.Month)
		v.Day += DaysInMonth(month, year)
		v.Year, v.Month = year, month
	}
	for v.Day > DaysInMonth(v.Month, v.Year) {
		v.Day -= DaysInMonth(v.Month, v.Year)
		v.Year, v.Month = nextMonth(v.Year, v.Month)
	}
	return v
}

// Equal reports whether v and other denote the same normalized value.
func (v Value) Equal(other Value) bool {
	return v == other
}

// Compare orders two normalized values. It returns ErrIndeterminate when
// exactly one of them has a timezone.
func (v Value) Compare(other Value) (int, error) {
	if v.HasTimezone != other.HasTimezone {
		return 0, ErrIndeterminate
	}
	pairs := [...][2]int{
		{v.Year, other.Year},
		{v.Month, other.Month},
		{v.Day, other.Day},
		{v.Hour, other.Hour},
		{v.Minute, other.Minute},
		{v.Second, other.Second},
		{fractionMillis(v.Fraction), fractionMillis(other.Fraction)},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1, nil
		case p[0] > p[1]:
			return 1, nil
		}
	}
	return 0, nil
}

// Time converts v to a UTC time.Time. It reports false for values without a
// timezone, which do not denote a single instant. Negative years are shifted
// by one since time.Time counts a year zero. The shift moves the leap years,
// so a date that time.Time does not have (-0004-02-29) also reports false.
func (v Value) Time() (time.Time, bool) {
	if !v.HasTimezone {
		return time.Time{}, false
	}
	year := v.Year
	if year < 0 {
		year++
	}
	nsec := fractionMillis(v.Fraction) * int(time.Millisecond)
	t := time.Date(year, time.Month(v.Month), v.Day, v.Hour, v.Minute, v.Second, nsec, time.UTC)
	if t.Month() != time.Month(v.Month) || t.Day() != v.Day {
		return time.Time{}, false
	}
	return t, true
}

// String returns the canonical lexical form.
func (v Value) String() string {
	return Format(v)
}

func fractionMillis(fraction string) int {
	millis := 0
	for i := range 3 {
		millis *= 10
		if i < len(fraction) {
			millis += int(fraction[i] - '0')
		}
	}
	return millis
}
