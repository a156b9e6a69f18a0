package datetime

import (
	"fmt"
	"testing"
	"testing/quick"
)

// lexicalFrom builds a well-formed, not necessarily canonical, dateTime
// lexical form from arbitrary inputs.
func lexicalFrom(y int16, mo, d, h, mi, se uint8, frac uint16, tz int16, hasTZ bool) string {
	year := int(y)
	if year == 0 {
		year = 1
	}
	month := int(mo)%12 + 1
	day := int(d)%DaysInMonth(month, year) + 1
	out := ""
	if year < 0 {
		out = fmt.Sprintf("-%04d", -year)
	} else {
		out = fmt.Sprintf("%04d", year)
	}
	out += fmt.Sprintf("-%02d-%02dT%02d:%02d:%02d", month, day, int(h)%24, int(mi)%60, int(se)%60)
	if frac%3 != 0 {
		out += fmt.Sprintf(".%d", frac)
	}
	if !hasTZ {
		return out
	}
	offset := int(tz) % (14*60 + 1)
	switch {
	case offset == 0:
		out += "Z"
	case offset < 0:
		out += fmt.Sprintf("-%02d:%02d", -offset/60, -offset%60)
	default:
		out += fmt.Sprintf("+%02d:%02d", offset/60, offset%60)
	}
	return out
}

func TestQuickRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}
	err := quick.Check(func(y int16, mo, d, h, mi, se uint8, frac uint16, tz int16, hasTZ bool) bool {
		lexical := lexicalFrom(y, mo, d, h, mi, se, frac, tz, hasTZ)
		first, err := Parse([]byte(lexical))
		if err != nil {
			t.Logf("Parse(%q) error = %v", lexical, err)
			return false
		}
		canonical := Format(first)
		second, err := Parse([]byte(canonical))
		if err != nil {
			t.Logf("Parse(%q) error = %v", canonical, err)
			return false
		}
		return first == second && Format(second) == canonical
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickNormalizedInvariants(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}
	err := quick.Check(func(y int16, mo, d, h, mi, se uint8, frac uint16, tz int16, hasTZ bool) bool {
		v, err := Parse([]byte(lexicalFrom(y, mo, d, h, mi, se, frac, tz, hasTZ)))
		if err != nil {
			return false
		}
		if v.Year == 0 || v.Month < 1 || v.Month > 12 {
			return false
		}
		if v.Day < 1 || v.Day > DaysInMonth(v.Month, v.Year) {
			return false
		}
		if v.Hour < 0 || v.Hour > 23 || v.Minute < 0 || v.Minute > 59 || v.Second < 0 || v.Second > 59 {
			return false
		}
		if len(v.Fraction) > 3 {
			return false
		}
		if n := len(v.Fraction); n > 0 && v.Fraction[n-1] == '0' {
			return false
		}
		return v.HasTimezone == hasTZ
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
