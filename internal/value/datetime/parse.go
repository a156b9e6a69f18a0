package datetime

// Parse parses an xs:dateTime lexical value of the form
//
//	'-'? yyyy '-' mm '-' dd 'T' hh ':' mm ':' ss ('.' s+)? ('Z' | ('+' | '-') hh ':' mm)?
//
// and returns the normalized value. Timezoned input is converted to UTC.
// No partial value is returned on error; the error is a *ParseError.
func Parse(lexical []byte) (Value, error) {
	s := scanner{in: lexical}

	year, err := s.year()
	if err != nil {
		return Value{}, err
	}
	month, err := s.field('-', FieldMonth, 1, 12)
	if err != nil {
		return Value{}, err
	}
	dayOffset := s.pos + 1
	day, err := s.field('-', FieldDay, 1, 31)
	if err != nil {
		return Value{}, err
	}
	if day > DaysInMonth(month, year) {
		return Value{}, rangeError(FieldDay, dayOffset)
	}
	hourOffset := s.pos + 1
	hour, err := s.field('T', FieldHour, 0, 24)
	if err != nil {
		return Value{}, err
	}
	minute, err := s.field(':', FieldMinute, 0, 59)
	if err != nil {
		return Value{}, err
	}
	second, err := s.field(':', FieldSecond, 0, 59)
	if err != nil {
		return Value{}, err
	}
	fraction, fractionZero, err := s.fraction()
	if err != nil {
		return Value{}, err
	}
	if hour == 24 && (minute != 0 || second != 0 || !fractionZero) {
		return Value{}, formatError(FieldMidnight, hourOffset)
	}
	offsetHours, offsetMinutes, hasTZ, err := s.timezone()
	if err != nil {
		return Value{}, err
	}
	if s.pos != len(s.in) {
		return Value{}, formatError(FieldTrailing, s.pos)
	}

	v := Value{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour - offsetHours,
		Minute:      minute - offsetMinutes,
		Second:      second,
		Fraction:    fraction,
		HasTimezone: hasTZ,
	}
	v = Normalize(v)
	if v.Year > MaxYear || v.Year < -MaxYear {
		return Value{}, rangeError(FieldYear, 0)
	}
	return v, nil
}

type scanner struct {
	in  []byte
	pos int
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.in) {
		return 0, false
	}
	return s.in[s.pos], true
}

// year scans an optional '-' and at least four digits. More than four digits
// may not start with '0'.
func (s *scanner) year() (int, error) {
	negative := false
	if c, ok := s.peek(); ok && c == '-' {
		negative = true
		s.pos++
	}
	start := s.pos
	var acc int64
	overflow := false
	for s.pos < len(s.in) && isDigit(s.in[s.pos]) {
		if !overflow {
			acc = acc*10 + int64(s.in[s.pos]-'0')
			overflow = acc > MaxYear
		}
		s.pos++
	}
	n := s.pos - start
	if n < 4 {
		return 0, formatError(FieldYear, start)
	}
	if n > 4 && s.in[start] == '0' {
		return 0, formatError(FieldYear, start)
	}
	if overflow || acc == 0 {
		return 0, rangeError(FieldYear, start)
	}
	year := int(acc)
	if negative {
		year = -year
	}
	return year, nil
}

// field scans sep followed by exactly two digits in [lo, hi].
func (s *scanner) field(sep byte, field Field, lo, hi int) (int, error) {
	if c, ok := s.peek(); !ok || c != sep {
		return 0, formatError(field, s.pos)
	}
	s.pos++
	start := s.pos
	n, ok := parseFixedDigits(s.in, start, 2)
	if !ok {
		return 0, formatError(field, start)
	}
	s.pos += 2
	if n < lo || n > hi {
		return 0, rangeError(field, start)
	}
	return n, nil
}

// fraction scans an optional '.' and one or more digits. The digits are
// truncated to millisecond precision and trailing zeros are dropped. zero
// reports whether every scanned digit was '0'.
func (s *scanner) fraction() (digits string, zero bool, err error) {
	if c, ok := s.peek(); !ok || c != '.' {
		return "", true, nil
	}
	s.pos++
	start := s.pos
	for s.pos < len(s.in) && isDigit(s.in[s.pos]) {
		s.pos++
	}
	raw := s.in[start:s.pos]
	if len(raw) == 0 {
		return "", false, formatError(FieldFraction, start)
	}
	kept := trimRightZeros(raw[:min(len(raw), 3)])
	return string(kept), allZeros(raw), nil
}

// timezone scans an optional 'Z' or '±hh:mm'. The returned offsets carry the
// sign of the lexical offset.
func (s *scanner) timezone() (hours, minutes int, ok bool, err error) {
	c, more := s.peek()
	if !more {
		return 0, 0, false, nil
	}
	switch c {
	case 'Z':
		s.pos++
		return 0, 0, true, nil
	case '+', '-':
	default:
		return 0, 0, false, nil
	}
	start := s.pos
	s.pos++
	h, okH := parseFixedDigits(s.in, s.pos, 2)
	if !okH || s.pos+2 >= len(s.in) || s.in[s.pos+2] != ':' {
		return 0, 0, false, formatError(FieldTimezone, start)
	}
	m, okM := parseFixedDigits(s.in, s.pos+3, 2)
	if !okM {
		return 0, 0, false, formatError(FieldTimezone, start)
	}
	s.pos += 5
	if h > 14 || m > 59 || (h == 14 && m != 0) {
		return 0, 0, false, rangeError(FieldTimezone, start)
	}
	if c == '-' {
		h, m = -h, -m
	}
	return h, m, true, nil
}

func parseFixedDigits(value []byte, start, length int) (int, bool) {
	if start < 0 || length <= 0 || start+length > len(value) {
		return 0, false
	}
	n := 0
	for i := range length {
		ch := value[start+i]
		if !isDigit(ch) {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func allZeros(b []byte) bool {
	for _, c := range b {
		if c != '0' {
			return false
		}
	}
	return true
}

func trimRightZeros(b []byte) []byte {
	j := len(b)
	for j > 0 && b[j-1] == '0' {
		j--
	}
	return b[:j]
}
