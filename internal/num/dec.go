package num

// ValidateDecimal checks a decimal lexical form: an optional sign, digits and
// an optional '.' followed by digits. Either side of the dot may be empty but
// not both.
func ValidateDecimal(b []byte) *ParseError {
	if len(b) == 0 {
		return &ParseError{Kind: ParseEmpty}
	}
	i := skipSign(b)
	if i == len(b) {
		return &ParseError{Kind: ParseNoDigits, Offset: i}
	}
	end := skipDigits(b, i)
	intDigits := end - i
	if end == len(b) {
		return nil
	}
	if b[end] != '.' {
		if intDigits == 0 {
			return &ParseError{Kind: ParseBadChar, Offset: end}
		}
		return &ParseError{Kind: ParseTrailing, Offset: end}
	}
	fracStart := end + 1
	end = skipDigits(b, fracStart)
	if intDigits == 0 && end == fracStart {
		return &ParseError{Kind: ParseNoDigits, Offset: fracStart}
	}
	if end != len(b) {
		return &ParseError{Kind: ParseTrailing, Offset: end}
	}
	return nil
}
