package num

// ValidateInt checks an integer lexical form: an optional sign followed by one
// or more digits. The magnitude is unbounded.
func ValidateInt(b []byte) *ParseError {
	if len(b) == 0 {
		return &ParseError{Kind: ParseEmpty}
	}
	i := skipSign(b)
	if i == len(b) {
		return &ParseError{Kind: ParseNoDigits, Offset: i}
	}
	end := skipDigits(b, i)
	if end == i {
		return &ParseError{Kind: ParseBadChar, Offset: i}
	}
	if end != len(b) {
		return &ParseError{Kind: ParseTrailing, Offset: end}
	}
	return nil
}
