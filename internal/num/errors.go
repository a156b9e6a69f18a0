package num

// ParseError represents a numeric lexical failure.
type ParseError struct {
	Kind   ParseErrKind
	Offset int
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseBadChar
	ParseNoDigits
	ParseTrailing
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseBadChar:
		return "bad character"
	case ParseNoDigits:
		return "no digits"
	case ParseTrailing:
		return "trailing characters"
	default:
		return "invalid"
	}
}
