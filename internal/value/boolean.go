package value

import (
	"fmt"
)

// BooleanLexicals lists every accepted boolean lexical form.
//
// XSD only allows true, false, 1 and 0. The upper-case spellings are accepted
// for compatibility with existing query data and must not be dropped.
var BooleanLexicals = []string{"true", "TRUE", "1", "false", "FALSE", "0"}

// ParseBoolean parses a boolean lexical value into a bool.
func ParseBoolean(lexical []byte) (bool, error) {
	switch string(lexical) {
	case "true", "TRUE", "1":
		return true, nil
	case "false", "FALSE", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean: %q", lexical)
	}
}

// ValidateBoolean checks whether the lexical form is valid for boolean.
func ValidateBoolean(lexical []byte) error {
	_, err := ParseBoolean(lexical)
	return err
}
