package value

import (
	"fmt"

	"github.com/jacoelho/rdfxsd/internal/num"
)

// ValidateInteger checks whether the lexical form is valid for integer.
func ValidateInteger(lexical []byte) error {
	if perr := num.ValidateInt(lexical); perr != nil {
		return fmt.Errorf("invalid integer %q: %w", lexical, perr)
	}
	return nil
}

// ValidateDecimal checks whether the lexical form is valid for decimal.
func ValidateDecimal(lexical []byte) error {
	if perr := num.ValidateDecimal(lexical); perr != nil {
		return fmt.Errorf("invalid decimal %q: %w", lexical, perr)
	}
	return nil
}

// ValidateFloat checks whether the lexical form is valid for float.
func ValidateFloat(lexical []byte) error {
	return validateFloatLexical(lexical, "float")
}

// ValidateDouble checks whether the lexical form is valid for double.
func ValidateDouble(lexical []byte) error {
	return validateFloatLexical(lexical, "double")
}

// float and double share one grammar; precision differences are not checked.
func validateFloatLexical(lexical []byte, label string) error {
	if perr := num.ValidateNativeFloat(lexical); perr != nil {
		return fmt.Errorf("invalid %s %q: %w", label, lexical, perr)
	}
	return nil
}
