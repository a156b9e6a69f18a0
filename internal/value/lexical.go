package value

import (
	"fmt"

	"github.com/jacoelho/rdfxsd/internal/value/datetime"
)

// ValidateString accepts every lexical form.
func ValidateString([]byte) error {
	return nil
}

// ValidateDateTime checks whether the lexical form is valid for dateTime.
func ValidateDateTime(lexical []byte) error {
	if _, err := datetime.Parse(lexical); err != nil {
		return fmt.Errorf("invalid dateTime %q: %w", lexical, err)
	}
	return nil
}
