package errors

import "fmt"

// Initialization reports that a datatype registry could not be built because
// the identifier for one datatype failed to resolve.
//
//nolint:errname // public API name uses XSD domain term.
type Initialization struct {
	Err      error
	Datatype string
}

func (e *Initialization) Error() string {
	if e == nil {
		return "initialization <nil>"
	}
	return fmt.Sprintf("datatype registry: resolve %s: %v", e.Datatype, e.Err)
}

// Unwrap returns the identifier space failure.
func (e *Initialization) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
