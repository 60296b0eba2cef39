package swift

import "fmt"

// InputError reports a malformed or missing payment field. Nothing is
// partially constructed when it is returned; the caller fixes the input and
// retries.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatConstraintError reports content that could not be represented within
// the format limits during generation. The generator still returns usable
// (truncated) output alongside it; see GenerateMT103.
type FormatConstraintError struct {
	Tag    string
	Reason string
}

func (e *FormatConstraintError) Error() string {
	return fmt.Sprintf("format constraint on %s: %s", e.Tag, e.Reason)
}

// SchemaNotFoundError reports a schema reference that could not be located
// or read. It is an operator problem, distinct from a validation failure,
// and fatal to the one validation call that hit it.
type SchemaNotFoundError struct {
	Path string
	Err  error
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("schema not found or unreadable: %s: %v", e.Path, e.Err)
}

func (e *SchemaNotFoundError) Unwrap() error { return e.Err }
